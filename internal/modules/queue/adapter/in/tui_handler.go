package in

import (
	"context"

	queuedto "socialteam/internal/modules/queue/dto"
	queuein "socialteam/internal/modules/queue/port/in"
)

// TUIHandler exposes the queue session to the popup.
type TUIHandler struct {
	usecase queuein.Usecase
}

func NewTUIHandler(usecase queuein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Load(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Load(ctx)
}

func (h TUIHandler) Display(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Display(ctx)
}

func (h TUIHandler) Start(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Start(ctx)
}

func (h TUIHandler) Tick(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) Complete(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Complete(ctx)
}

func (h TUIHandler) Skip(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Skip(ctx)
}

func (h TUIHandler) Advance(ctx context.Context) (queuedto.ViewOutput, error) {
	return h.usecase.Advance(ctx)
}
