package usecase

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"socialteam/internal/modules/runtime/dto"
	runtimein "socialteam/internal/modules/runtime/port/in"
	"socialteam/internal/modules/runtime/service"
	apperrors "socialteam/internal/platform/errors"
	"socialteam/internal/platform/logging"
)

type Interactor struct {
	bg     *service.Background
	bus    *service.Bus
	logger hclog.Logger
}

func NewInteractor(bg *service.Background, bus *service.Bus, logger hclog.Logger) runtimein.Usecase {
	return &Interactor{bg: bg, bus: bus, logger: logging.OrDiscard(logger)}
}

func (i *Interactor) Dispatch(ctx context.Context, env dto.Envelope) any {
	msg, err := service.Decode(env)
	if err != nil {
		return i.failure(env, err)
	}
	resp, err := i.bg.Handle(ctx, msg)
	if err != nil {
		return i.failure(env, err)
	}
	return resp
}

func (i *Interactor) failure(env dto.Envelope, err error) dto.ErrorResponse {
	if errors.Is(err, apperrors.ErrUnknownMessageType) {
		i.logger.Warn("unknown message type", "type", env.Type)
		return dto.ErrorResponse{Error: apperrors.ErrUnknownMessageType.Error()}
	}
	i.logger.Warn("message failed", "type", env.Type, "error", err)
	return dto.ErrorResponse{Error: err.Error()}
}

func (i *Interactor) Install(ctx context.Context) (dto.InstallOutput, error) {
	return i.bg.Install(ctx)
}

func (i *Interactor) Badge(context.Context) dto.BadgeOutput {
	badge := i.bg.Badge()
	return dto.BadgeOutput{Count: badge.Count, Text: badge.Text, Color: badge.Color}
}

func (i *Interactor) Subscribe(buffer int) (<-chan dto.Event, func()) {
	return i.bus.Subscribe(buffer)
}

func (i *Interactor) RunAlarms(ctx context.Context) error {
	return i.bg.RunAlarms(ctx)
}
