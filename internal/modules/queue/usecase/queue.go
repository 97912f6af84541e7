package usecase

import (
	"context"

	"socialteam/internal/modules/queue/dto"
	queuein "socialteam/internal/modules/queue/port/in"
	"socialteam/internal/modules/queue/service"
)

type Interactor struct {
	ctrl *service.Controller
}

func NewInteractor(ctrl *service.Controller) queuein.Usecase {
	return &Interactor{ctrl: ctrl}
}

func (i *Interactor) Load(ctx context.Context) (dto.ViewOutput, error) {
	view, err := i.ctrl.Load(ctx)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	return dto.FromDomain(view), nil
}

func (i *Interactor) Display(ctx context.Context) (dto.ViewOutput, error) {
	return dto.FromDomain(i.ctrl.View(ctx)), nil
}

func (i *Interactor) Start(ctx context.Context) (dto.ViewOutput, error) {
	view, err := i.ctrl.Start(ctx)
	return dto.FromDomain(view), err
}

func (i *Interactor) Tick(ctx context.Context) (dto.ViewOutput, error) {
	view, err := i.ctrl.Tick(ctx)
	return dto.FromDomain(view), err
}

func (i *Interactor) Complete(ctx context.Context) (dto.ViewOutput, error) {
	view, err := i.ctrl.Complete(ctx)
	return dto.FromDomain(view), err
}

func (i *Interactor) Skip(ctx context.Context) (dto.ViewOutput, error) {
	view, err := i.ctrl.Skip(ctx)
	return dto.FromDomain(view), err
}

func (i *Interactor) Advance(ctx context.Context) (dto.ViewOutput, error) {
	return dto.FromDomain(i.ctrl.Advance(ctx)), nil
}
