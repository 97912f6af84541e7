package usecase

import (
	"context"

	"socialteam/internal/modules/settings/domain"
	"socialteam/internal/modules/settings/dto"
	settingsin "socialteam/internal/modules/settings/port/in"
	"socialteam/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return dto.FromDomain(settings), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error) {
	settings, err := i.svc.Update(ctx, domain.Patch{
		Notifications: input.Notifications,
		AutoStart:     input.AutoStart,
		TaskDelay:     input.TaskDelay,
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return dto.FromDomain(settings), nil
}

func (i *Interactor) EnsureDefaults(ctx context.Context) (bool, error) {
	return i.svc.EnsureDefaults(ctx)
}
