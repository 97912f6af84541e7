package service

import (
	"context"

	"socialteam/internal/modules/settings/domain"
	settingsout "socialteam/internal/modules/settings/port/out"
)

type SettingsService struct {
	store settingsout.Store
}

func NewSettingsService(store settingsout.Store) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, found, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.Defaults(), nil
	}
	return settings.Normalize(), nil
}

func (s *SettingsService) Update(ctx context.Context, patch domain.Patch) (domain.Settings, error) {
	return s.store.Apply(ctx, func(current domain.Settings, found bool) domain.Settings {
		if !found {
			current = domain.Defaults()
		}
		return current.Apply(patch)
	})
}

func (s *SettingsService) EnsureDefaults(ctx context.Context) (bool, error) {
	wrote := false
	_, err := s.store.Apply(ctx, func(current domain.Settings, found bool) domain.Settings {
		if found {
			return current
		}
		wrote = true
		return domain.Defaults()
	})
	return wrote, err
}
