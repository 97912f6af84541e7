package out

import (
	"context"

	"socialteam/internal/modules/settings/domain"
	settingsout "socialteam/internal/modules/settings/port/out"
	"socialteam/internal/platform/storage"
)

type KVStore struct {
	area *storage.Area
}

func NewKVStore(area *storage.Area) settingsout.Store {
	return &KVStore{area: area}
}

func (s *KVStore) Load(ctx context.Context) (domain.Settings, bool, error) {
	var settings domain.Settings
	found, err := s.area.Get(ctx, domain.StorageKey, &settings)
	if err != nil {
		return domain.Settings{}, false, err
	}
	return settings, found, nil
}

func (s *KVStore) Save(ctx context.Context, settings domain.Settings) error {
	return s.area.Set(ctx, map[string]any{domain.StorageKey: settings})
}

func (s *KVStore) Apply(ctx context.Context, fn func(domain.Settings, bool) domain.Settings) (domain.Settings, error) {
	return storage.Update(ctx, s.area, domain.StorageKey, func(current domain.Settings, found bool) (domain.Settings, error) {
		return fn(current, found), nil
	})
}
