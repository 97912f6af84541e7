package out

import (
	"context"

	"socialteam/internal/modules/stats/domain"
	statsout "socialteam/internal/modules/stats/port/out"
	"socialteam/internal/platform/storage"
)

type KVStore struct {
	area *storage.Area
}

func NewKVStore(area *storage.Area) statsout.Store {
	return &KVStore{area: area}
}

func (s *KVStore) Load(ctx context.Context) (domain.Stats, bool, error) {
	var stats domain.Stats
	found, err := s.area.Get(ctx, domain.StorageKey, &stats)
	if err != nil {
		return domain.Stats{}, false, err
	}
	return stats, found, nil
}

func (s *KVStore) Save(ctx context.Context, stats domain.Stats) error {
	return s.area.Set(ctx, map[string]any{domain.StorageKey: stats})
}

func (s *KVStore) Apply(ctx context.Context, fn func(domain.Stats) (domain.Stats, error)) (domain.Stats, error) {
	return storage.Update(ctx, s.area, domain.StorageKey, func(current domain.Stats, _ bool) (domain.Stats, error) {
		return fn(current)
	})
}
