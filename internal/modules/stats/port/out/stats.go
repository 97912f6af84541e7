package out

import (
	"context"

	"socialteam/internal/modules/stats/domain"
)

type Store interface {
	// Load reports false when nothing has been saved yet.
	Load(ctx context.Context) (domain.Stats, bool, error)
	Save(ctx context.Context, stats domain.Stats) error
	// Apply runs fn as one atomic read-modify-write.
	Apply(ctx context.Context, fn func(domain.Stats) (domain.Stats, error)) (domain.Stats, error)
}
