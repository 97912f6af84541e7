package out

import (
	"context"

	"socialteam/internal/modules/settings/domain"
)

type Store interface {
	Load(ctx context.Context) (domain.Settings, bool, error)
	Save(ctx context.Context, settings domain.Settings) error
	Apply(ctx context.Context, fn func(current domain.Settings, found bool) domain.Settings) (domain.Settings, error)
}
