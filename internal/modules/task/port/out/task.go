package out

import (
	"context"

	"socialteam/internal/modules/task/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
