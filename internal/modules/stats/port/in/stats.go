package in

import (
	"context"

	"socialteam/internal/modules/stats/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.StatsOutput, error)
	Save(ctx context.Context, input dto.SaveInput) error
	Record(ctx context.Context, input dto.RecordInput) (dto.StatsOutput, error)
	Reset(ctx context.Context) (dto.StatsOutput, error)
	// EnsureDefaults stores zero counters unless counters already exist.
	EnsureDefaults(ctx context.Context) error
}
