package in

import (
	"context"

	"socialteam/internal/modules/queue/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.ViewOutput, error)
	Display(ctx context.Context) (dto.ViewOutput, error)
	Start(ctx context.Context) (dto.ViewOutput, error)
	Tick(ctx context.Context) (dto.ViewOutput, error)
	Complete(ctx context.Context) (dto.ViewOutput, error)
	Skip(ctx context.Context) (dto.ViewOutput, error)
	Advance(ctx context.Context) (dto.ViewOutput, error)
}
