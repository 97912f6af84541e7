package in

import (
	"context"

	"socialteam/internal/modules/task/dto"
)

type Usecase interface {
	ListQueue(ctx context.Context) ([]dto.TaskOutput, error)
	ListCampaign(ctx context.Context) ([]dto.TaskOutput, error)
	Get(ctx context.Context, id string) (dto.TaskOutput, error)
}
