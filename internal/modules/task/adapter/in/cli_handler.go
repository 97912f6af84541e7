package in

import (
	"context"

	"socialteam/internal/modules/task/dto"
	taskin "socialteam/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, campaign bool) ([]dto.TaskOutput, error) {
	if campaign {
		return h.usecase.ListCampaign(ctx)
	}
	return h.usecase.ListQueue(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.TaskOutput, error) {
	return h.usecase.Get(ctx, id)
}
