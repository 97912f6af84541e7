package in

import (
	"context"

	statsdto "socialteam/internal/modules/stats/dto"
	statsin "socialteam/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (statsdto.StatsOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (statsdto.StatsOutput, error) {
	return h.usecase.Reset(ctx)
}
