package usecase

import (
	"context"

	"socialteam/internal/modules/task/domain"
	"socialteam/internal/modules/task/dto"
	taskin "socialteam/internal/modules/task/port/in"
	"socialteam/internal/modules/task/service"
)

type Interactor struct {
	svc *service.TaskService
}

func NewInteractor(svc *service.TaskService) taskin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListQueue(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.Queue(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(tasks), nil
}

func (i *Interactor) ListCampaign(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.Campaign(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(tasks), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.TaskOutput, error) {
	t, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return dto.FromDomain(t), nil
}

func toOutputs(tasks []domain.Task) []dto.TaskOutput {
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.FromDomain(t))
	}
	return out
}
