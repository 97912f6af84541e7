package usecase

import (
	"context"
	"fmt"
	"strings"

	"socialteam/internal/modules/stats/domain"
	"socialteam/internal/modules/stats/dto"
	statsin "socialteam/internal/modules/stats/port/in"
	statsout "socialteam/internal/modules/stats/port/out"
	"socialteam/internal/modules/stats/service"
	apperrors "socialteam/internal/platform/errors"
)

type Interactor struct {
	store    statsout.Store
	recorder *service.Recorder
}

func NewInteractor(store statsout.Store, recorder *service.Recorder) statsin.Usecase {
	return &Interactor{store: store, recorder: recorder}
}

func (i *Interactor) Load(ctx context.Context) (dto.StatsOutput, error) {
	stats, _, err := i.store.Load(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.FromDomain(stats), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) error {
	if input.TasksCompleted < 0 || input.PointsEarned < 0 {
		return fmt.Errorf("%w: stats must be non-negative", apperrors.ErrInvalidInput)
	}
	return i.store.Save(ctx, domain.Stats{TasksCompleted: input.TasksCompleted, PointsEarned: input.PointsEarned})
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.StatsOutput, error) {
	if input.Points < 0 {
		return dto.StatsOutput{}, fmt.Errorf("%w: points must be non-negative", apperrors.ErrInvalidInput)
	}
	stats, err := i.recorder.Record(ctx, strings.TrimSpace(input.TaskID), input.Points)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.FromDomain(stats), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.recorder.Reset(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.FromDomain(stats), nil
}

func (i *Interactor) EnsureDefaults(ctx context.Context) error {
	_, err := i.store.Apply(ctx, func(current domain.Stats) (domain.Stats, error) {
		return current, nil
	})
	return err
}
