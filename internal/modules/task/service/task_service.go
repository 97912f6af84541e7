package service

import (
	"context"
	"fmt"
	"strings"

	"socialteam/internal/modules/task/domain"
	taskout "socialteam/internal/modules/task/port/out"
	"socialteam/internal/platform/clock"
	apperrors "socialteam/internal/platform/errors"
	"socialteam/internal/platform/slug"
)

type TaskService struct {
	clock   clock.Clock
	catalog taskout.CatalogSource
}

func NewTaskService(clock clock.Clock, catalog taskout.CatalogSource) *TaskService {
	return &TaskService{clock: clock, catalog: catalog}
}

// Queue returns the popup's ordered task list.
func (s *TaskService) Queue(ctx context.Context) ([]domain.Task, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Task(nil), catalog.Queue...), nil
}

// Campaign returns the background's task list with ids stamped "<slug>-<unix millis>".
func (s *TaskService) Campaign(ctx context.Context) ([]domain.Task, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	stamp := clock.Millis(s.clock)
	out := make([]domain.Task, 0, len(catalog.Campaign))
	for _, t := range catalog.Campaign {
		t.ID = fmt.Sprintf("%s-%d", slug.Make(t.ID, "task"), stamp)
		t.Steps = append([]string(nil), t.Steps...)
		out = append(out, t)
	}
	return out, nil
}

// Get resolves a queue id, a campaign id, or a stamped campaign id.
func (s *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, apperrors.ErrInvalidInput
	}
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for _, t := range catalog.Queue {
		if t.ID == id {
			return t, nil
		}
	}
	for _, t := range catalog.Campaign {
		base := slug.Make(t.ID, "task")
		if t.ID == id || base == id {
			return t, nil
		}
		if suffix, ok := strings.CutPrefix(id, base+"-"); ok && isDigits(suffix) {
			t.ID = id
			return t, nil
		}
	}
	return domain.Task{}, fmt.Errorf("task %s: %w", id, apperrors.ErrNotFound)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
