package domain_test

import (
	"errors"
	"testing"

	"socialteam/internal/modules/queue/domain"
	taskdomain "socialteam/internal/modules/task/domain"
	apperrors "socialteam/internal/platform/errors"
)

func threeTasks() []taskdomain.Task {
	return []taskdomain.Task{
		{ID: "1", Title: "Visit", Duration: 30, Points: 10, Type: taskdomain.TypeVisit},
		{ID: "2", Title: "Search", Duration: 45, Points: 15, Type: taskdomain.TypeSearch},
		{ID: "3", Title: "Partner", Duration: 60, Points: 20, Type: taskdomain.TypePartner},
	}
}

func TestCompleteSkipCompleteReachesAllComplete(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	if s.State() != domain.StateIdle {
		t.Fatalf("expected idle before load, got %s", s.State())
	}
	s.Load(threeTasks())

	if _, err := s.Start(); err != nil {
		t.Fatalf("start 1: %v", err)
	}
	task, err := s.Complete()
	if err != nil || task.Points != 10 {
		t.Fatalf("complete 1: %+v %v", task, err)
	}
	if s.Index() != 1 || s.Advance() != domain.StateReady {
		t.Fatalf("expected ready at index 1, got %s at %d", s.State(), s.Index())
	}

	if _, err := s.Skip(); err != nil {
		t.Fatalf("skip 2: %v", err)
	}
	if s.Index() != 2 || s.Advance() != domain.StateReady {
		t.Fatalf("expected ready at index 2, got %s at %d", s.State(), s.Index())
	}

	if _, err := s.Start(); err != nil {
		t.Fatalf("start 3: %v", err)
	}
	if _, err := s.Complete(); err != nil {
		t.Fatalf("complete 3: %v", err)
	}
	if s.Index() != 3 || s.Advance() != domain.StateAllComplete {
		t.Fatalf("expected all complete at index 3, got %s at %d", s.State(), s.Index())
	}
	completed, skipped, points := s.Tally()
	if completed != 2 || skipped != 1 || points != 30 {
		t.Fatalf("unexpected tally %d/%d/%d", completed, skipped, points)
	}

	for i := 0; i < 3; i++ {
		if s.Advance() != domain.StateAllComplete || s.Index() != 3 {
			t.Fatalf("all complete must be idempotent")
		}
	}
	if _, err := s.Skip(); !errors.Is(err, apperrors.ErrNoCurrentTask) {
		t.Fatalf("expected ErrNoCurrentTask after the end, got %v", err)
	}
}

func TestStartWhileRunningIsRejected(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.Load(threeTasks())
	if _, err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Start(); !errors.Is(err, apperrors.ErrTaskRunning) {
		t.Fatalf("expected ErrTaskRunning, got %v", err)
	}
}

func TestCompleteRequiresRunning(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.Load(threeTasks())
	if _, err := s.Complete(); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.Index() != 0 {
		t.Fatalf("index moved on a rejected complete")
	}
}

func TestTimerExpiresAfterDuration(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.Load([]taskdomain.Task{{ID: "a", Title: "A", Duration: 3, Points: 1}})
	if _, err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	var expired []bool
	for i := 0; i < 4; i++ {
		expired = append(expired, s.Tick())
	}
	if expired[0] || expired[1] || !expired[2] || expired[3] {
		t.Fatalf("unexpected expiry sequence %v", expired)
	}
}

func TestEmptyListIsAllComplete(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.Load(nil)
	if s.State() != domain.StateAllComplete {
		t.Fatalf("expected all complete, got %s", s.State())
	}
}

func TestFormatTimer(t *testing.T) {
	t.Parallel()
	cases := map[int]string{0: "00:00", 45: "00:45", 90: "01:30", 3600: "60:00", -1: "00:00"}
	for in, want := range cases {
		if got := domain.FormatTimer(in); got != want {
			t.Fatalf("FormatTimer(%d) = %q, want %q", in, got, want)
		}
	}
}
