package domain_test

import (
	"strings"
	"testing"

	"socialteam/internal/modules/queue/domain"
)

func TestProjectionFollowsState(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.Load(threeTasks())

	ready := domain.Project(s, domain.Totals{})
	if ready.Counter != "Task 1 of 3" || ready.Status != domain.StatusReady || !ready.CanStart || ready.CanComplete || ready.TimerVisible {
		t.Fatalf("unexpected ready view: %+v", ready)
	}

	if _, err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	running := domain.Project(s, domain.Totals{})
	if running.CanStart || !running.CanComplete || running.Timer != "00:30" || running.Status != domain.StatusStarted {
		t.Fatalf("unexpected running view: %+v", running)
	}
	s.MarkLaunchFailed()
	if got := domain.Project(s, domain.Totals{}).Status; got != domain.StatusStartFailed {
		t.Fatalf("expected launch failure status, got %q", got)
	}

	if _, err := s.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	done := domain.Project(s, domain.Totals{TasksCompleted: 1, PointsEarned: 10})
	if done.Status != "Task completed! +10 points" || done.AdvanceAfter != domain.CompleteDelay || done.Counter != "Task 1 of 3" {
		t.Fatalf("unexpected completed view: %+v", done)
	}
	if done.CanStart || done.CanComplete || done.CanSkip {
		t.Fatalf("no actions while waiting to advance: %+v", done)
	}

	s.Advance()
	if _, err := s.Skip(); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if skipped := domain.Project(s, domain.Totals{}); skipped.AdvanceAfter != domain.SkipDelay || skipped.Status != domain.StatusSkipped {
		t.Fatalf("unexpected skipped view: %+v", skipped)
	}
}

func TestAllCompleteViewShowsTotals(t *testing.T) {
	t.Parallel()
	s := domain.NewSession()
	s.Load(nil)
	v := domain.Project(s, domain.Totals{TasksCompleted: 2, PointsEarned: 30})
	if v.Title != "All Tasks Complete!" || v.Counter != "Session complete" {
		t.Fatalf("unexpected view: %+v", v)
	}
	if !strings.Contains(v.Description, "Points earned: 30") || !strings.Contains(v.Description, "Tasks completed: 2") {
		t.Fatalf("totals missing from %q", v.Description)
	}
}
