package domain

import (
	"fmt"
	"time"
)

// Totals are the cumulative stats shown next to the queue.
type Totals struct {
	TasksCompleted int
	PointsEarned   int
}

// View is everything the popup renders. It is derived from the session and
// never written back.
type View struct {
	State        State
	Counter      string
	Title        string
	Description  string
	Steps        []string
	TargetURL    string
	Points       int
	Status       string
	Timer        string
	TimerVisible bool
	Progress     float64
	CanStart     bool
	CanComplete  bool
	CanSkip      bool
	AdvanceAfter time.Duration
	Totals       Totals
}

const (
	StatusReady       = "Ready to start"
	StatusStarted     = "Task started! Complete the steps above."
	StatusStartFailed = "Error: Could not start task"
	StatusSkipped     = "Task skipped"
	StatusAllComplete = "Great work! You're helping make a difference."
	StatusIdle        = "No tasks loaded"
)

func Project(s *Session, totals Totals) View {
	v := View{State: s.State(), Totals: totals}
	switch s.State() {
	case StateIdle:
		v.Status = StatusIdle
	case StateReady, StateRunning:
		task, _ := s.Current()
		fill(&v, s.Index(), s.Total(), task.Title, task.Description, task.Steps, task.TargetURL, task.Points)
		if s.State() == StateReady {
			v.Status = StatusReady
			v.CanStart = true
			v.CanSkip = true
			break
		}
		v.Status = StatusStarted
		if s.LaunchFailed() {
			v.Status = StatusStartFailed
		}
		v.Timer = FormatTimer(s.Remaining())
		v.TimerVisible = true
		if d := task.RequiredDuration(); d > 0 {
			v.Progress = float64(d-s.Remaining()) / float64(d)
		}
		v.CanComplete = true
		v.CanSkip = true
	case StateCompleted, StateSkipped:
		last := s.Last()
		fill(&v, s.Index()-1, s.Total(), last.Title, last.Description, last.Steps, last.TargetURL, last.Points)
		if s.State() == StateCompleted {
			v.Status = fmt.Sprintf("Task completed! +%d points", last.Points)
			v.AdvanceAfter = CompleteDelay
		} else {
			v.Status = StatusSkipped
			v.AdvanceAfter = SkipDelay
		}
	case StateAllComplete:
		v.Counter = "Session complete"
		v.Title = "All Tasks Complete!"
		v.Description = fmt.Sprintf(
			"Congratulations! You've completed all available tasks.\n\nPoints earned: %d\nTasks completed: %d\n\nCheck back later for more tasks.",
			totals.PointsEarned, totals.TasksCompleted,
		)
		v.Status = StatusAllComplete
	}
	return v
}

func fill(v *View, index, total int, title, description string, steps []string, targetURL string, points int) {
	v.Counter = fmt.Sprintf("Task %d of %d", index+1, total)
	v.Title = title
	v.Description = description
	v.Steps = append([]string(nil), steps...)
	v.TargetURL = targetURL
	v.Points = points
}
