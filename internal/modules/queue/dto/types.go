package dto

import (
	"time"

	"socialteam/internal/modules/queue/domain"
)

// ViewOutput is the popup projection of the queue. AdvanceAfter is non-zero
// while a finished task waits for Advance.
type ViewOutput struct {
	State          string
	Counter        string
	Title          string
	Description    string
	Steps          []string
	TargetURL      string
	Points         int
	Status         string
	Timer          string
	TimerVisible   bool
	Progress       float64
	CanStart       bool
	CanComplete    bool
	CanSkip        bool
	AllComplete    bool
	AdvanceAfter   time.Duration
	TasksCompleted int
	PointsEarned   int
}

func FromDomain(v domain.View) ViewOutput {
	return ViewOutput{
		State:          string(v.State),
		Counter:        v.Counter,
		Title:          v.Title,
		Description:    v.Description,
		Steps:          append([]string(nil), v.Steps...),
		TargetURL:      v.TargetURL,
		Points:         v.Points,
		Status:         v.Status,
		Timer:          v.Timer,
		TimerVisible:   v.TimerVisible,
		Progress:       v.Progress,
		CanStart:       v.CanStart,
		CanComplete:    v.CanComplete,
		CanSkip:        v.CanSkip,
		AllComplete:    v.State == domain.StateAllComplete,
		AdvanceAfter:   v.AdvanceAfter,
		TasksCompleted: v.Totals.TasksCompleted,
		PointsEarned:   v.Totals.PointsEarned,
	}
}
