package domain

import (
	"fmt"
	"time"

	taskdomain "socialteam/internal/modules/task/domain"
	apperrors "socialteam/internal/platform/errors"
)

type State string

const (
	StateIdle        State = "idle"
	StateReady       State = "ready"
	StateRunning     State = "running"
	StateCompleted   State = "completed"
	StateSkipped     State = "skipped"
	StateAllComplete State = "all_complete"
)

// Pauses before the next task is shown.
const (
	CompleteDelay = 2 * time.Second
	SkipDelay     = time.Second
)

// Session is one traversal of the task list. The index only moves forward,
// by exactly one per Complete or Skip.
type Session struct {
	tasks        []taskdomain.Task
	last         taskdomain.Task
	index        int
	state        State
	remaining    int
	launchFailed bool
	completed    int
	skipped      int
	points       int
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// Load replaces the list and rewinds to the first task.
func (s *Session) Load(tasks []taskdomain.Task) {
	*s = Session{tasks: append([]taskdomain.Task(nil), tasks...)}
	s.settle()
}

func (s *Session) State() State       { return s.state }
func (s *Session) Index() int         { return s.index }
func (s *Session) Total() int         { return len(s.tasks) }
func (s *Session) Remaining() int     { return s.remaining }
func (s *Session) LaunchFailed() bool { return s.launchFailed }

// Last is the most recently completed or skipped task.
func (s *Session) Last() taskdomain.Task { return s.last }

// Tally is what this session has done so far.
func (s *Session) Tally() (completed, skipped, points int) {
	return s.completed, s.skipped, s.points
}

// Current returns the task at the index; false once the list is exhausted.
func (s *Session) Current() (taskdomain.Task, bool) {
	if s.index < 0 || s.index >= len(s.tasks) {
		return taskdomain.Task{}, false
	}
	return s.tasks[s.index], true
}

func (s *Session) Start() (taskdomain.Task, error) {
	switch s.state {
	case StateRunning:
		return taskdomain.Task{}, apperrors.ErrTaskRunning
	case StateReady:
	default:
		return taskdomain.Task{}, s.transitionError("start")
	}
	task, _ := s.Current()
	s.state = StateRunning
	s.remaining = task.RequiredDuration()
	s.launchFailed = false
	return task, nil
}

// MarkLaunchFailed notes that the target page could not be opened. The task
// keeps running so it can still be completed by hand.
func (s *Session) MarkLaunchFailed() {
	if s.state == StateRunning {
		s.launchFailed = true
	}
}

// Tick counts down one second and reports whether the timer just expired.
func (s *Session) Tick() bool {
	if s.state != StateRunning || s.remaining <= 0 {
		return false
	}
	s.remaining--
	return s.remaining == 0
}

// Complete finishes the running task and returns it so its points can be recorded.
func (s *Session) Complete() (taskdomain.Task, error) {
	if s.state != StateRunning {
		return taskdomain.Task{}, s.transitionError("complete")
	}
	task, _ := s.Current()
	s.state = StateCompleted
	s.last = task
	s.remaining = 0
	s.index++
	s.completed++
	s.points += task.Points
	return task, nil
}

func (s *Session) Skip() (taskdomain.Task, error) {
	if s.state != StateReady && s.state != StateRunning {
		return taskdomain.Task{}, s.transitionError("skip")
	}
	task, _ := s.Current()
	s.state = StateSkipped
	s.last = task
	s.remaining = 0
	s.index++
	s.skipped++
	return task, nil
}

// Advance moves from a finished task to the next one. It is a no-op in any
// other state, so repeated calls after the last task change nothing.
func (s *Session) Advance() State {
	if s.state == StateCompleted || s.state == StateSkipped {
		s.settle()
	}
	return s.state
}

func (s *Session) settle() {
	s.launchFailed = false
	s.remaining = 0
	if s.index >= len(s.tasks) {
		s.state = StateAllComplete
		return
	}
	s.state = StateReady
}

func (s *Session) transitionError(op string) error {
	if s.state == StateIdle || s.state == StateAllComplete {
		return fmt.Errorf("%s in state %s: %w", op, s.state, apperrors.ErrNoCurrentTask)
	}
	return fmt.Errorf("%s in state %s: %w", op, s.state, apperrors.ErrInvalidTransition)
}

// FormatTimer renders seconds as mm:ss.
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
