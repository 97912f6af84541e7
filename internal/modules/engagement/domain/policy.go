package domain

import (
	"time"

	taskdomain "socialteam/internal/modules/task/domain"
)

// PassiveMinSeconds is the time on page the polled checks require.
const PassiveMinSeconds = 30

type PassKind string

const (
	PassTimeSpent        PassKind = "time_spent"
	PassSearchAndClick   PassKind = "search_and_click"
	PassSocialEngagement PassKind = "social_engagement"
)

// Check is a background verification rule for one task type. A one-shot
// check is evaluated once after Delay; otherwise it is polled every Delay
// until it passes or the page goes away.
type Check struct {
	Kind    PassKind
	Delay   time.Duration
	OneShot bool
	Passed  func(Snapshot) bool
}

type Intervals struct {
	// Second is the length of one tracked second; tests shrink it.
	Second time.Duration
	Search time.Duration
	Social time.Duration
}

// PassiveCheck returns the rule for task, or false for types that have none.
func PassiveCheck(task taskdomain.Task, brand string, iv Intervals) (Check, bool) {
	second := iv.Second
	if second <= 0 {
		second = time.Second
	}
	switch task.Type {
	case taskdomain.TypeVisit:
		required := task.RequiredDuration()
		return Check{
			Kind:    PassTimeSpent,
			Delay:   time.Duration(required) * second,
			OneShot: true,
			Passed:  func(s Snapshot) bool { return s.TimeOnPage >= required },
		}, true
	case taskdomain.TypeSearch:
		return Check{
			Kind:  PassSearchAndClick,
			Delay: iv.Search,
			Passed: func(s Snapshot) bool {
				return s.ClickedLinkContaining(brand) && s.TimeOnPage >= PassiveMinSeconds
			},
		}, true
	case taskdomain.TypeSocial:
		return Check{
			Kind:  PassSocialEngagement,
			Delay: iv.Social,
			Passed: func(s Snapshot) bool {
				return s.TimeOnPage >= PassiveMinSeconds && s.ClickCount >= 1
			},
		}, true
	default:
		return Check{}, false
	}
}
