package domain

import taskdomain "socialteam/internal/modules/task/domain"

const (
	WeightTime        = 50
	WeightInteraction = 25
	WeightScroll      = 25

	// PassScore is the minimum score that counts as completed.
	PassScore = 75
	// ScrollThreshold is the scroll depth percentage that counts as engagement.
	ScrollThreshold = 25
)

const (
	CriterionTime        = "timeRequirementMet"
	CriterionInteraction = "interactionDetected"
	CriterionScroll      = "scrollEngagement"
)

type Result struct {
	TaskID    string          `json:"taskId"`
	Completed bool            `json:"completed"`
	Score     int             `json:"score"`
	Details   map[string]bool `json:"details"`
}

// Verify scores snap against task. Each criterion is evaluated on its own and
// contributes its weight at most once.
func Verify(task taskdomain.Task, snap Snapshot) Result {
	criteria := []struct {
		name   string
		weight int
		met    bool
	}{
		{CriterionTime, WeightTime, snap.TimeOnPage >= task.RequiredDuration()},
		{CriterionInteraction, WeightInteraction, snap.ClickCount >= 1},
		{CriterionScroll, WeightScroll, snap.ScrollDepth >= ScrollThreshold},
	}
	result := Result{TaskID: task.ID, Details: make(map[string]bool, len(criteria))}
	for _, c := range criteria {
		result.Details[c.name] = c.met
		if c.met {
			result.Score += c.weight
		}
	}
	result.Completed = result.Score >= PassScore
	return result
}
