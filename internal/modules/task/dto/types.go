package dto

import "socialteam/internal/modules/task/domain"

type TaskOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TargetURL   string   `json:"targetUrl"`
	Duration    int      `json:"duration"`
	Points      int      `json:"points"`
	Type        string   `json:"type"`
	Steps       []string `json:"steps,omitempty"`
}

func FromDomain(t domain.Task) TaskOutput {
	return TaskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		TargetURL:   t.TargetURL,
		Duration:    t.Duration,
		Points:      t.Points,
		Type:        string(t.Type),
		Steps:       append([]string(nil), t.Steps...),
	}
}

func (o TaskOutput) Domain() domain.Task {
	return domain.Task{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		TargetURL:   o.TargetURL,
		Duration:    o.Duration,
		Points:      o.Points,
		Type:        domain.Type(o.Type),
		Steps:       append([]string(nil), o.Steps...),
	}
}
