package dto

import "socialteam/internal/modules/stats/domain"

type StatsOutput struct {
	TasksCompleted int    `json:"tasksCompleted"`
	PointsEarned   int    `json:"pointsEarned"`
	Badge          string `json:"badge"`
}

type SaveInput struct {
	TasksCompleted int
	PointsEarned   int
}

type RecordInput struct {
	TaskID string
	Points int
}

func FromDomain(s domain.Stats) StatsOutput {
	return StatsOutput{
		TasksCompleted: s.TasksCompleted,
		PointsEarned:   s.PointsEarned,
		Badge:          domain.BadgeText(s.TasksCompleted),
	}
}
