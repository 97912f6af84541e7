package domain

import (
	"fmt"
	"strconv"
)

// StorageKey is the key the counters live under.
const StorageKey = "stats"

// BadgeColor is the badge background.
const BadgeColor = "#667eea"

// Stats are the cumulative counters; the only durable entity.
type Stats struct {
	TasksCompleted int `json:"tasksCompleted"`
	PointsEarned   int `json:"pointsEarned"`
}

// Record counts one completed task worth points.
func (s Stats) Record(points int) (Stats, error) {
	if points < 0 {
		return s, fmt.Errorf("points must be non-negative, got %d", points)
	}
	s.TasksCompleted++
	s.PointsEarned += points
	return s, nil
}

// BadgeText is empty when nothing has been completed yet.
func BadgeText(count int) string {
	if count <= 0 {
		return ""
	}
	return strconv.Itoa(count)
}
