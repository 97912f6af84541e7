package out

import (
	"context"

	"socialteam/internal/modules/queue/domain"
	taskdomain "socialteam/internal/modules/task/domain"
)

type TaskSource interface {
	Queue(ctx context.Context) ([]taskdomain.Task, error)
}

// Launcher opens a task's target page.
type Launcher interface {
	Open(ctx context.Context, url string) error
}

type StatsSource interface {
	Totals(ctx context.Context) (domain.Totals, error)
}

// CompletionReporter hands a finished task to the background, which records
// it and refreshes the badge.
type CompletionReporter interface {
	Completed(ctx context.Context, taskID string, points int) error
}
