package out

import (
	"context"

	"socialteam/internal/modules/queue/domain"
	queueout "socialteam/internal/modules/queue/port/out"
	statsin "socialteam/internal/modules/stats/port/in"
	taskdomain "socialteam/internal/modules/task/domain"
	taskin "socialteam/internal/modules/task/port/in"
)

type TaskBridge struct {
	tasks taskin.Usecase
}

func NewTaskBridge(tasks taskin.Usecase) queueout.TaskSource {
	return &TaskBridge{tasks: tasks}
}

func (b *TaskBridge) Queue(ctx context.Context) ([]taskdomain.Task, error) {
	list, err := b.tasks.ListQueue(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]taskdomain.Task, 0, len(list))
	for _, item := range list {
		out = append(out, item.Domain())
	}
	return out, nil
}

type StatsBridge struct {
	stats statsin.Usecase
}

func NewStatsBridge(stats statsin.Usecase) queueout.StatsSource {
	return &StatsBridge{stats: stats}
}

func (b *StatsBridge) Totals(ctx context.Context) (domain.Totals, error) {
	s, err := b.stats.Load(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.Totals{TasksCompleted: s.TasksCompleted, PointsEarned: s.PointsEarned}, nil
}
