package service

import (
	"context"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"socialteam/internal/modules/queue/domain"
	queueout "socialteam/internal/modules/queue/port/out"
	"socialteam/internal/platform/logging"
)

// Controller owns one queue session. Calls are serialized; the UI drives it
// from key presses and its own one-second tick.
type Controller struct {
	tasks       queueout.TaskSource
	launcher    queueout.Launcher
	stats       queueout.StatsSource
	completions queueout.CompletionReporter
	logger      hclog.Logger

	mu      sync.Mutex
	session *domain.Session
	totals  domain.Totals
}

func NewController(tasks queueout.TaskSource, launcher queueout.Launcher, stats queueout.StatsSource, completions queueout.CompletionReporter, logger hclog.Logger) *Controller {
	return &Controller{
		tasks:       tasks,
		launcher:    launcher,
		stats:       stats,
		completions: completions,
		logger:      logging.OrDiscard(logger),
		session:     domain.NewSession(),
	}
}

// Load starts a new session from the queue list.
func (c *Controller) Load(ctx context.Context) (domain.View, error) {
	tasks, err := c.tasks.Queue(ctx)
	if err != nil {
		return domain.View{}, fmt.Errorf("load queue: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Load(tasks)
	c.refreshTotals(ctx)
	return c.view(), nil
}

func (c *Controller) View(ctx context.Context) domain.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshTotals(ctx)
	return c.view()
}

// Start opens the target page and starts the countdown. A page that fails to
// open is reported in the status only.
func (c *Controller) Start(ctx context.Context) (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	task, err := c.session.Start()
	if err != nil {
		return c.view(), err
	}
	if err := c.launcher.Open(ctx, task.TargetURL); err != nil {
		c.logger.Warn("open target page failed", "task", task.ID, "url", task.TargetURL, "error", err)
		c.session.MarkLaunchFailed()
	}
	c.logger.Info("task started", "task", task.ID, "duration", task.RequiredDuration())
	return c.view(), nil
}

// Tick advances the countdown; expiry completes the task.
func (c *Controller) Tick(ctx context.Context) (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Tick() {
		if err := c.complete(ctx); err != nil {
			return c.view(), err
		}
	}
	return c.view(), nil
}

func (c *Controller) Complete(ctx context.Context) (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.complete(ctx); err != nil {
		return c.view(), err
	}
	return c.view(), nil
}

func (c *Controller) Skip(_ context.Context) (domain.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	task, err := c.session.Skip()
	if err != nil {
		return c.view(), err
	}
	c.logger.Info("task skipped", "task", task.ID)
	return c.view(), nil
}

func (c *Controller) Advance(_ context.Context) domain.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Advance()
	return c.view()
}

func (c *Controller) complete(ctx context.Context) error {
	task, err := c.session.Complete()
	if err != nil {
		return err
	}
	if err := c.completions.Completed(ctx, task.ID, task.Points); err != nil {
		c.logger.Warn("report completion failed", "task", task.ID, "error", err)
		return nil
	}
	c.refreshTotals(ctx)
	c.logger.Info("task completed", "task", task.ID, "points", task.Points, "total", c.totals.PointsEarned)
	return nil
}

func (c *Controller) refreshTotals(ctx context.Context) {
	totals, err := c.stats.Totals(ctx)
	if err != nil {
		c.logger.Warn("load stats failed", "error", err)
		return
	}
	c.totals = totals
}

func (c *Controller) view() domain.View {
	return domain.Project(c.session, c.totals)
}
