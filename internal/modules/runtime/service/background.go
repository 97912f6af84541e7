package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	engagementdomain "socialteam/internal/modules/engagement/domain"
	engagementdto "socialteam/internal/modules/engagement/dto"
	"socialteam/internal/modules/runtime/domain"
	"socialteam/internal/modules/runtime/dto"
	runtimeout "socialteam/internal/modules/runtime/port/out"
	statsdomain "socialteam/internal/modules/stats/domain"
	taskdto "socialteam/internal/modules/task/dto"
	"socialteam/internal/platform/clock"
	apperrors "socialteam/internal/platform/errors"
	"socialteam/internal/platform/logging"
)

const (
	welcomeTitle    = "Welcome to ClickForCharity Social Media Team!"
	welcomeMessage  = "Thank you for joining our mission. Click the extension icon to start helping!"
	completedTitle  = "Task Completed!"
	reminderTitle   = "ClickForCharity Reminder"
	reminderMessage = "Ready to help? New social media tasks are available!"
)

type Deps struct {
	Tasks    runtimeout.TaskCatalog
	Stats    runtimeout.StatsRecorder
	Settings runtimeout.SettingsReader
	Content  runtimeout.ContentAgent
	Tabs     runtimeout.Tabs
	Notifier runtimeout.Notifier
	Meta     runtimeout.Meta
}

type Options struct {
	Version string
	// TargetSites are the hosts whose page loads are announced to the page agent.
	TargetSites []string
	FetchEvery  time.Duration
	RemindEvery time.Duration
	Logger      hclog.Logger
}

// Background is the long-lived side of the extension: it owns stats
// mutation, the badge, notifications and alarms, and routes page traffic to
// the content agent.
type Background struct {
	deps   Deps
	opts   Options
	clock  clock.Clock
	bus    *Bus
	logger hclog.Logger

	mu    sync.Mutex
	badge domain.Badge
}

func NewBackground(clk clock.Clock, deps Deps, bus *Bus, opts Options) *Background {
	if opts.FetchEvery <= 0 {
		opts.FetchEvery = time.Hour
	}
	if opts.RemindEvery <= 0 {
		opts.RemindEvery = 24 * time.Hour
	}
	return &Background{
		deps:   deps,
		opts:   opts,
		clock:  clk,
		bus:    bus,
		logger: logging.OrDiscard(opts.Logger),
		badge:  domain.Badge{Color: statsdomain.BadgeColor},
	}
}

// Handle runs the handler for msg and returns the response body.
func (b *Background) Handle(ctx context.Context, msg domain.Message) (any, error) {
	switch m := msg.(type) {
	case domain.GetTasks:
		return b.getTasks(ctx), nil
	case domain.TaskCompleted:
		return b.taskCompleted(ctx, m)
	case domain.UpdateBadge:
		return b.updateBadge(ctx, m)
	case domain.OpenTab:
		return b.openTab(ctx, m), nil
	case domain.TargetSiteDetected:
		if err := b.deps.Content.TargetDetected(ctx, m.TabID); err != nil {
			return nil, err
		}
		return dto.ReceivedResponse{Received: true}, nil
	case domain.StartTaskVerification:
		if err := b.deps.Content.StartVerification(ctx, engagementdto.TaskInput{TabID: m.TabID, Task: taskdto.FromDomain(m.Task)}); err != nil {
			return nil, err
		}
		return dto.StartedResponse{Started: true}, nil
	case domain.CheckPageInteraction:
		return b.deps.Content.Interaction(ctx, m.TabID)
	case domain.VerifyTaskCompletion:
		return b.deps.Content.VerifyCompletion(ctx, engagementdto.TaskInput{TabID: m.TabID, Task: taskdto.FromDomain(m.Task)})
	case domain.Notice:
		b.notice(m)
		return dto.Ack{Success: true}, nil
	case domain.TabUpdated:
		b.tabUpdated(ctx, m)
		return dto.Ack{Success: true}, nil
	case domain.TabRemoved:
		if err := b.deps.Content.PageClosed(ctx, m.TabID); err != nil {
			return nil, err
		}
		return dto.Ack{Success: true}, nil
	case domain.PageScroll:
		return ack(b.deps.Content.Scroll(ctx, engagementdto.ScrollInput{
			TabID:          m.TabID,
			ScrollY:        m.ScrollY,
			ScrollHeight:   m.ScrollHeight,
			ViewportHeight: m.ViewportHeight,
		}))
	case domain.PageClick:
		return ack(b.deps.Content.Click(ctx, engagementdto.ClickInput{
			TabID: m.TabID,
			Tag:   m.Tag,
			Href:  m.Href,
			Text:  m.Text,
			Label: m.Label,
		}))
	case domain.PageInput:
		return ack(b.deps.Content.Input(ctx, m.TabID))
	case domain.PageSubmit:
		return ack(b.deps.Content.Submit(ctx, engagementdto.SubmitInput{TabID: m.TabID, Query: m.Query}))
	default:
		return nil, apperrors.ErrUnknownMessageType
	}
}

func ack(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return dto.Ack{Success: true}, nil
}

func (b *Background) getTasks(ctx context.Context) dto.TasksResponse {
	tasks, err := b.deps.Tasks.Campaign(ctx)
	if err != nil {
		b.logger.Error("load campaign tasks failed", "error", err)
		return dto.TasksResponse{Success: false, Tasks: []taskdto.TaskOutput{}, Error: err.Error()}
	}
	return dto.TasksResponse{Success: true, Tasks: tasks}
}

func (b *Background) taskCompleted(ctx context.Context, m domain.TaskCompleted) (any, error) {
	stats, err := b.deps.Stats.Record(ctx, m.TaskID, m.Points)
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}
	b.logger.Info("task completed", "task", m.TaskID, "points", m.Points, "completed", stats.TasksCompleted)
	b.setBadge(stats.TasksCompleted)
	b.notifyIfEnabled(ctx, completedTitle, fmt.Sprintf("Great work! You earned %d points for ClickForCharity.", m.Points))
	return dto.Ack{Success: true}, nil
}

func (b *Background) updateBadge(ctx context.Context, m domain.UpdateBadge) (any, error) {
	if m.Count != nil {
		b.setBadge(*m.Count)
		return dto.Ack{Success: true}, nil
	}
	stats, err := b.deps.Stats.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	b.setBadge(stats.TasksCompleted)
	return dto.Ack{Success: true}, nil
}

func (b *Background) openTab(ctx context.Context, m domain.OpenTab) dto.OpenTabResponse {
	tabID, err := b.deps.Tabs.Open(ctx, m.URL)
	if err != nil {
		b.logger.Warn("open tab failed", "url", m.URL, "error", err)
		return dto.OpenTabResponse{Success: false, Error: err.Error()}
	}
	return dto.OpenTabResponse{Success: true, TabID: tabID}
}

func (b *Background) notice(n domain.Notice) {
	if n.Type == domain.KindTaskVerificationPassed {
		b.logger.Info("passive verification passed", "tab", n.TabID, "task", n.Data["taskId"], "kind", n.Data["type"])
	} else {
		b.logger.Debug("page notice", "type", string(n.Type), "tab", n.TabID, "url", n.URL)
	}
	tabID := n.TabID
	ts := n.Timestamp
	if ts == 0 {
		ts = clock.Millis(b.clock)
	}
	b.bus.Publish(dto.Event{Type: string(n.Type), TabID: &tabID, URL: n.URL, Timestamp: ts, Data: n.Data})
}

// tabUpdated starts a page lifecycle on a finished load and tells the page
// agent when the page is one of the target sites. Delivery failures are
// logged only.
func (b *Background) tabUpdated(ctx context.Context, m domain.TabUpdated) {
	if m.Status != "complete" || strings.TrimSpace(m.URL) == "" {
		return
	}
	if err := b.deps.Content.PageLoaded(ctx, engagementdto.PageInput{TabID: m.TabID, URL: m.URL}); err != nil {
		b.logger.Warn("page load not delivered", "tab", m.TabID, "error", err)
		return
	}
	if !engagementdomain.URLMatchesAny(m.URL, b.opts.TargetSites) {
		return
	}
	if err := b.deps.Content.TargetDetected(ctx, m.TabID); err != nil {
		b.logger.Warn("could not notify page agent", "tab", m.TabID, "error", err)
	}
}

// Install runs the install or update hook and initializes the badge.
func (b *Background) Install(ctx context.Context) (dto.InstallOutput, error) {
	out := dto.InstallOutput{Version: b.opts.Version}
	var previous string
	found, err := b.deps.Meta.Get(ctx, domain.KeyVersion, &previous)
	if err != nil {
		return out, fmt.Errorf("read installed version: %w", err)
	}
	switch {
	case !found:
		out.FirstRun = true
		if err := b.deps.Stats.EnsureDefaults(ctx); err != nil {
			return out, fmt.Errorf("initialize stats: %w", err)
		}
		if err := b.deps.Settings.EnsureDefaults(ctx); err != nil {
			return out, fmt.Errorf("initialize settings: %w", err)
		}
		if err := b.deps.Meta.Set(ctx, map[string]any{domain.KeyLastTaskFetch: 0, domain.KeyVersion: b.opts.Version}); err != nil {
			return out, fmt.Errorf("initialize metadata: %w", err)
		}
		b.logger.Info("installed", "version", b.opts.Version)
		b.notify(ctx, welcomeTitle, welcomeMessage)
	case previous != b.opts.Version:
		out.PreviousVersion = previous
		if err := b.deps.Meta.Set(ctx, map[string]any{domain.KeyVersion: b.opts.Version}); err != nil {
			return out, fmt.Errorf("record version: %w", err)
		}
		b.logger.Info("updated", "from", previous, "to", b.opts.Version)
	}

	stats, err := b.deps.Stats.Load(ctx)
	if err != nil {
		b.logger.Warn("initialize badge failed", "error", err)
		return out, nil
	}
	b.setBadge(stats.TasksCompleted)
	return out, nil
}

func (b *Background) Badge() domain.Badge {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.badge
}

func (b *Background) setBadge(count int) {
	badge := domain.Badge{Count: count, Text: statsdomain.BadgeText(count), Color: statsdomain.BadgeColor}
	b.mu.Lock()
	b.badge = badge
	b.mu.Unlock()
	b.bus.Publish(dto.Event{
		Type:      domain.EventBadge,
		Timestamp: clock.Millis(b.clock),
		Data:      map[string]any{"count": badge.Count, "text": badge.Text, "color": badge.Color},
	})
}

// RunAlarms fires the periodic alarms until ctx is done.
func (b *Background) RunAlarms(ctx context.Context) error {
	fetch := time.NewTicker(b.opts.FetchEvery)
	defer fetch.Stop()
	remind := time.NewTicker(b.opts.RemindEvery)
	defer remind.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fetch.C:
			b.Alarm(ctx, domain.AlarmFetchTasks)
		case <-remind.C:
			b.Alarm(ctx, domain.AlarmDailyReminder)
		}
	}
}

func (b *Background) Alarm(ctx context.Context, name string) {
	switch name {
	case domain.AlarmFetchTasks:
		b.logger.Debug("fetching new tasks")
		if err := b.deps.Meta.Set(ctx, map[string]any{domain.KeyLastTaskFetch: clock.Millis(b.clock)}); err != nil {
			b.logger.Warn("record task fetch failed", "error", err)
		}
	case domain.AlarmDailyReminder:
		b.notifyIfEnabled(ctx, reminderTitle, reminderMessage)
	default:
		b.logger.Warn("unknown alarm", "name", name)
	}
}

func (b *Background) notifyIfEnabled(ctx context.Context, title, message string) {
	settings, err := b.deps.Settings.Get(ctx)
	if err != nil {
		b.logger.Warn("read settings failed", "error", err)
		return
	}
	if !settings.Notifications {
		return
	}
	b.notify(ctx, title, message)
}

func (b *Background) notify(ctx context.Context, title, message string) {
	if b.deps.Notifier == nil {
		return
	}
	err := b.deps.Notifier.Notify(ctx, title, message)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrCapabilityUnavailable):
		b.logger.Debug("notifications not available", "error", err)
	default:
		b.logger.Warn("notification failed", "title", title, "error", err)
	}
}
