package out

import (
	"context"

	engagementdto "socialteam/internal/modules/engagement/dto"
	settingsdto "socialteam/internal/modules/settings/dto"
	statsdto "socialteam/internal/modules/stats/dto"
	taskdto "socialteam/internal/modules/task/dto"
)

type TaskCatalog interface {
	Campaign(ctx context.Context) ([]taskdto.TaskOutput, error)
}

type StatsRecorder interface {
	Load(ctx context.Context) (statsdto.StatsOutput, error)
	Record(ctx context.Context, taskID string, points int) (statsdto.StatsOutput, error)
	// EnsureDefaults writes zero counters when nothing is stored.
	EnsureDefaults(ctx context.Context) error
}

type SettingsReader interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	EnsureDefaults(ctx context.Context) error
}

// ContentAgent is the page side: it owns one page agent per tab.
type ContentAgent interface {
	PageLoaded(ctx context.Context, input engagementdto.PageInput) error
	PageClosed(ctx context.Context, tabID int) error
	TargetDetected(ctx context.Context, tabID int) error
	Scroll(ctx context.Context, input engagementdto.ScrollInput) error
	Click(ctx context.Context, input engagementdto.ClickInput) error
	Input(ctx context.Context, tabID int) error
	Submit(ctx context.Context, input engagementdto.SubmitInput) error
	StartVerification(ctx context.Context, input engagementdto.TaskInput) error
	Interaction(ctx context.Context, tabID int) (engagementdto.InteractionReport, error)
	VerifyCompletion(ctx context.Context, input engagementdto.TaskInput) (engagementdto.VerificationOutput, error)
}

// Tabs opens pages and hands out tab ids for them.
type Tabs interface {
	Open(ctx context.Context, url string) (int, error)
}

// Notifier shows a desktop notification. Implementations return
// apperrors.ErrCapabilityUnavailable when the platform has none.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// Meta stores background bookkeeping values such as the installed version.
type Meta interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, values map[string]any) error
}
