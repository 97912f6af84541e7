package out

import (
	"context"

	engagementdto "socialteam/internal/modules/engagement/dto"
	engagementin "socialteam/internal/modules/engagement/port/in"
	runtimeout "socialteam/internal/modules/runtime/port/out"
	settingsdto "socialteam/internal/modules/settings/dto"
	settingsin "socialteam/internal/modules/settings/port/in"
	statsdto "socialteam/internal/modules/stats/dto"
	statsin "socialteam/internal/modules/stats/port/in"
	taskdto "socialteam/internal/modules/task/dto"
	taskin "socialteam/internal/modules/task/port/in"
)

type TaskBridge struct {
	tasks taskin.Usecase
}

func NewTaskBridge(tasks taskin.Usecase) runtimeout.TaskCatalog {
	return &TaskBridge{tasks: tasks}
}

func (b *TaskBridge) Campaign(ctx context.Context) ([]taskdto.TaskOutput, error) {
	return b.tasks.ListCampaign(ctx)
}

type StatsBridge struct {
	stats statsin.Usecase
}

func NewStatsBridge(stats statsin.Usecase) runtimeout.StatsRecorder {
	return &StatsBridge{stats: stats}
}

func (b *StatsBridge) Load(ctx context.Context) (statsdto.StatsOutput, error) {
	return b.stats.Load(ctx)
}

func (b *StatsBridge) Record(ctx context.Context, taskID string, points int) (statsdto.StatsOutput, error) {
	return b.stats.Record(ctx, statsdto.RecordInput{TaskID: taskID, Points: points})
}

func (b *StatsBridge) EnsureDefaults(ctx context.Context) error {
	return b.stats.EnsureDefaults(ctx)
}

type SettingsBridge struct {
	settings settingsin.Usecase
}

func NewSettingsBridge(settings settingsin.Usecase) runtimeout.SettingsReader {
	return &SettingsBridge{settings: settings}
}

func (b *SettingsBridge) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return b.settings.Get(ctx)
}

func (b *SettingsBridge) EnsureDefaults(ctx context.Context) error {
	_, err := b.settings.EnsureDefaults(ctx)
	return err
}

// ContentBridge hands page traffic to the engagement module.
type ContentBridge struct {
	agent engagementin.Usecase
}

func NewContentBridge(agent engagementin.Usecase) runtimeout.ContentAgent {
	return &ContentBridge{agent: agent}
}

func (b *ContentBridge) PageLoaded(ctx context.Context, input engagementdto.PageInput) error {
	return b.agent.PageLoaded(ctx, input)
}

func (b *ContentBridge) PageClosed(ctx context.Context, tabID int) error {
	return b.agent.PageClosed(ctx, tabID)
}

func (b *ContentBridge) TargetDetected(ctx context.Context, tabID int) error {
	return b.agent.TargetDetected(ctx, tabID)
}

func (b *ContentBridge) Scroll(ctx context.Context, input engagementdto.ScrollInput) error {
	return b.agent.Scroll(ctx, input)
}

func (b *ContentBridge) Click(ctx context.Context, input engagementdto.ClickInput) error {
	return b.agent.Click(ctx, input)
}

func (b *ContentBridge) Input(ctx context.Context, tabID int) error {
	return b.agent.Input(ctx, tabID)
}

func (b *ContentBridge) Submit(ctx context.Context, input engagementdto.SubmitInput) error {
	return b.agent.Submit(ctx, input)
}

func (b *ContentBridge) StartVerification(ctx context.Context, input engagementdto.TaskInput) error {
	return b.agent.StartVerification(ctx, input)
}

func (b *ContentBridge) Interaction(ctx context.Context, tabID int) (engagementdto.InteractionReport, error) {
	return b.agent.Interaction(ctx, tabID)
}

func (b *ContentBridge) VerifyCompletion(ctx context.Context, input engagementdto.TaskInput) (engagementdto.VerificationOutput, error) {
	return b.agent.VerifyCompletion(ctx, input)
}
