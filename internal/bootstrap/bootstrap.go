package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	engagementoutadapter "socialteam/internal/modules/engagement/adapter/out"
	engagementdomain "socialteam/internal/modules/engagement/domain"
	engagementin "socialteam/internal/modules/engagement/port/in"
	engagementservice "socialteam/internal/modules/engagement/service"
	engagementusecase "socialteam/internal/modules/engagement/usecase"
	queueinadapter "socialteam/internal/modules/queue/adapter/in"
	queueoutadapter "socialteam/internal/modules/queue/adapter/out"
	queueservice "socialteam/internal/modules/queue/service"
	queueusecase "socialteam/internal/modules/queue/usecase"
	runtimeinadapter "socialteam/internal/modules/runtime/adapter/in"
	runtimeoutadapter "socialteam/internal/modules/runtime/adapter/out"
	runtimein "socialteam/internal/modules/runtime/port/in"
	runtimeservice "socialteam/internal/modules/runtime/service"
	runtimeusecase "socialteam/internal/modules/runtime/usecase"
	settingsinadapter "socialteam/internal/modules/settings/adapter/in"
	settingsoutadapter "socialteam/internal/modules/settings/adapter/out"
	settingsservice "socialteam/internal/modules/settings/service"
	settingsusecase "socialteam/internal/modules/settings/usecase"
	statsinadapter "socialteam/internal/modules/stats/adapter/in"
	statsoutadapter "socialteam/internal/modules/stats/adapter/out"
	statsservice "socialteam/internal/modules/stats/service"
	statsusecase "socialteam/internal/modules/stats/usecase"
	taskinadapter "socialteam/internal/modules/task/adapter/in"
	taskoutadapter "socialteam/internal/modules/task/adapter/out"
	taskservice "socialteam/internal/modules/task/service"
	taskusecase "socialteam/internal/modules/task/usecase"
	"socialteam/internal/platform/clock"
	"socialteam/internal/platform/config"
	"socialteam/internal/platform/id"
	"socialteam/internal/platform/launcher"
	"socialteam/internal/platform/logging"
	"socialteam/internal/platform/storage"
	uiapp "socialteam/internal/ui/app"
)

type Options struct {
	Version string
	// LogOutput defaults to stderr.
	LogOutput io.Writer
	// LogLevel overrides the configured level when set.
	LogLevel string
	// Launcher defaults to the system browser.
	Launcher launcher.Launcher
	// Intervals override the page agent timings; zero values keep the config.
	Intervals engagementdomain.Intervals
}

type App struct {
	Config config.Config
	Logger hclog.Logger

	TaskCLI     taskinadapter.CLIHandler
	StatsCLI    statsinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	QueueTUI    queueinadapter.TUIHandler
	Engagement  engagementin.Usecase
	Runtime     runtimein.Usecase
	Server      *runtimeinadapter.Server
	Remote      *runtimeoutadapter.RemoteClient

	db       *storage.DB
	recorder *statsservice.Recorder
	agent    *engagementservice.Agent
	bus      *runtimeservice.Bus
}

func New(cfg config.Config, opts Options) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.New(logging.Options{Name: "socialteam", Level: level, Output: opts.LogOutput})
	open := opts.Launcher
	if open == nil {
		open = launcher.NewOSLauncher()
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	area := db.Area(storage.SyncArea)

	taskUC := taskusecase.NewInteractor(taskservice.NewTaskService(clk, taskoutadapter.NewYAMLCatalog(cfg.CatalogPath)))

	statsStore := statsoutadapter.NewKVStore(area)
	recorder := statsservice.NewRecorder(statsStore, logger.Named("recorder"), 0)
	recorder.Start(context.Background())
	statsUC := statsusecase.NewInteractor(statsStore, recorder)

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(settingsoutadapter.NewKVStore(area)))

	intervals := engagementdomain.Intervals{
		Search: cfg.SearchPollInterval(),
		Social: cfg.SocialPollInterval(),
	}
	if opts.Intervals.Second > 0 {
		intervals.Second = opts.Intervals.Second
	}
	if opts.Intervals.Search > 0 {
		intervals.Search = opts.Intervals.Search
	}
	if opts.Intervals.Social > 0 {
		intervals.Social = opts.Intervals.Social
	}
	outbox := engagementoutadapter.NewRuntimeOutbox()
	agent := engagementservice.NewAgent(clk, ids, outbox, engagementservice.AgentOptions{
		Brand:     cfg.Brand,
		Intervals: intervals,
		Logger:    logger.Named("content"),
	})
	engagementUC := engagementusecase.NewInteractor(agent)

	bus := runtimeservice.NewBus()
	background := runtimeservice.NewBackground(clk, runtimeservice.Deps{
		Tasks:    runtimeoutadapter.NewTaskBridge(taskUC),
		Stats:    runtimeoutadapter.NewStatsBridge(statsUC),
		Settings: runtimeoutadapter.NewSettingsBridge(settingsUC),
		Content:  runtimeoutadapter.NewContentBridge(engagementUC),
		Tabs:     runtimeoutadapter.NewLauncherTabs(open),
		Notifier: runtimeoutadapter.NewCommandNotifier(cfg.NotifyCommand),
		Meta:     area,
	}, bus, runtimeservice.Options{
		Version:     opts.Version,
		TargetSites: cfg.TargetSites,
		FetchEvery:  cfg.FetchTasksInterval(),
		RemindEvery: cfg.DailyReminderInterval(),
		Logger:      logger.Named("background"),
	})
	runtimeUC := runtimeusecase.NewInteractor(background, bus, logger.Named("background"))
	outbox.Bind(runtimeUC)

	remote := runtimeoutadapter.NewRemoteClient(cfg.ListenAddr, ids)
	queueUC := queueusecase.NewInteractor(queueservice.NewController(
		queueoutadapter.NewTaskBridge(taskUC),
		open,
		queueoutadapter.NewStatsBridge(statsUC),
		queueoutadapter.NewRuntimeCompletions(runtimeUC, remote, logger.Named("queue")),
		logger.Named("queue"),
	))

	return &App{
		Config:      cfg,
		Logger:      logger,
		TaskCLI:     taskinadapter.NewCLIHandler(taskUC),
		StatsCLI:    statsinadapter.NewCLIHandler(statsUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		QueueTUI:    queueinadapter.NewTUIHandler(queueUC),
		Engagement:  engagementUC,
		Runtime:     runtimeUC,
		Server:      runtimeinadapter.NewServer(runtimeUC, logger.Named("http"), opts.Version),
		Remote:      remote,
		db:          db,
		recorder:    recorder,
		agent:       agent,
		bus:         bus,
	}, nil
}

// Close stops the page agents and the recorder, then closes storage.
func (a *App) Close() error {
	a.agent.Close()
	a.recorder.Stop()
	a.bus.Close()
	return a.db.Close()
}

// Serve runs the install hook, then the transport and the alarms until ctx
// is cancelled or one of them fails.
func Serve(ctx context.Context, app *App) error {
	install, err := app.Runtime.Install(ctx)
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}
	if install.FirstRun {
		app.Logger.Info("first run initialized", "data_dir", app.Config.DataDir)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Server.ListenAndServe(gctx, app.Config.ListenAddr)
	})
	g.Go(func() error {
		return app.Runtime.RunAlarms(gctx)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.QueueTUI, app.StatsCLI, app.SettingsCLI, app.Remote)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
