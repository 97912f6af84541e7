package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"socialteam/internal/bootstrap"
	engagementdto "socialteam/internal/modules/engagement/dto"
	runtimeoutadapter "socialteam/internal/modules/runtime/adapter/out"
	runtimedto "socialteam/internal/modules/runtime/dto"
	settingsdto "socialteam/internal/modules/settings/dto"
	taskdto "socialteam/internal/modules/task/dto"
	"socialteam/internal/platform/config"
	"socialteam/internal/platform/id"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "socialteam",
		Short:         "ClickForCharity Social Media Team",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory holding config, storage and logs")

	root.AddCommand(newPopupCmd(&dataDir))
	root.AddCommand(newServeCmd(&dataDir))
	root.AddCommand(newInstallCmd(&dataDir))
	root.AddCommand(newTasksCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	root.AddCommand(newVerifyCmd(&dataDir))
	root.AddCommand(newSendCmd(&dataDir))
	root.AddCommand(newWatchCmd(&dataDir))
	return root
}

// loadApp wires the application. One-shot commands only log warnings.
func loadApp(dataDir string, opts bootstrap.Options) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	opts.Version = version
	return bootstrap.New(cfg, opts)
}

func loadQuietApp(dataDir string) (*bootstrap.App, error) {
	return loadApp(dataDir, bootstrap.Options{LogLevel: "warn"})
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newPopupCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "popup",
		Short: "Run the task queue in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New(*dataDir)
			if err != nil {
				return err
			}
			// The TUI owns the terminal, so logs go to a file.
			logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()
			app, err := bootstrap.New(cfg, bootstrap.Options{Version: version, LogOutput: logFile})
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newServeCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the background service (message protocol, badge, alarms)",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			ctx, stop := signalContext()
			defer stop()
			return bootstrap.Serve(ctx, app)
		},
	}
}

func newInstallCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Run the install/update hook without starting the service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.Runtime.Install(context.Background())
			if err != nil {
				return err
			}
			switch {
			case out.FirstRun:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "installed %s in %s\n", out.Version, app.Config.DataDir)
			case out.PreviousVersion != "":
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s -> %s\n", out.PreviousVersion, out.Version)
			default:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "already installed (%s)\n", out.Version)
			}
			return nil
		},
	}
}

func newTasksCmd(dataDir *string) *cobra.Command {
	tasks := &cobra.Command{Use: "tasks", Short: "Task catalog commands"}

	var campaign bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List the queue tasks (or the campaign tasks)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.TaskCLI.List(context.Background(), campaign)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for _, t := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%ds\t%dpts\t%s\n", t.ID, t.Type, t.Duration, t.Points, t.Title)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&campaign, "campaign", false, "list the background campaign tasks")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			t, err := app.TaskCLI.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}

	tasks.AddCommand(list, show)
	return tasks
}

func newStatsCmd(dataDir *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Cumulative stats"}

	stats.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show tasks completed and points earned",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.StatsCLI.Show(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tasks completed: %d\npoints earned: %d\nbadge: %q\n", out.TasksCompleted, out.PointsEarned, out.Badge)
			return nil
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the counters to zero",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.StatsCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "stats reset")
			return nil
		},
	})
	return stats
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "User settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SettingsCLI.Show(context.Background())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	var notifications, autoStart bool
	var taskDelay int
	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input settingsdto.UpdateInput
			if cmd.Flags().Changed("notifications") {
				input.Notifications = &notifications
			}
			if cmd.Flags().Changed("auto-start") {
				input.AutoStart = &autoStart
			}
			if cmd.Flags().Changed("task-delay") {
				input.TaskDelay = &taskDelay
			}
			if input == (settingsdto.UpdateInput{}) {
				return fmt.Errorf("nothing to change: pass --notifications, --auto-start or --task-delay")
			}
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SettingsCLI.Set(context.Background(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	set.Flags().BoolVar(&notifications, "notifications", true, "show desktop notifications")
	set.Flags().BoolVar(&autoStart, "auto-start", false, "start the next task automatically")
	set.Flags().IntVar(&taskDelay, "task-delay", 5, "seconds to wait before auto-starting")
	settings.AddCommand(set)
	return settings
}

func newVerifyCmd(dataDir *string) *cobra.Command {
	var taskID, taskType string
	var duration, timeOnPage, clicks, scroll int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Score a task against interaction numbers without a browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadQuietApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()
			task := taskdto.TaskOutput{ID: taskID, Type: taskType, Duration: duration}
			if strings.TrimSpace(taskID) != "" && !cmd.Flags().Changed("duration") {
				if task, err = app.TaskCLI.Get(ctx, taskID); err != nil {
					return err
				}
			}
			out, err := app.Engagement.Score(ctx, engagementdto.ScoreInput{
				Task:        task,
				TimeOnPage:  timeOnPage,
				ClickCount:  clicks,
				ScrollDepth: scroll,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&taskID, "task-id", "", "task id from the catalog")
	cmd.Flags().StringVar(&taskType, "type", "visit", "task type when no catalog task is used")
	cmd.Flags().IntVar(&duration, "duration", 0, "required seconds (overrides the catalog task)")
	cmd.Flags().IntVar(&timeOnPage, "time", 0, "seconds spent on the page")
	cmd.Flags().IntVar(&clicks, "clicks", 0, "number of clicks")
	cmd.Flags().IntVar(&scroll, "scroll", 0, "maximum scroll depth in percent")
	return cmd
}

func remoteClient(dataDir, addr string) (*runtimeoutadapter.RemoteClient, error) {
	if strings.TrimSpace(addr) == "" {
		cfg, err := config.New(dataDir)
		if err != nil {
			return nil, err
		}
		addr = cfg.ListenAddr
	}
	return runtimeoutadapter.NewRemoteClient(addr, id.UUID{}), nil
}

func newSendCmd(dataDir *string) *cobra.Command {
	var addr, msgType, data, url string
	var tabID int

	cmd := &cobra.Command{
		Use:   "send --type <TYPE> [--data JSON]",
		Short: "Send one protocol message to the running background",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(msgType) == "" {
				return fmt.Errorf("--type is required")
			}
			env := runtimedto.Envelope{Type: msgType, URL: url}
			if strings.TrimSpace(data) != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				env.Data = json.RawMessage(data)
			}
			if cmd.Flags().Changed("tab-id") {
				env.TabID = runtimedto.IntPtr(tabID)
			}
			client, err := remoteClient(*dataDir, addr)
			if err != nil {
				return err
			}
			raw, err := client.Send(context.Background(), env)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "background address (defaults to listen_addr)")
	cmd.Flags().StringVar(&msgType, "type", "", "message type, e.g. GET_TASKS")
	cmd.Flags().StringVar(&data, "data", "", "JSON payload")
	cmd.Flags().StringVar(&url, "url", "", "page url")
	cmd.Flags().IntVar(&tabID, "tab-id", 0, "tab id for page messages")
	return cmd
}

func newWatchCmd(dataDir *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream badge changes and page notices from the background",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := remoteClient(*dataDir, addr)
			if err != nil {
				return err
			}
			ctx, stop := signalContext()
			defer stop()
			enc := json.NewEncoder(cmd.OutOrStdout())
			return client.Watch(ctx, func(evt runtimedto.Event) error {
				return enc.Encode(evt)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "background address (defaults to listen_addr)")
	return cmd
}
