package bootstrap_test

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"socialteam/internal/bootstrap"
	engagementdomain "socialteam/internal/modules/engagement/domain"
	runtimedto "socialteam/internal/modules/runtime/dto"
	statsdomain "socialteam/internal/modules/stats/domain"
	"socialteam/internal/platform/config"
	"socialteam/internal/platform/storage"
)

type nopLauncher struct{}

func (nopLauncher) Open(context.Context, string) error { return nil }

func newApp(t *testing.T) *bootstrap.App {
	t.Helper()
	return newAppIn(t, t.TempDir(), "127.0.0.1:0")
}

// newAppIn builds an app on dataDir whose remote client targets listenAddr.
func newAppIn(t *testing.T, dataDir, listenAddr string) *bootstrap.App {
	t.Helper()
	cfg, err := config.New(dataDir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.NotifyCommand = ""
	cfg.ListenAddr = listenAddr
	app, err := bootstrap.New(cfg, bootstrap.Options{
		Version:   "1.0.0",
		LogOutput: io.Discard,
		Launcher:  nopLauncher{},
		Intervals: engagementdomain.Intervals{Second: 5 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestTaskCompletedThroughRuntimeUpdatesStats(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)
	if _, err := app.Runtime.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	resp := app.Runtime.Dispatch(ctx, runtimedto.Envelope{Type: "TASK_COMPLETED", TaskID: "1", Points: runtimedto.IntPtr(10)})
	if ack, ok := resp.(runtimedto.Ack); !ok || !ack.Success {
		t.Fatalf("unexpected response: %#v", resp)
	}
	stats, err := app.StatsCLI.Show(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TasksCompleted != 1 || stats.PointsEarned != 10 || stats.Badge != "1" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPageAgentNoticesReachWatchers(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)
	events, cancel := app.Runtime.Subscribe(16)
	defer cancel()

	app.Runtime.Dispatch(ctx, runtimedto.Envelope{
		Type:  "TAB_UPDATED",
		TabID: runtimedto.IntPtr(7),
		Data:  []byte(`{"url":"https://iris.to/feed","status":"complete"}`),
	})
	app.Runtime.Dispatch(ctx, runtimedto.Envelope{
		Type:  "PAGE_CLICK",
		TabID: runtimedto.IntPtr(7),
		Data:  []byte(`{"tag":"button","label":"Like"}`),
	})

	want := map[string]bool{"TARGET_SITE_VISITED": false, "NOSTR_INTERACTION": false}
	deadline := time.After(2 * time.Second)
	for !want["TARGET_SITE_VISITED"] || !want["NOSTR_INTERACTION"] {
		select {
		case evt := <-events:
			if _, ok := want[evt.Type]; ok {
				want[evt.Type] = true
				if evt.TabID == nil || *evt.TabID != 7 {
					t.Fatalf("event without tab: %+v", evt)
				}
			}
		case <-deadline:
			t.Fatalf("missing events: %v", want)
		}
	}

	resp := app.Runtime.Dispatch(ctx, runtimedto.Envelope{Type: "CHECK_PAGE_INTERACTION", TabID: runtimedto.IntPtr(7)})
	if failed, isErr := resp.(runtimedto.ErrorResponse); isErr {
		t.Fatalf("interaction report failed: %s", failed.Error)
	}
}

func TestQueueSessionRecordsIntoSharedStats(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)
	view, err := app.QueueTUI.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if view.Counter != "Task 1 of 3" || !view.CanStart {
		t.Fatalf("unexpected first view: %+v", view)
	}
	if _, err := app.QueueTUI.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	done, err := app.QueueTUI.Complete(ctx)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.TasksCompleted != 1 || done.PointsEarned != 10 {
		t.Fatalf("unexpected totals after completion: %+v", done)
	}
}

func completeFirstTask(t *testing.T, app *bootstrap.App) {
	t.Helper()
	ctx := context.Background()
	if _, err := app.QueueTUI.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := app.QueueTUI.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := app.QueueTUI.Complete(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
}

func TestPopupCompletionUpdatesBadge(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)
	if _, err := app.Runtime.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	completeFirstTask(t, app)
	badge := app.Runtime.Badge(ctx)
	if badge.Count != 1 || badge.Text != "1" {
		t.Fatalf("expected badge to follow the popup completion, got %+v", badge)
	}
	stats, err := app.StatsCLI.Show(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TasksCompleted != 1 || stats.PointsEarned != 10 {
		t.Fatalf("completion recorded more than once: %+v", stats)
	}
}

func TestPopupCompletionRefreshesRunningBackgroundBadge(t *testing.T) {
	dataDir := t.TempDir()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	background := newAppIn(t, dataDir, ln.Addr().String())
	popup := newAppIn(t, dataDir, ln.Addr().String())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- background.Server.Serve(ctx, ln) }()
	t.Cleanup(func() {
		cancel()
		<-served
	})
	if _, err := background.Runtime.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	if got := background.Runtime.Badge(ctx).Count; got != 0 {
		t.Fatalf("expected empty badge before completion, got %d", got)
	}

	completeFirstTask(t, popup)

	deadline := time.Now().Add(2 * time.Second)
	for background.Runtime.Badge(ctx).Count != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("background badge stayed at %+v", background.Runtime.Badge(ctx))
		}
		time.Sleep(10 * time.Millisecond)
	}
	stats, err := background.StatsCLI.Show(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TasksCompleted != 1 {
		t.Fatalf("expected one shared completion, got %+v", stats)
	}
}

func TestStatsLiveInSyncArea(t *testing.T) {
	ctx := context.Background()
	app := newApp(t)
	completeFirstTask(t, app)

	db, err := storage.Open(app.Config.DBPath)
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	defer db.Close()
	var stats statsdomain.Stats
	found, err := db.Area(storage.SyncArea).Get(ctx, statsdomain.StorageKey, &stats)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if !found || stats.TasksCompleted != 1 || stats.PointsEarned != 10 {
		t.Fatalf("expected stats in the sync area, got found=%v %+v", found, stats)
	}
}
