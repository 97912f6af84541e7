package out

import (
	"context"
	"sync/atomic"

	runtimeout "socialteam/internal/modules/runtime/port/out"
	"socialteam/internal/platform/launcher"
)

// LauncherTabs opens pages in the system browser. The browser does not report
// tab ids back, so ids are handed out locally in opening order.
type LauncherTabs struct {
	launcher launcher.Launcher
	next     atomic.Int64
}

func NewLauncherTabs(l launcher.Launcher) runtimeout.Tabs {
	return &LauncherTabs{launcher: l}
}

func (t *LauncherTabs) Open(ctx context.Context, url string) (int, error) {
	if err := t.launcher.Open(ctx, url); err != nil {
		return 0, err
	}
	return int(t.next.Add(1)), nil
}
