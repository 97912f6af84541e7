package out_test

import (
	"context"
	"errors"
	"testing"

	runtimeoutadapter "socialteam/internal/modules/runtime/adapter/out"
	apperrors "socialteam/internal/platform/errors"
)

func TestCommandNotifierWithoutCommandIsUnavailable(t *testing.T) {
	t.Parallel()
	for _, command := range []string{"", "socialteam-no-such-notifier"} {
		err := runtimeoutadapter.NewCommandNotifier(command).Notify(context.Background(), "title", "message")
		if !errors.Is(err, apperrors.ErrCapabilityUnavailable) {
			t.Fatalf("command %q: expected ErrCapabilityUnavailable, got %v", command, err)
		}
	}
}

type recordingLauncher struct {
	opened []string
	err    error
}

func (l *recordingLauncher) Open(_ context.Context, url string) error {
	if l.err != nil {
		return l.err
	}
	l.opened = append(l.opened, url)
	return nil
}

func TestLauncherTabsHandOutIncreasingIDs(t *testing.T) {
	t.Parallel()
	l := &recordingLauncher{}
	tabs := runtimeoutadapter.NewLauncherTabs(l)
	first, err := tabs.Open(context.Background(), "https://iris.to")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	second, err := tabs.Open(context.Background(), "https://lightning.news")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if first != 1 || second != 2 || len(l.opened) != 2 {
		t.Fatalf("unexpected ids %d %d (opened %v)", first, second, l.opened)
	}

	l.err = errors.New("no browser")
	if _, err := tabs.Open(context.Background(), "https://google.com"); err == nil {
		t.Fatalf("expected launcher error")
	}
}
