package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	taskout "socialteam/internal/modules/task/adapter/out"
	"socialteam/internal/modules/task/service"
	"socialteam/internal/modules/task/usecase"
	"socialteam/internal/platform/clock"
	apperrors "socialteam/internal/platform/errors"
)

var fixedNow = clock.Fixed(time.UnixMilli(1700000000123).UTC())

func TestBuiltinQueueMatchesPopupList(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewTaskService(fixedNow, taskout.NewYAMLCatalog("")))
	tasks, err := uc.ListQueue(context.Background())
	if err != nil {
		t.Fatalf("list queue: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 queue tasks, got %d", len(tasks))
	}
	wantPoints := []int{10, 15, 20}
	wantTypes := []string{"visit", "search", "partner"}
	for i, task := range tasks {
		if task.Points != wantPoints[i] || task.Type != wantTypes[i] {
			t.Fatalf("task %d: got points=%d type=%s", i, task.Points, task.Type)
		}
	}
	if !strings.Contains(tasks[0].Description, "\n2. Like or repost") {
		t.Fatalf("expected multi-line description, got %q", tasks[0].Description)
	}
}

func TestCampaignIDsAreStampedAndResolvable(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewTaskService(fixedNow, taskout.NewYAMLCatalog("")))
	tasks, err := uc.ListCampaign(context.Background())
	if err != nil {
		t.Fatalf("list campaign: %v", err)
	}
	if len(tasks) != 3 || tasks[0].ID != "nostr-engagement-1700000000123" {
		t.Fatalf("unexpected campaign ids: %+v", tasks)
	}
	if len(tasks[1].Steps) != 4 {
		t.Fatalf("expected steps to be carried, got %v", tasks[1].Steps)
	}
	got, err := uc.Get(context.Background(), tasks[2].ID)
	if err != nil {
		t.Fatalf("get stamped id: %v", err)
	}
	if got.ID != tasks[2].ID || got.Points != 25 {
		t.Fatalf("unexpected task for stamped id: %+v", got)
	}
	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOverrideCatalogReplacesBuiltin(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `queue:
  - id: solo
    title: Only task
    targetUrl: https://clickforcharity.net/how-it-works
    points: 5
    type: visit
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	uc := usecase.NewInteractor(service.NewTaskService(fixedNow, taskout.NewYAMLCatalog(path)))
	tasks, err := uc.ListQueue(context.Background())
	if err != nil {
		t.Fatalf("list queue: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "solo" || tasks[0].Domain().RequiredDuration() != 30 {
		t.Fatalf("unexpected override result: %+v", tasks)
	}
	campaign, err := uc.ListCampaign(context.Background())
	if err != nil || len(campaign) != 0 {
		t.Fatalf("expected empty campaign from override, got %v err=%v", campaign, err)
	}
}

func TestInvalidOverrideIsRejected(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte("queue:\n  - id: x\n    title: X\n    targetUrl: u\n    type: video\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	uc := usecase.NewInteractor(service.NewTaskService(fixedNow, taskout.NewYAMLCatalog(path)))
	if _, err := uc.ListQueue(context.Background()); err == nil {
		t.Fatalf("expected validation error for unsupported type")
	}
}
