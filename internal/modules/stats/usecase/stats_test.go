package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	statsout "socialteam/internal/modules/stats/adapter/out"
	"socialteam/internal/modules/stats/dto"
	statsin "socialteam/internal/modules/stats/port/in"
	"socialteam/internal/modules/stats/service"
	statsusecase "socialteam/internal/modules/stats/usecase"
	apperrors "socialteam/internal/platform/errors"
	"socialteam/internal/platform/storage"
)

func newStats(t *testing.T, dbPath string) statsin.Usecase {
	t.Helper()
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store := statsout.NewKVStore(db.Area(storage.SyncArea))
	recorder := service.NewRecorder(store, nil, 0)
	recorder.Start(context.Background())
	t.Cleanup(recorder.Stop)
	return statsusecase.NewInteractor(store, recorder)
}

func TestLoadDefaultsToZero(t *testing.T) {
	t.Parallel()
	uc := newStats(t, filepath.Join(t.TempDir(), "stats.db"))
	got, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TasksCompleted != 0 || got.PointsEarned != 0 || got.Badge != "" {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestCompleteSkipCompleteTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newStats(t, filepath.Join(t.TempDir(), "stats.db"))
	if _, err := uc.Record(ctx, dto.RecordInput{TaskID: "1", Points: 10}); err != nil {
		t.Fatalf("record 1: %v", err)
	}
	got, err := uc.Record(ctx, dto.RecordInput{TaskID: "3", Points: 20})
	if err != nil {
		t.Fatalf("record 3: %v", err)
	}
	if got.TasksCompleted != 2 || got.PointsEarned != 30 || got.Badge != "2" {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if _, err := uc.Record(ctx, dto.RecordInput{TaskID: "x", Points: -5}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestConcurrentRecordsAcrossRecordersKeepEveryIncrement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "shared.db")
	background := newStats(t, dbPath)
	popup := newStats(t, dbPath)

	const perWriter = 15
	var wg sync.WaitGroup
	for _, uc := range []statsin.Usecase{background, popup} {
		wg.Add(1)
		go func(uc statsin.Usecase) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := uc.Record(ctx, dto.RecordInput{TaskID: "t", Points: 2}); err != nil {
					t.Errorf("record: %v", err)
					return
				}
			}
		}(uc)
	}
	wg.Wait()

	got, err := background.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TasksCompleted != 2*perWriter || got.PointsEarned != 4*perWriter {
		t.Fatalf("lost updates: %+v", got)
	}
}

func TestSaveOverwritesAndResetClears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newStats(t, filepath.Join(t.TempDir(), "stats.db"))
	if err := uc.Save(ctx, dto.SaveInput{TasksCompleted: 5, PointsEarned: 70}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := uc.Save(ctx, dto.SaveInput{TasksCompleted: 1, PointsEarned: 10}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := uc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TasksCompleted != 1 || got.PointsEarned != 10 {
		t.Fatalf("expected last write to win, got %+v", got)
	}
	reset, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset.TasksCompleted != 0 || reset.Badge != "" {
		t.Fatalf("unexpected reset stats: %+v", reset)
	}
}
