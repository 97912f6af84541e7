package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", t.TempDir()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestStatsShowOnFreshDataDir(t *testing.T) {
	out, err := execute(t, "stats", "show")
	if err != nil {
		t.Fatalf("stats show: %v", err)
	}
	if !strings.Contains(out, "tasks completed: 0") || !strings.Contains(out, "points earned: 0") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSettingsSetRequiresAFlag(t *testing.T) {
	if _, err := execute(t, "settings", "set"); err == nil {
		t.Fatalf("expected error without flags")
	}
}

func TestVerifyScoresAdHocTask(t *testing.T) {
	out, err := execute(t, "verify", "--type", "visit", "--duration", "10", "--time", "12", "--clicks", "1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	var got struct {
		Completed bool `json:"completed"`
		Score     int  `json:"score"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !got.Completed || got.Score != 75 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestTasksShowCatalogTask(t *testing.T) {
	out, err := execute(t, "tasks", "show", "1")
	if err != nil {
		t.Fatalf("tasks show: %v", err)
	}
	if !strings.Contains(out, "Visit ClickForCharity Nostr Post") {
		t.Fatalf("unexpected output: %q", out)
	}
}
