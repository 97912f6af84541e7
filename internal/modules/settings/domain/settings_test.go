package domain_test

import (
	"testing"

	"socialteam/internal/modules/settings/domain"
)

func TestApplyPatchChangesOnlyGivenFields(t *testing.T) {
	t.Parallel()
	autoStart := true
	delay := -3
	got := domain.Defaults().Apply(domain.Patch{AutoStart: &autoStart, TaskDelay: &delay})
	want := domain.Settings{Notifications: true, AutoStart: true, TaskDelay: 0}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
