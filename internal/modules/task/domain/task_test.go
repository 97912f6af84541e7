package domain_test

import (
	"testing"

	"socialteam/internal/modules/task/domain"
)

func TestRequiredDurationDefaultsToThirtySeconds(t *testing.T) {
	t.Parallel()
	if got := (domain.Task{}).RequiredDuration(); got != domain.DefaultDuration {
		t.Fatalf("expected default %d, got %d", domain.DefaultDuration, got)
	}
	if got := (domain.Task{Duration: -4}).RequiredDuration(); got != domain.DefaultDuration {
		t.Fatalf("expected default for negative duration, got %d", got)
	}
	if got := (domain.Task{Duration: 45}).RequiredDuration(); got != 45 {
		t.Fatalf("expected explicit duration, got %d", got)
	}
}

func TestParseTypeAndValidate(t *testing.T) {
	t.Parallel()
	if typ, err := domain.ParseType(" Partner "); err != nil || typ != domain.TypePartner {
		t.Fatalf("expected partner, got %q err=%v", typ, err)
	}
	if _, err := domain.ParseType("video"); err == nil {
		t.Fatalf("expected unsupported type error")
	}
	valid := domain.Task{ID: "1", Title: "Visit", TargetURL: "https://iris.to", Type: domain.TypeVisit, Points: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid task: %v", err)
	}
	invalid := valid
	invalid.Points = -1
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected negative points to be rejected")
	}
	invalid = valid
	invalid.TargetURL = ""
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected missing url to be rejected")
	}
}
