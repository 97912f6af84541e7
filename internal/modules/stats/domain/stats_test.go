package domain_test

import (
	"testing"

	"socialteam/internal/modules/stats/domain"
)

func TestRecordSumsPoints(t *testing.T) {
	t.Parallel()
	var s domain.Stats
	var err error
	for _, points := range []int{10, 0, 20} {
		s, err = s.Record(points)
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if s.TasksCompleted != 3 || s.PointsEarned != 30 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if _, err := s.Record(-1); err == nil {
		t.Fatalf("expected negative points to be rejected")
	}
}

func TestBadgeText(t *testing.T) {
	t.Parallel()
	cases := map[int]string{0: "", -2: "", 1: "1", 42: "42"}
	for count, want := range cases {
		if got := domain.BadgeText(count); got != want {
			t.Fatalf("BadgeText(%d) = %q, want %q", count, got, want)
		}
	}
}
