package domain_test

import (
	"testing"
	"time"

	"socialteam/internal/modules/engagement/domain"
	taskdomain "socialteam/internal/modules/task/domain"
)

func TestVerifyScoresAreSumsOfDisjointWeights(t *testing.T) {
	t.Parallel()
	task := taskdomain.Task{ID: "t", Duration: 30, Points: 10}
	allowed := map[int]bool{0: true, 25: true, 50: true, 75: true, 100: true}
	for _, timeOnPage := range []int{0, 29, 30, 90} {
		for _, clicks := range []int{0, 1, 5} {
			for _, scroll := range []int{0, 24, 25, 100} {
				snap := domain.Snapshot{TimeOnPage: timeOnPage, ClickCount: clicks, ScrollDepth: scroll}
				res := domain.Verify(task, snap)
				if !allowed[res.Score] {
					t.Fatalf("score %d outside allowed set for %+v", res.Score, snap)
				}
				if res.Completed != (res.Score >= domain.PassScore) {
					t.Fatalf("completed=%t inconsistent with score %d", res.Completed, res.Score)
				}
				if len(res.Details) != 3 {
					t.Fatalf("expected three criteria, got %v", res.Details)
				}
			}
		}
	}
}

func TestVerifyScenarios(t *testing.T) {
	t.Parallel()
	task := taskdomain.Task{ID: "1", Duration: 30, Points: 10}

	full := domain.Verify(task, domain.Snapshot{TimeOnPage: 30, ClickCount: 1, ScrollDepth: 30})
	if full.Score != 100 || !full.Completed || full.TaskID != "1" {
		t.Fatalf("expected full score, got %+v", full)
	}

	none := domain.Verify(task, domain.Snapshot{TimeOnPage: 10})
	if none.Score != 0 || none.Completed {
		t.Fatalf("expected zero score, got %+v", none)
	}

	timeOnly := domain.Verify(task, domain.Snapshot{TimeOnPage: 31})
	if timeOnly.Score != 50 || timeOnly.Completed {
		t.Fatalf("score 50 must not complete, got %+v", timeOnly)
	}

	noTime := domain.Verify(task, domain.Snapshot{ClickCount: 3, ScrollDepth: 80})
	if noTime.Score != 50 || noTime.Completed || noTime.Details[domain.CriterionTime] {
		t.Fatalf("expected interaction+scroll only, got %+v", noTime)
	}
}

func TestVerifyDefaultsMissingDuration(t *testing.T) {
	t.Parallel()
	res := domain.Verify(taskdomain.Task{ID: "x"}, domain.Snapshot{TimeOnPage: 30, ClickCount: 1})
	if res.Score != 75 || !res.Completed {
		t.Fatalf("expected default 30s duration to be met, got %+v", res)
	}
}

func TestPassiveChecksPerType(t *testing.T) {
	t.Parallel()
	iv := domain.Intervals{Search: 5 * time.Second, Social: 10 * time.Second}

	visit, ok := domain.PassiveCheck(taskdomain.Task{Type: taskdomain.TypeVisit, Duration: 45}, "clickforcharity", iv)
	if !ok || !visit.OneShot || visit.Delay != 45*time.Second || visit.Kind != domain.PassTimeSpent {
		t.Fatalf("unexpected visit check: %+v", visit)
	}
	if visit.Passed(domain.Snapshot{TimeOnPage: 44}) || !visit.Passed(domain.Snapshot{TimeOnPage: 45}) {
		t.Fatalf("visit check must require the full duration")
	}

	search, ok := domain.PassiveCheck(taskdomain.Task{Type: taskdomain.TypeSearch}, "clickforcharity", iv)
	if !ok || search.OneShot || search.Delay != 5*time.Second {
		t.Fatalf("unexpected search check: %+v", search)
	}
	brandClick := []domain.LinkClick{{Href: "https://clickforcharity.net"}}
	if search.Passed(domain.Snapshot{TimeOnPage: 60}) {
		t.Fatalf("search check must require a brand link click")
	}
	if search.Passed(domain.Snapshot{TimeOnPage: 29, LinksClicked: brandClick}) {
		t.Fatalf("search check must require 30 seconds")
	}
	if !search.Passed(domain.Snapshot{TimeOnPage: 30, LinksClicked: brandClick}) {
		t.Fatalf("search check should pass")
	}

	social, ok := domain.PassiveCheck(taskdomain.Task{Type: taskdomain.TypeSocial}, "clickforcharity", iv)
	if !ok || social.Delay != 10*time.Second {
		t.Fatalf("unexpected social check: %+v", social)
	}
	if social.Passed(domain.Snapshot{TimeOnPage: 30}) || !social.Passed(domain.Snapshot{TimeOnPage: 30, ClickCount: 1}) {
		t.Fatalf("social check must require time and a click")
	}

	if _, ok := domain.PassiveCheck(taskdomain.Task{Type: taskdomain.TypePartner}, "clickforcharity", iv); ok {
		t.Fatalf("partner tasks have no passive check")
	}
}
