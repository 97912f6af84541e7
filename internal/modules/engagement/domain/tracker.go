package domain

import (
	"math"
	"strings"
	"time"
)

type ClickEvent struct {
	Tag   string
	Href  string
	Text  string
	Label string
	At    time.Time
}

func (e ClickEvent) IsAnchor() bool {
	return strings.EqualFold(strings.TrimSpace(e.Tag), "a")
}

// Tracker accumulates the signals of a single page. It is not safe for
// concurrent use; the page agent serializes access.
type Tracker struct {
	snap Snapshot
}

func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{LinksClicked: []LinkClick{}}}
}

// Tick records one elapsed second of page lifetime.
func (t *Tracker) Tick() {
	t.snap.TimeOnPage++
}

// Scroll keeps the deepest scroll percentage observed. It reports whether the
// event produced a usable percentage; pages without a scroll range are ignored.
func (t *Tracker) Scroll(scrollY, scrollHeight, viewportHeight float64) bool {
	pct, ok := ScrollPercent(scrollY, scrollHeight, viewportHeight)
	if !ok {
		return false
	}
	if pct > t.snap.ScrollDepth {
		t.snap.ScrollDepth = pct
	}
	return true
}

func (t *Tracker) Click(e ClickEvent) {
	t.snap.ClickCount++
	if !e.IsAnchor() {
		return
	}
	t.snap.LinksClicked = append(t.snap.LinksClicked, LinkClick{
		Href:      e.Href,
		Text:      strings.TrimSpace(e.Text),
		Timestamp: e.At.UnixMilli(),
	})
}

func (t *Tracker) Input() {
	t.snap.FormsInteracted = true
}

func (t *Tracker) Snapshot() Snapshot {
	return t.snap.Clone()
}

// ScrollPercent computes round(scrollY / (scrollHeight - viewportHeight) * 100)
// clamped to [0,100].
func ScrollPercent(scrollY, scrollHeight, viewportHeight float64) (int, bool) {
	scrollRange := scrollHeight - viewportHeight
	if scrollRange <= 0 || math.IsNaN(scrollRange) || math.IsInf(scrollRange, 0) || math.IsNaN(scrollY) {
		return 0, false
	}
	pct := math.Round(scrollY / scrollRange * 100)
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	return int(pct), true
}
