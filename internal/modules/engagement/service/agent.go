package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"socialteam/internal/modules/engagement/domain"
	engagementout "socialteam/internal/modules/engagement/port/out"
	taskdomain "socialteam/internal/modules/task/domain"
	"socialteam/internal/platform/clock"
	apperrors "socialteam/internal/platform/errors"
	"socialteam/internal/platform/id"
	"socialteam/internal/platform/logging"
)

type AgentOptions struct {
	Brand     string
	Intervals domain.Intervals
	Logger    hclog.Logger
}

// Agent keeps one page per tab. Each page owns a tracker, a tick loop and any
// verification watchers; replacing or closing the page cancels all of them.
type Agent struct {
	clock  clock.Clock
	idGen  id.Generator
	outbox engagementout.Outbox
	logger hclog.Logger
	brand  string
	iv     domain.Intervals

	root   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	pages map[int]*page
}

type page struct {
	id     string
	tabID  int
	url    string
	site   domain.SiteType
	target bool

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	tracker  *domain.Tracker
	trackers bool
	due      []dueCheck
}

type dueCheck struct {
	task  taskdomain.Task
	check domain.Check
	at    int
}

func NewAgent(clk clock.Clock, idGen id.Generator, outbox engagementout.Outbox, opts AgentOptions) *Agent {
	iv := opts.Intervals
	if iv.Second <= 0 {
		iv.Second = time.Second
	}
	if iv.Search <= 0 {
		iv.Search = 5 * time.Second
	}
	if iv.Social <= 0 {
		iv.Social = 10 * time.Second
	}
	root, cancel := context.WithCancel(context.Background())
	return &Agent{
		clock:  clk,
		idGen:  idGen,
		outbox: outbox,
		logger: logging.OrDiscard(opts.Logger),
		brand:  strings.ToLower(strings.TrimSpace(opts.Brand)),
		iv:     iv,
		root:   root,
		cancel: cancel,
		pages:  map[int]*page{},
	}
}

// Close discards every page and waits for their loops to exit.
func (a *Agent) Close() {
	a.cancel()
	a.mu.Lock()
	a.pages = map[int]*page{}
	a.mu.Unlock()
	a.wg.Wait()
}

// PageLoaded starts a fresh lifecycle for tabID. Any previous page in the tab
// is discarded along with its counters and watchers.
func (a *Agent) PageLoaded(ctx context.Context, tabID int, rawURL string) error {
	if tabID < 0 {
		return fmt.Errorf("%w: tab id must be non-negative", apperrors.ErrInvalidInput)
	}
	site, target := domain.DetectSite(domain.HostOf(rawURL))
	pctx, pcancel := context.WithCancel(a.root)
	p := &page{
		id:      a.idGen.New(),
		tabID:   tabID,
		url:     rawURL,
		site:    site,
		target:  target,
		ctx:     pctx,
		cancel:  pcancel,
		tracker: domain.NewTracker(),
	}

	a.mu.Lock()
	if old, ok := a.pages[tabID]; ok {
		old.cancel()
	}
	a.pages[tabID] = p
	a.mu.Unlock()

	a.wg.Add(1)
	go a.tickLoop(p)
	a.logger.Debug("page loaded", "tab", tabID, "page", p.id, "url", rawURL, "site", string(site))

	if target {
		a.emit(ctx, p, domain.NoticeTargetSiteVisited, map[string]any{
			"domain":    domain.HostOf(rawURL),
			"type":      string(site),
			"url":       rawURL,
			"timestamp": clock.Millis(a.clock),
		})
	}
	return nil
}

func (a *Agent) PageClosed(_ context.Context, tabID int) error {
	a.mu.Lock()
	p, ok := a.pages[tabID]
	delete(a.pages, tabID)
	a.mu.Unlock()
	if ok {
		p.cancel()
		a.logger.Debug("page closed", "tab", tabID, "page", p.id)
	}
	return nil
}

// TargetDetected switches on the site-specific trackers for the page.
func (a *Agent) TargetDetected(ctx context.Context, tabID int) error {
	p, err := a.page(tabID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	already := p.trackers
	p.trackers = true
	p.mu.Unlock()
	if already || p.site != domain.SiteOfficial {
		return nil
	}
	if pages := domain.KeyPagesIn(p.url); len(pages) > 0 {
		a.emit(ctx, p, domain.NoticeKeyPageVisited, map[string]any{
			"pages":     pages,
			"url":       p.url,
			"timestamp": clock.Millis(a.clock),
		})
	}
	return nil
}

func (a *Agent) Scroll(_ context.Context, tabID int, scrollY, scrollHeight, viewportHeight float64) error {
	p, err := a.page(tabID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.tracker.Scroll(scrollY, scrollHeight, viewportHeight)
	p.mu.Unlock()
	return nil
}

func (a *Agent) Click(ctx context.Context, tabID int, event domain.ClickEvent) error {
	p, err := a.page(tabID)
	if err != nil {
		return err
	}
	if event.At.IsZero() {
		event.At = a.clock.Now()
	}
	p.mu.Lock()
	p.tracker.Click(event)
	trackers := p.trackers
	p.mu.Unlock()
	if !trackers {
		return nil
	}

	switch p.site {
	case domain.SiteNostr:
		if action, ok := domain.NostrAction(event.Label + " " + event.Text); ok {
			a.emit(ctx, p, domain.NoticeNostrInteraction, map[string]any{
				"action":    action,
				"timestamp": event.At.UnixMilli(),
			})
		}
	case domain.SiteSearch:
		if event.IsAnchor() && a.brand != "" && strings.Contains(strings.ToLower(event.Href), a.brand) {
			a.emit(ctx, p, domain.NoticeSearchResultClicked, map[string]any{
				"url":       event.Href,
				"timestamp": event.At.UnixMilli(),
			})
		}
	}
	return nil
}

func (a *Agent) Input(_ context.Context, tabID int) error {
	p, err := a.page(tabID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.tracker.Input()
	p.mu.Unlock()
	return nil
}

// Submit records a form submission; on search pages it reports the query.
func (a *Agent) Submit(ctx context.Context, tabID int, query string) error {
	p, err := a.page(tabID)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.tracker.Input()
	trackers := p.trackers
	p.mu.Unlock()
	if trackers && p.site == domain.SiteSearch {
		a.emit(ctx, p, domain.NoticeSearchPerformed, map[string]any{
			"query":     strings.TrimSpace(query),
			"timestamp": clock.Millis(a.clock),
		})
	}
	return nil
}

// StartVerification arms the passive check for task on the page. Types
// without a check are accepted and ignored.
func (a *Agent) StartVerification(_ context.Context, tabID int, task taskdomain.Task) error {
	p, err := a.page(tabID)
	if err != nil {
		return err
	}
	check, ok := domain.PassiveCheck(task, a.brand, a.iv)
	if !ok {
		a.logger.Debug("no passive check for task type", "task", task.ID, "type", string(task.Type))
		return nil
	}
	if check.OneShot {
		p.mu.Lock()
		ticks := int(check.Delay / a.iv.Second)
		p.due = append(p.due, dueCheck{task: task, check: check, at: p.tracker.Snapshot().TimeOnPage + ticks})
		p.mu.Unlock()
		return nil
	}
	a.wg.Add(1)
	go a.pollLoop(p, task, check)
	return nil
}

func (a *Agent) Interaction(_ context.Context, tabID int) (domain.Report, error) {
	p, err := a.page(tabID)
	if err != nil {
		return domain.Report{}, err
	}
	p.mu.Lock()
	snap := p.tracker.Snapshot()
	p.mu.Unlock()
	return domain.Report{Target: p.target, Site: p.site, URL: p.url, Snapshot: snap}, nil
}

func (a *Agent) VerifyCompletion(_ context.Context, tabID int, task taskdomain.Task) (domain.Result, error) {
	p, err := a.page(tabID)
	if err != nil {
		return domain.Result{}, err
	}
	p.mu.Lock()
	snap := p.tracker.Snapshot()
	p.mu.Unlock()
	return domain.Verify(task, snap), nil
}

func (a *Agent) page(tabID int) (*page, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.pages[tabID]
	if !ok {
		return nil, fmt.Errorf("%w: no page loaded in tab %d", apperrors.ErrNotFound, tabID)
	}
	return p, nil
}

func (a *Agent) tickLoop(p *page) {
	defer a.wg.Done()
	ticker := time.NewTicker(a.iv.Second)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mu.Lock()
			p.tracker.Tick()
			snap := p.tracker.Snapshot()
			var ready []dueCheck
			pending := p.due[:0]
			for _, d := range p.due {
				if snap.TimeOnPage >= d.at {
					ready = append(ready, d)
				} else {
					pending = append(pending, d)
				}
			}
			p.due = pending
			p.mu.Unlock()
			for _, d := range ready {
				if d.check.Passed(snap) {
					a.passed(p, d.task, d.check.Kind, snap)
				}
			}
		}
	}
}

func (a *Agent) pollLoop(p *page, task taskdomain.Task, check domain.Check) {
	defer a.wg.Done()
	ticker := time.NewTicker(check.Delay)
	defer ticker.Stop()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mu.Lock()
			snap := p.tracker.Snapshot()
			p.mu.Unlock()
			if check.Passed(snap) {
				a.passed(p, task, check.Kind, snap)
				return
			}
		}
	}
}

func (a *Agent) passed(p *page, task taskdomain.Task, kind domain.PassKind, snap domain.Snapshot) {
	data := map[string]any{"taskId": task.ID, "type": string(kind)}
	switch kind {
	case domain.PassTimeSpent:
		data["timeSpent"] = snap.TimeOnPage
	case domain.PassSocialEngagement:
		data["interactions"] = snap
	}
	a.logger.Info("task verification passed", "task", task.ID, "kind", string(kind), "tab", p.tabID)
	a.emit(p.ctx, p, domain.NoticeVerificationPassed, data)
}

// emit logs and drops notices the outbox cannot deliver.
func (a *Agent) emit(ctx context.Context, p *page, kind string, data map[string]any) {
	if a.outbox == nil {
		return
	}
	notice := domain.Notice{
		Kind:      kind,
		TabID:     p.tabID,
		URL:       p.url,
		Timestamp: clock.Millis(a.clock),
		Data:      data,
	}
	if err := a.outbox.Send(ctx, notice); err != nil {
		a.logger.Warn("send notice failed", "kind", kind, "tab", p.tabID, "error", err)
	}
}
