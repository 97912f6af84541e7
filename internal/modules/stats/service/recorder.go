package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"socialteam/internal/modules/stats/domain"
	statsout "socialteam/internal/modules/stats/port/out"
	"socialteam/internal/platform/logging"
)

const defaultMailboxSize = 64

var errStopped = errors.New("stats recorder stopped")

type recordKind int

const (
	recordCompletion recordKind = iota
	recordReset
)

type request struct {
	kind   recordKind
	taskID string
	points int
	reply  chan reply
	// gen is the done channel of the loop the request was sent to.
	gen chan struct{}
}

type reply struct {
	stats domain.Stats
	err   error
}

// Recorder is the single writer of the stats counters. Every mutation in the
// process goes through its mailbox and is applied as one store transaction.
type Recorder struct {
	store  statsout.Store
	logger hclog.Logger

	mailbox chan request
	wg      sync.WaitGroup

	mu      sync.RWMutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewRecorder(store statsout.Store, logger hclog.Logger, mailboxSize int) *Recorder {
	if mailboxSize <= 0 {
		mailboxSize = defaultMailboxSize
	}
	return &Recorder{
		store:   store,
		logger:  logging.OrDiscard(logger),
		mailbox: make(chan request, mailboxSize),
	}
}

func (r *Recorder) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true
	r.wg.Add(1)
	go r.run(ctx, r.done)
}

// Stop ends the mailbox loop. Requests still queued are answered with an error.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.cancel()
	r.mu.Unlock()
	r.wg.Wait()
	for {
		select {
		case req := <-r.mailbox:
			req.reply <- reply{err: errStopped}
		default:
			return
		}
	}
}

func (r *Recorder) Record(ctx context.Context, taskID string, points int) (domain.Stats, error) {
	return r.send(ctx, request{kind: recordCompletion, taskID: taskID, points: points})
}

func (r *Recorder) Reset(ctx context.Context) (domain.Stats, error) {
	return r.send(ctx, request{kind: recordReset})
}

func (r *Recorder) send(ctx context.Context, req request) (domain.Stats, error) {
	r.mu.RLock()
	running, done := r.running, r.done
	r.mu.RUnlock()
	if !running {
		return domain.Stats{}, fmt.Errorf("stats recorder is not running")
	}
	req.reply = make(chan reply, 1)
	req.gen = done
	select {
	case r.mailbox <- req:
	case <-done:
		return domain.Stats{}, errStopped
	case <-ctx.Done():
		return domain.Stats{}, ctx.Err()
	}
	select {
	case res := <-req.reply:
		return res.stats, res.err
	case <-done:
		// The loop answers before it exits.
		select {
		case res := <-req.reply:
			return res.stats, res.err
		default:
			return domain.Stats{}, errStopped
		}
	case <-ctx.Done():
		return domain.Stats{}, ctx.Err()
	}
}

// run serves the mailbox until ctx ends. Requests addressed to an earlier
// loop are refused so a restart never applies work its caller gave up on.
func (r *Recorder) run(ctx context.Context, done chan struct{}) {
	defer r.wg.Done()
	defer func() {
		r.mu.Lock()
		if r.done == done {
			r.running = false
		}
		r.mu.Unlock()
		close(done)
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-r.mailbox:
			if req.gen != done {
				req.reply <- reply{err: errStopped}
				continue
			}
			stats, err := r.apply(ctx, req)
			if err != nil {
				r.logger.Error("stats update failed", "task", req.taskID, "error", err)
			}
			req.reply <- reply{stats: stats, err: err}
		}
	}
}

func (r *Recorder) apply(ctx context.Context, req request) (domain.Stats, error) {
	switch req.kind {
	case recordCompletion:
		stats, err := r.store.Apply(ctx, func(current domain.Stats) (domain.Stats, error) {
			return current.Record(req.points)
		})
		if err != nil {
			return domain.Stats{}, fmt.Errorf("record task %s: %w", req.taskID, err)
		}
		r.logger.Debug("task recorded", "task", req.taskID, "points", req.points, "completed", stats.TasksCompleted)
		return stats, nil
	case recordReset:
		if err := r.store.Save(ctx, domain.Stats{}); err != nil {
			return domain.Stats{}, fmt.Errorf("reset stats: %w", err)
		}
		return domain.Stats{}, nil
	default:
		return domain.Stats{}, fmt.Errorf("unknown stats request %d", req.kind)
	}
}
