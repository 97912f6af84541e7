package out

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	queueout "socialteam/internal/modules/queue/port/out"
	runtimedto "socialteam/internal/modules/runtime/dto"
	runtimein "socialteam/internal/modules/runtime/port/in"
	"socialteam/internal/platform/logging"
)

const peerTimeout = time.Second

// Peer is a background running in another process.
type Peer interface {
	Send(ctx context.Context, env runtimedto.Envelope) (json.RawMessage, error)
}

// RuntimeCompletions reports popup completions as TASK_COMPLETED to the
// in-process background, which records the task and sets the badge. A peer
// background sharing the database is then asked to reload its badge.
type RuntimeCompletions struct {
	runtime runtimein.Usecase
	peer    Peer
	logger  hclog.Logger
}

func NewRuntimeCompletions(runtime runtimein.Usecase, peer Peer, logger hclog.Logger) queueout.CompletionReporter {
	return &RuntimeCompletions{runtime: runtime, peer: peer, logger: logging.OrDiscard(logger)}
}

func (c *RuntimeCompletions) Completed(ctx context.Context, taskID string, points int) error {
	resp := c.runtime.Dispatch(ctx, runtimedto.Envelope{
		Type:   "TASK_COMPLETED",
		TaskID: runtimedto.FlexString(taskID),
		Points: runtimedto.IntPtr(points),
	})
	if failed, ok := resp.(runtimedto.ErrorResponse); ok {
		return errors.New(failed.Error)
	}
	if c.peer == nil {
		return nil
	}
	// The count is left out so the peer reloads it from storage.
	pctx, cancel := context.WithTimeout(ctx, peerTimeout)
	defer cancel()
	if _, err := c.peer.Send(pctx, runtimedto.Envelope{Type: "UPDATE_BADGE"}); err != nil {
		c.logger.Debug("badge sync with background skipped", "error", err)
	}
	return nil
}
