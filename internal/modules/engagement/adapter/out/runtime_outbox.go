package out

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"socialteam/internal/modules/engagement/domain"
	engagementout "socialteam/internal/modules/engagement/port/out"
	runtimedto "socialteam/internal/modules/runtime/dto"
	runtimein "socialteam/internal/modules/runtime/port/in"
	apperrors "socialteam/internal/platform/errors"
)

// RuntimeOutbox posts notices to the background dispatcher in the same
// process. The dispatcher is bound after construction because it depends on
// the agent that owns this outbox.
type RuntimeOutbox struct {
	mu      sync.RWMutex
	runtime runtimein.Usecase
}

func NewRuntimeOutbox() *RuntimeOutbox {
	return &RuntimeOutbox{}
}

var _ engagementout.Outbox = (*RuntimeOutbox)(nil)

func (o *RuntimeOutbox) Bind(runtime runtimein.Usecase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.runtime = runtime
}

func (o *RuntimeOutbox) Send(ctx context.Context, notice domain.Notice) error {
	o.mu.RLock()
	runtime := o.runtime
	o.mu.RUnlock()
	if runtime == nil {
		return fmt.Errorf("%w: background not bound", apperrors.ErrCapabilityUnavailable)
	}
	data, err := json.Marshal(notice.Data)
	if err != nil {
		return fmt.Errorf("encode %s notice: %w", notice.Kind, err)
	}
	tabID := notice.TabID
	resp := runtime.Dispatch(ctx, runtimedto.Envelope{
		Type:      notice.Kind,
		TabID:     &tabID,
		URL:       notice.URL,
		Timestamp: notice.Timestamp,
		Data:      data,
	})
	if failed, ok := resp.(runtimedto.ErrorResponse); ok {
		return fmt.Errorf("background rejected %s: %s", notice.Kind, failed.Error)
	}
	return nil
}
