package out

import (
	"context"

	"socialteam/internal/modules/engagement/domain"
)

// Outbox delivers page notices to the background service.
type Outbox interface {
	Send(ctx context.Context, notice domain.Notice) error
}
