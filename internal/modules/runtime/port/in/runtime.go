package in

import (
	"context"

	"socialteam/internal/modules/runtime/dto"
)

type Usecase interface {
	// Dispatch handles one message. Failures come back as an ErrorResponse
	// body, never as a Go error.
	Dispatch(ctx context.Context, env dto.Envelope) any
	Install(ctx context.Context) (dto.InstallOutput, error)
	Badge(ctx context.Context) dto.BadgeOutput
	Subscribe(buffer int) (<-chan dto.Event, func())
	RunAlarms(ctx context.Context) error
}
