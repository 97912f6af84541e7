package in

import (
	"context"

	"socialteam/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error)
	// EnsureDefaults writes the defaults when nothing is stored and reports
	// whether it did.
	EnsureDefaults(ctx context.Context) (bool, error)
}
