package in

import (
	"context"

	"socialteam/internal/modules/engagement/dto"
)

type Usecase interface {
	PageLoaded(ctx context.Context, input dto.PageInput) error
	PageClosed(ctx context.Context, tabID int) error
	TargetDetected(ctx context.Context, tabID int) error
	Scroll(ctx context.Context, input dto.ScrollInput) error
	Click(ctx context.Context, input dto.ClickInput) error
	Input(ctx context.Context, tabID int) error
	Submit(ctx context.Context, input dto.SubmitInput) error
	StartVerification(ctx context.Context, input dto.TaskInput) error
	Interaction(ctx context.Context, tabID int) (dto.InteractionReport, error)
	VerifyCompletion(ctx context.Context, input dto.TaskInput) (dto.VerificationOutput, error)
	Score(ctx context.Context, input dto.ScoreInput) (dto.VerificationOutput, error)
}
