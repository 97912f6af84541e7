package usecase

import (
	"context"

	"socialteam/internal/modules/engagement/domain"
	"socialteam/internal/modules/engagement/dto"
	engagementin "socialteam/internal/modules/engagement/port/in"
	"socialteam/internal/modules/engagement/service"
)

type Interactor struct {
	agent *service.Agent
}

func NewInteractor(agent *service.Agent) engagementin.Usecase {
	return &Interactor{agent: agent}
}

func (i *Interactor) PageLoaded(ctx context.Context, input dto.PageInput) error {
	return i.agent.PageLoaded(ctx, input.TabID, input.URL)
}

func (i *Interactor) PageClosed(ctx context.Context, tabID int) error {
	return i.agent.PageClosed(ctx, tabID)
}

func (i *Interactor) TargetDetected(ctx context.Context, tabID int) error {
	return i.agent.TargetDetected(ctx, tabID)
}

func (i *Interactor) Scroll(ctx context.Context, input dto.ScrollInput) error {
	return i.agent.Scroll(ctx, input.TabID, input.ScrollY, input.ScrollHeight, input.ViewportHeight)
}

func (i *Interactor) Click(ctx context.Context, input dto.ClickInput) error {
	return i.agent.Click(ctx, input.TabID, domain.ClickEvent{
		Tag:   input.Tag,
		Href:  input.Href,
		Text:  input.Text,
		Label: input.Label,
	})
}

func (i *Interactor) Input(ctx context.Context, tabID int) error {
	return i.agent.Input(ctx, tabID)
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) error {
	return i.agent.Submit(ctx, input.TabID, input.Query)
}

func (i *Interactor) StartVerification(ctx context.Context, input dto.TaskInput) error {
	return i.agent.StartVerification(ctx, input.TabID, input.Task.Domain())
}

func (i *Interactor) Interaction(ctx context.Context, tabID int) (dto.InteractionReport, error) {
	report, err := i.agent.Interaction(ctx, tabID)
	if err != nil {
		return dto.InteractionReport{}, err
	}
	return dto.InteractionReport{
		IsTargetSite: report.Target,
		SiteType:     string(report.Site),
		Interactions: dto.SnapshotFromDomain(report.Snapshot),
		URL:          report.URL,
		TimeOnPage:   report.Snapshot.TimeOnPage,
	}, nil
}

func (i *Interactor) VerifyCompletion(ctx context.Context, input dto.TaskInput) (dto.VerificationOutput, error) {
	result, err := i.agent.VerifyCompletion(ctx, input.TabID, input.Task.Domain())
	if err != nil {
		return dto.VerificationOutput{}, err
	}
	return dto.VerificationFromDomain(result), nil
}

func (i *Interactor) Score(_ context.Context, input dto.ScoreInput) (dto.VerificationOutput, error) {
	snap := domain.Snapshot{
		TimeOnPage:  input.TimeOnPage,
		ClickCount:  input.ClickCount,
		ScrollDepth: input.ScrollDepth,
	}
	return dto.VerificationFromDomain(domain.Verify(input.Task.Domain(), snap)), nil
}
