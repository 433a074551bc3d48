package schedule

import (
	"context"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
	"github.com/studioflow/studio-scheduler/internal/timezone"
)

type UpdateTimeBlockInput struct {
	StudioID uint
	ActorID  uint
	BlockID  uint

	DayOfWeek  *int
	StartTime  *string
	EndTime    *string
	BreakStart *string
	BreakEnd   *string
	ClearBreak bool
	Active     *bool
}

type UpdateTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewUpdateTimeBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *UpdateTimeBlock {
	return &UpdateTimeBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateTimeBlock) Execute(
	ctx context.Context,
	in UpdateTimeBlockInput,
) (*models.TimeBlock, []domain.Violation, error) {

	shop, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("studio_not_found")
	}

	block, err := uc.repo.GetTimeBlock(ctx, in.StudioID, in.BlockID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("time_block_not_found")
	}

	// Edição parcial: aplica sobre uma cópia e revalida o bloco inteiro.
	edited := *block
	if in.DayOfWeek != nil {
		edited.DayOfWeek = *in.DayOfWeek
	}
	if in.StartTime != nil {
		edited.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		edited.EndTime = *in.EndTime
	}
	if in.ClearBreak {
		edited.BreakStart = nil
		edited.BreakEnd = nil
	} else {
		if in.BreakStart != nil {
			edited.BreakStart = in.BreakStart
		}
		if in.BreakEnd != nil {
			edited.BreakEnd = in.BreakEnd
		}
	}
	if in.Active != nil {
		edited.Active = *in.Active
	}

	now := timezone.NowIn(shop.Timezone)

	violations := domain.ValidateBlock(domain.BlockCandidate{
		StaffID:    edited.StaffID,
		DayOfWeek:  edited.DayOfWeek,
		StartTime:  edited.StartTime,
		EndTime:    edited.EndTime,
		BreakStart: edited.BreakStart,
		BreakEnd:   edited.BreakEnd,
	}, now)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	edited.StartTime = domain.NormalizeClock(edited.StartTime)
	edited.EndTime = domain.NormalizeClock(edited.EndTime)
	edited.BreakStart = normalizeClockPtr(edited.BreakStart)
	edited.BreakEnd = normalizeClockPtr(edited.BreakEnd)

	if err := uc.repo.UpdateTimeBlock(ctx, &edited); err != nil {
		return nil, nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.StudioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.ActorID,
		Action:   "time_block_updated",
		Entity:   "time_block",
		EntityID: &edited.ID,
	})

	return &edited, nil, nil
}
