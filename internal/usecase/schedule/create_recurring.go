package schedule

import (
	"context"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
	"github.com/studioflow/studio-scheduler/internal/timezone"
)

type CreateRecurringBlockInput struct {
	StudioID uint
	ActorID  uint

	Pattern   domain.RecurringPattern
	ClientRef string
}

type CreateRecurringBlockOutput struct {
	Block   *models.TimeBlock
	Preview string
}

// CreateRecurringBlock roda o expansor de padrão: valida o formulário,
// resolve o staff no roster e materializa UM template semanal com
// IsRecurring=true.
type CreateRecurringBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewCreateRecurringBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *CreateRecurringBlock {
	return &CreateRecurringBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CreateRecurringBlock) Execute(
	ctx context.Context,
	in CreateRecurringBlockInput,
) (*CreateRecurringBlockOutput, []domain.Violation, error) {

	shop, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("studio_not_found")
	}

	if in.ClientRef != "" && !domain.IsClientRef(in.ClientRef) {
		return nil, nil, httperr.ErrBusiness("invalid_client_ref")
	}

	if !in.Pattern.Pattern.Valid() {
		in.Pattern.Pattern = domain.PatternWeekly
	}

	now := timezone.NowIn(shop.Timezone)

	violations := domain.ValidateBlock(domain.BlockCandidate{
		StaffID:    in.Pattern.StaffID,
		DayOfWeek:  in.Pattern.DayOfWeek,
		StartTime:  in.Pattern.StartTime,
		EndTime:    in.Pattern.EndTime,
		BreakStart: in.Pattern.BreakStart,
		BreakEnd:   in.Pattern.BreakEnd,
		EndDate:    in.Pattern.EndDate,
	}, now)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	staff, err := uc.repo.GetStaffMember(ctx, in.StudioID, in.Pattern.StaffID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("staff_not_found")
	}

	block := domain.ExpandPattern(in.Pattern, *staff, in.ClientRef)

	if err := uc.repo.CreateTimeBlock(ctx, &block); err != nil {
		return nil, nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.StudioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.ActorID,
		Action:   "recurring_block_created",
		Entity:   "time_block",
		EntityID: &block.ID,
		Metadata: in.Pattern,
	})

	return &CreateRecurringBlockOutput{
		Block:   &block,
		Preview: in.Pattern.PreviewText(),
	}, nil, nil
}
