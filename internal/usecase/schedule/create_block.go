package schedule

import (
	"context"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
	"github.com/studioflow/studio-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateTimeBlockInput struct {
	StudioID uint
	ActorID  uint

	StaffID    uint
	DayOfWeek  int
	StartTime  string
	EndTime    string
	BreakStart *string
	BreakEnd   *string

	// Domingo da semana a que o bloco pertence ("2006-01-02").
	// Vazio = bloco da semana corrente.
	WeekStart string

	// Token otimista do cliente, ecoado de volta no bloco salvo.
	ClientRef string
}

// ======================================================
// USE CASE
// ======================================================

type CreateTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewCreateTimeBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *CreateTimeBlock {
	return &CreateTimeBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CreateTimeBlock) Execute(
	ctx context.Context,
	in CreateTimeBlockInput,
) (*models.TimeBlock, []domain.Violation, error) {

	shop, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("studio_not_found")
	}

	now := timezone.NowIn(shop.Timezone)

	// Token otimista nunca pode ser uma chave do servidor
	if in.ClientRef != "" && !domain.IsClientRef(in.ClientRef) {
		return nil, nil, httperr.ErrBusiness("invalid_client_ref")
	}

	violations := domain.ValidateBlock(domain.BlockCandidate{
		StaffID:    in.StaffID,
		DayOfWeek:  in.DayOfWeek,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		BreakStart: in.BreakStart,
		BreakEnd:   in.BreakEnd,
	}, now)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	staff, err := uc.repo.GetStaffMember(ctx, in.StudioID, in.StaffID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("staff_not_found")
	}

	weekStart := domain.WeekStartOf(now)
	if in.WeekStart != "" {
		parsed, err := timezone.ParseDateIn(in.WeekStart, shop.Timezone)
		if err != nil {
			return nil, nil, httperr.ErrBusiness("invalid_week_start")
		}
		weekStart = domain.WeekStartOf(parsed)
	}

	block := &models.TimeBlock{
		StudioID:   in.StudioID,
		StaffID:    staff.ID,
		StaffName:  staff.Name,
		StaffRole:  staff.Role,
		Color:      staff.Color,
		DayOfWeek:  in.DayOfWeek,
		StartTime:  domain.NormalizeClock(in.StartTime),
		EndTime:    domain.NormalizeClock(in.EndTime),
		BreakStart: normalizeClockPtr(in.BreakStart),
		BreakEnd:   normalizeClockPtr(in.BreakEnd),
		Active:     true,
		WeekStart:  &weekStart,
		ClientRef:  in.ClientRef,
	}

	if err := uc.repo.CreateTimeBlock(ctx, block); err != nil {
		return nil, nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.StudioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.ActorID,
		Action:   "time_block_created",
		Entity:   "time_block",
		EntityID: &block.ID,
	})

	return block, nil, nil
}
