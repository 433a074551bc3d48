package schedule

import (
	"context"
	"time"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
)

type CopyWeekInput struct {
	StudioID uint
	ActorID  uint

	SourceWeekStart time.Time
	TargetWeekStart time.Time
}

// CopyWeek clona todos os blocos avulsos da semana de origem para a
// semana destino. Templates recorrentes valem em qualquer semana e não
// são clonados.
type CopyWeek struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewCopyWeek(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *CopyWeek {
	return &CopyWeek{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CopyWeek) Execute(
	ctx context.Context,
	in CopyWeekInput,
) ([]models.TimeBlock, error) {

	source := domain.WeekStartOf(in.SourceWeekStart)
	target := domain.WeekStartOf(in.TargetWeekStart)

	if source.Equal(target) {
		return nil, httperr.ErrBusiness("source_and_target_week_equal")
	}

	blocks, err := uc.repo.ListTimeBlocksForWeek(ctx, in.StudioID, source)
	if err != nil {
		return nil, err
	}

	clones := domain.CloneForWeek(blocks, source, target)
	if len(clones) == 0 {
		return []models.TimeBlock{}, nil
	}

	if err := uc.repo.CreateTimeBlocks(ctx, clones); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.StudioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.ActorID,
		Action:   "week_copied",
		Entity:   "time_block",
		Metadata: map[string]string{
			"source_week_start": source.Format("2006-01-02"),
			"target_week_start": target.Format("2006-01-02"),
		},
	})

	return clones, nil
}
