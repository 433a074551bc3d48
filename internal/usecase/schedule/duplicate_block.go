package schedule

import (
	"context"
	"time"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
)

type DuplicateTimeBlockInput struct {
	StudioID uint
	ActorID  uint
	BlockID  uint

	// Dia destino opcional; nil duplica no mesmo dia.
	DayOfWeek *int

	ClientRef string
}

// DuplicateTimeBlock copia um bloco existente com novo ID, opcionalmente
// em outro dia. O original fica intocado.
type DuplicateTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewDuplicateTimeBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *DuplicateTimeBlock {
	return &DuplicateTimeBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DuplicateTimeBlock) Execute(
	ctx context.Context,
	in DuplicateTimeBlockInput,
) (*models.TimeBlock, error) {

	original, err := uc.repo.GetTimeBlock(ctx, in.StudioID, in.BlockID)
	if err != nil {
		return nil, httperr.ErrBusiness("time_block_not_found")
	}

	copy := *original
	copy.ID = 0

	// A cópia nasce como registro otimista próprio
	copy.ClientRef = in.ClientRef
	if copy.ClientRef == "" {
		copy.ClientRef = domain.NewClientRef(time.Now())
	} else if !domain.IsClientRef(copy.ClientRef) {
		return nil, httperr.ErrBusiness("invalid_client_ref")
	}

	if in.DayOfWeek != nil {
		if *in.DayOfWeek < 0 || *in.DayOfWeek > 6 {
			return nil, httperr.ErrBusiness("invalid_day_of_week")
		}
		copy.DayOfWeek = *in.DayOfWeek
	}

	if err := uc.repo.CreateTimeBlock(ctx, &copy); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.StudioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.ActorID,
		Action:   "time_block_duplicated",
		Entity:   "time_block",
		EntityID: &copy.ID,
		Metadata: map[string]uint{"source_block_id": original.ID},
	})

	return &copy, nil
}
