package schedule

import (
	"context"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
)

// ======================================================
// MOVE (drop na célula de dia)
// ======================================================

type MoveTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewMoveTimeBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *MoveTimeBlock {
	return &MoveTimeBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute move o bloco para outro dia via o redutor de drag. Drop no
// mesmo dia (ou alvo inválido) não emite update e devolve o bloco como
// está.
func (uc *MoveTimeBlock) Execute(
	ctx context.Context,
	studioID uint,
	actorID uint,
	blockID uint,
	targetDay int,
) (*models.TimeBlock, error) {

	block, err := uc.repo.GetTimeBlock(ctx, studioID, blockID)
	if err != nil {
		return nil, httperr.ErrBusiness("time_block_not_found")
	}

	if targetDay < 0 || targetDay > 6 {
		return nil, httperr.ErrBusiness("invalid_day_of_week")
	}

	var drag domain.Drag
	drag.Begin(*block)

	upd, ok := drag.DropOnDay(targetDay)
	if !ok {
		return block, nil
	}

	domain.Apply(block, upd)

	if err := uc.repo.UpdateTimeBlock(ctx, block); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, studioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &actorID,
		Action:   "time_block_moved",
		Entity:   "time_block",
		EntityID: &block.ID,
		Metadata: map[string]int{"day_of_week": targetDay},
	})

	return block, nil
}

// ======================================================
// MOVE TO SLOT (drop na célula dia x hora)
// ======================================================

type MoveTimeBlockToSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewMoveTimeBlockToSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *MoveTimeBlockToSlot {
	return &MoveTimeBlockToSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute reancora o bloco no slot (dia, hora): start vira a hora cheia
// e end preserva a duração original.
func (uc *MoveTimeBlockToSlot) Execute(
	ctx context.Context,
	studioID uint,
	actorID uint,
	blockID uint,
	targetDay int,
	targetHour int,
) (*models.TimeBlock, error) {

	block, err := uc.repo.GetTimeBlock(ctx, studioID, blockID)
	if err != nil {
		return nil, httperr.ErrBusiness("time_block_not_found")
	}

	var drag domain.Drag
	drag.Begin(*block)

	upd, ok := drag.DropOnSlot(targetDay, targetHour)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	domain.Apply(block, upd)

	if err := uc.repo.UpdateTimeBlock(ctx, block); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, studioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &actorID,
		Action:   "time_block_moved_to_slot",
		Entity:   "time_block",
		EntityID: &block.ID,
		Metadata: map[string]int{"day_of_week": targetDay, "hour": targetHour},
	})

	return block, nil
}
