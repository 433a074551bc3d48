package schedule

import (
	"context"

	"github.com/studioflow/studio-scheduler/internal/audit"
	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
)

type DeleteTimeBlockInput struct {
	StudioID uint
	ActorID  uint
	BlockID  uint

	// O cliente precisa confirmar explicitamente; sem confirmação
	// nada é apagado. Não há undo.
	Confirmed bool
}

type DeleteTimeBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewDeleteTimeBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *DeleteTimeBlock {
	return &DeleteTimeBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DeleteTimeBlock) Execute(
	ctx context.Context,
	in DeleteTimeBlockInput,
) error {

	if !in.Confirmed {
		return httperr.ErrBusiness("confirmation_required")
	}

	block, err := uc.repo.GetTimeBlock(ctx, in.StudioID, in.BlockID)
	if err != nil {
		return httperr.ErrBusiness("time_block_not_found")
	}

	if err := uc.repo.DeleteTimeBlock(ctx, in.StudioID, block.ID); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.StudioID)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.ActorID,
		Action:   "time_block_deleted",
		Entity:   "time_block",
		EntityID: &block.ID,
	})

	return nil
}
