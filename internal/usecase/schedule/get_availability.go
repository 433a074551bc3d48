package schedule

import (
	"context"

	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
)

// GetStaffAvailability monta a visão derivada por staff (blocos
// ordenados + horas semanais líquidas), passando pelo cache Redis
// quando disponível.
type GetStaffAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetStaffAvailability(
	repo domain.Repository,
	cache AvailabilityCache,
) *GetStaffAvailability {
	return &GetStaffAvailability{repo: repo, cache: cache}
}

func (uc *GetStaffAvailability) Execute(
	ctx context.Context,
	studioID uint,
) ([]domain.StaffAvailability, error) {

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, studioID); ok {
			return cached, nil
		}
	}

	staff, err := uc.repo.ListStaff(ctx, studioID)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListTimeBlocks(ctx, studioID)
	if err != nil {
		return nil, err
	}

	out := domain.BuildAvailability(staff, blocks)

	if uc.cache != nil {
		uc.cache.Set(ctx, studioID, out)
	}

	return out, nil
}
