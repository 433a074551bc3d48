package schedule

import (
	"context"

	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
)

// AvailabilityCache é a visão que os use cases têm do cache Redis.
// Implementação em internal/cache; nil desliga o cache.
type AvailabilityCache interface {
	Get(ctx context.Context, studioID uint) ([]domain.StaffAvailability, bool)
	Set(ctx context.Context, studioID uint, data []domain.StaffAvailability)
	Invalidate(ctx context.Context, studioID uint)
}

func normalizeClockPtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := domain.NormalizeClock(*s)
	return &n
}
