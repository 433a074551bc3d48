package schedule

import (
	"context"
	"time"

	"github.com/studioflow/studio-scheduler/internal/models"
)

type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	// -------- Staff --------
	GetStaffMember(
		ctx context.Context,
		studioID uint,
		staffID uint,
	) (*models.StaffMember, error)

	ListStaff(
		ctx context.Context,
		studioID uint,
	) ([]models.StaffMember, error)

	// -------- Time blocks --------
	CreateTimeBlock(
		ctx context.Context,
		block *models.TimeBlock,
	) error

	CreateTimeBlocks(
		ctx context.Context,
		blocks []models.TimeBlock,
	) error

	GetTimeBlock(
		ctx context.Context,
		studioID uint,
		blockID uint,
	) (*models.TimeBlock, error)

	UpdateTimeBlock(
		ctx context.Context,
		block *models.TimeBlock,
	) error

	DeleteTimeBlock(
		ctx context.Context,
		studioID uint,
		blockID uint,
	) error

	ListTimeBlocks(
		ctx context.Context,
		studioID uint,
	) ([]models.TimeBlock, error)

	ListTimeBlocksForWeek(
		ctx context.Context,
		studioID uint,
		weekStart time.Time,
	) ([]models.TimeBlock, error)
}
