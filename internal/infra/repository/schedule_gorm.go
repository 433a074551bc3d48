package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/studioflow/studio-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *ScheduleGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).First(&studio, id).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *ScheduleGormRepository) GetStaffMember(
	ctx context.Context,
	studioID uint,
	staffID uint,
) (*models.StaffMember, error) {

	var staff models.StaffMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", staffID, studioID).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *ScheduleGormRepository) ListStaff(
	ctx context.Context,
	studioID uint,
) ([]models.StaffMember, error) {

	var staff []models.StaffMember
	if err := r.db.WithContext(ctx).
		Where("studio_id = ? AND active = ?", studioID, true).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Time blocks
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateTimeBlock(
	ctx context.Context,
	block *models.TimeBlock,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *ScheduleGormRepository) CreateTimeBlocks(
	ctx context.Context,
	blocks []models.TimeBlock,
) error {
	if len(blocks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&blocks).Error
}

func (r *ScheduleGormRepository) GetTimeBlock(
	ctx context.Context,
	studioID uint,
	blockID uint,
) (*models.TimeBlock, error) {

	var block models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", blockID, studioID).
		First(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *ScheduleGormRepository) UpdateTimeBlock(
	ctx context.Context,
	block *models.TimeBlock,
) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *ScheduleGormRepository) DeleteTimeBlock(
	ctx context.Context,
	studioID uint,
	blockID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", blockID, studioID).
		Delete(&models.TimeBlock{}).Error
}

func (r *ScheduleGormRepository) ListTimeBlocks(
	ctx context.Context,
	studioID uint,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where("studio_id = ? AND active = ?", studioID, true).
		Order("day_of_week ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ListTimeBlocksForWeek(
	ctx context.Context,
	studioID uint,
	weekStart time.Time,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where("studio_id = ? AND week_start = ?", studioID, weekStart).
		Order("day_of_week ASC, start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}
