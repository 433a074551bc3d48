package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/studio-scheduler/internal/httperr"
)

func TestMoveTimeBlock(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBlock(repo)
	cache := newFakeCache()

	uc := NewMoveTimeBlock(repo, nil, cache)

	block, err := uc.Execute(context.Background(), 1, 9, seeded.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, block.DayOfWeek)

	// Drop em célula de dia não mexe nos horários
	assert.Equal(t, "09:00", block.StartTime)
	assert.Equal(t, "17:00", block.EndTime)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, 5, repo.blocks[seeded.ID].DayOfWeek)
	assert.Equal(t, []uint{1}, cache.invalidated)
}

func TestMoveTimeBlockSameDayIsNoop(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBlock(repo) // day 2
	cache := newFakeCache()

	uc := NewMoveTimeBlock(repo, nil, cache)

	block, err := uc.Execute(context.Background(), 1, 9, seeded.ID, 2)
	require.NoError(t, err)

	// Bloco devolvido como está, sem update nem invalidação
	assert.Equal(t, 2, block.DayOfWeek)
	assert.Empty(t, repo.updated)
	assert.Empty(t, cache.invalidated)
}

func TestMoveTimeBlockInvalidDay(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBlock(repo)

	uc := NewMoveTimeBlock(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 9, seeded.ID, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_day_of_week"))
	assert.Empty(t, repo.updated)
}

func TestMoveTimeBlockNotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := NewMoveTimeBlock(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 9, 999, 3)
	assert.True(t, httperr.IsBusiness(err, "time_block_not_found"))
}

func TestMoveTimeBlockToSlot(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBlock(repo) // 09:00–17:00, 480 minutos
	cache := newFakeCache()

	uc := NewMoveTimeBlockToSlot(repo, nil, cache)

	block, err := uc.Execute(context.Background(), 1, 9, seeded.ID, 4, 8)
	require.NoError(t, err)

	// Reancorado preservando a duração
	assert.Equal(t, 4, block.DayOfWeek)
	assert.Equal(t, "08:00", block.StartTime)
	assert.Equal(t, "16:00", block.EndTime)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, []uint{1}, cache.invalidated)
}

func TestMoveTimeBlockToSlotPastMidnight(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBlock(repo) // 480 minutos

	uc := NewMoveTimeBlockToSlot(repo, nil, nil)

	// 18:00 + 8h = 02:00 do dia seguinte
	_, err := uc.Execute(context.Background(), 1, 9, seeded.ID, 4, 18)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
	assert.Empty(t, repo.updated)
}

func TestMoveTimeBlockToSlotInvalidHour(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedBlock(repo)

	uc := NewMoveTimeBlockToSlot(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 9, seeded.ID, 4, 24)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}
