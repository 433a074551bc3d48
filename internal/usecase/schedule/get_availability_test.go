package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/studio-scheduler/internal/models"
)

func TestGetStaffAvailability(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(models.StaffMember{ID: 5, Name: "Marina", Active: true})

	monday := models.TimeBlock{StaffID: 5, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Active: true}
	monday.BreakStart = strptr("12:00")
	monday.BreakEnd = strptr("13:00")
	repo.addBlock(monday)

	uc := NewGetStaffAvailability(repo, nil)

	out, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "Marina", out[0].Staff.Name)
	require.Len(t, out[0].Blocks, 1)
	assert.InDelta(t, 7.0, out[0].TotalHoursPerWeek, 0.001)
}

func TestGetStaffAvailabilityExcludesInactive(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(models.StaffMember{ID: 5, Name: "Marina", Active: true})
	repo.addStaff(models.StaffMember{ID: 6, Name: "Desligado", Active: false})

	uc := NewGetStaffAvailability(repo, nil)

	out, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Marina", out[0].Staff.Name)
}

func TestGetStaffAvailabilityUsesCache(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(models.StaffMember{ID: 5, Name: "Marina", Active: true})
	cache := newFakeCache()

	uc := NewGetStaffAvailability(repo, cache)

	_, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 0, cache.hits)

	// Segunda chamada sai do cache
	_, err = uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, cache.hits)
}

func TestMutationInvalidatesAvailabilityCache(t *testing.T) {
	repo := newFakeRepo()
	repo.addStaff(models.StaffMember{ID: 5, Name: "Marina", Active: true})
	cache := newFakeCache()

	get := NewGetStaffAvailability(repo, cache)
	create := NewCreateTimeBlock(repo, nil, cache)

	_, err := get.Execute(context.Background(), 1)
	require.NoError(t, err)

	_, violations, err := create.Execute(context.Background(), CreateTimeBlockInput{
		StudioID:  1,
		StaffID:   5,
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	// Próxima leitura recomputa e já enxerga o bloco novo
	out, err := get.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.hits)
	assert.Equal(t, 2, cache.sets)
	require.Len(t, out, 1)
	assert.Len(t, out[0].Blocks, 1)
}
