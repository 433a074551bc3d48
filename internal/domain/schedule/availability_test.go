package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/studio-scheduler/internal/models"
)

func staffBlock(id, staffID uint, day int, start, end string) models.TimeBlock {
	b := models.TimeBlock{
		StaffID:   staffID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
	b.ID = id
	return b
}

func TestNetMinutes(t *testing.T) {
	b := staffBlock(1, 1, 1, "09:00", "17:00")
	assert.Equal(t, 480, NetMinutes(b))

	b.BreakStart = strptr("12:00")
	b.BreakEnd = strptr("13:00")
	assert.Equal(t, 420, NetMinutes(b))
}

func TestOverlaps(t *testing.T) {
	a := staffBlock(1, 1, 1, "09:00", "12:00")

	assert.True(t, Overlaps(a, staffBlock(2, 1, 1, "10:00", "14:00")))
	assert.True(t, Overlaps(a, staffBlock(2, 1, 1, "11:59", "13:00")))

	// Intervalos que se tocam não se sobrepõem
	assert.False(t, Overlaps(a, staffBlock(2, 1, 1, "12:00", "14:00")))

	// Staff ou dia diferente nunca conflita
	assert.False(t, Overlaps(a, staffBlock(2, 2, 1, "10:00", "14:00")))
	assert.False(t, Overlaps(a, staffBlock(2, 1, 2, "10:00", "14:00")))
}

func TestBuildAvailability(t *testing.T) {
	marina := models.StaffMember{Name: "Marina"}
	marina.ID = 1
	rafael := models.StaffMember{Name: "Rafael"}
	rafael.ID = 2

	monday := staffBlock(10, 1, 1, "09:00", "17:00")
	monday.BreakStart = strptr("12:00")
	monday.BreakEnd = strptr("13:00")

	blocks := []models.TimeBlock{
		staffBlock(11, 1, 3, "10:00", "14:00"),
		monday,
		staffBlock(20, 2, 1, "08:00", "12:00"),
	}

	out := BuildAvailability([]models.StaffMember{marina, rafael}, blocks)
	require.Len(t, out, 2)

	// Marina: 7h líquidas na segunda + 4h na quarta
	assert.Equal(t, "Marina", out[0].Staff.Name)
	require.Len(t, out[0].Blocks, 2)
	assert.InDelta(t, 11.0, out[0].TotalHoursPerWeek, 0.001)
	assert.Empty(t, out[0].Conflicts)

	assert.Equal(t, "Rafael", out[1].Staff.Name)
	assert.InDelta(t, 4.0, out[1].TotalHoursPerWeek, 0.001)
}

func TestBuildAvailabilityStaffWithoutBlocks(t *testing.T) {
	idle := models.StaffMember{Name: "Sem blocos"}
	idle.ID = 9

	out := BuildAvailability([]models.StaffMember{idle}, nil)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Blocks)
	assert.Zero(t, out[0].TotalHoursPerWeek)
}

func TestBuildAvailabilityReportsConflicts(t *testing.T) {
	s := models.StaffMember{Name: "Marina"}
	s.ID = 1

	blocks := []models.TimeBlock{
		staffBlock(1, 1, 1, "09:00", "12:00"),
		staffBlock(2, 1, 1, "10:00", "14:00"),
		staffBlock(3, 1, 2, "09:00", "12:00"),
	}

	out := BuildAvailability([]models.StaffMember{s}, blocks)
	require.Len(t, out, 1)

	require.Len(t, out[0].Conflicts, 1)
	assert.Equal(t, uint(1), out[0].Conflicts[0].BlockID)
	assert.Equal(t, uint(2), out[0].Conflicts[0].OtherBlockID)

	// Conflito é aviso: os três blocos continuam listados
	assert.Len(t, out[0].Blocks, 3)
}
