package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/studio-scheduler/internal/models"
)

func dragBlock() models.TimeBlock {
	b := models.TimeBlock{
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:30",
	}
	b.ID = 10
	return b
}

func TestDragDropOnDay(t *testing.T) {
	var d Drag
	d.Begin(dragBlock())
	assert.Equal(t, Dragging, d.State())

	upd, ok := d.DropOnDay(4)
	require.True(t, ok)
	assert.Equal(t, DragIdle, d.State())

	assert.Equal(t, uint(10), upd.BlockID)
	require.NotNil(t, upd.DayOfWeek)
	assert.Equal(t, 4, *upd.DayOfWeek)

	// Horários preservados: só o dia muda
	assert.Nil(t, upd.StartTime)
	assert.Nil(t, upd.EndTime)
}

func TestDragDropOnSameDayIsNoop(t *testing.T) {
	var d Drag
	d.Begin(dragBlock())

	_, ok := d.DropOnDay(1)
	assert.False(t, ok)
	assert.Equal(t, DragIdle, d.State())
}

func TestDragDropOnInvalidDay(t *testing.T) {
	for _, day := range []int{-1, 7} {
		var d Drag
		d.Begin(dragBlock())

		_, ok := d.DropOnDay(day)
		assert.False(t, ok, "day %d", day)
	}
}

func TestDragDropWhileIdle(t *testing.T) {
	var d Drag

	_, ok := d.DropOnDay(3)
	assert.False(t, ok)

	_, ok = d.DropOnSlot(3, 10)
	assert.False(t, ok)
}

func TestDragCancel(t *testing.T) {
	var d Drag
	d.Begin(dragBlock())
	d.Cancel()

	assert.Equal(t, DragIdle, d.State())

	_, ok := d.DropOnDay(4)
	assert.False(t, ok)
}

func TestDragDropOnSlotPreservesDuration(t *testing.T) {
	var d Drag
	d.Begin(dragBlock()) // 09:00–12:30, 210 minutos

	upd, ok := d.DropOnSlot(3, 14)
	require.True(t, ok)

	require.NotNil(t, upd.StartTime)
	require.NotNil(t, upd.EndTime)
	assert.Equal(t, "14:00", *upd.StartTime)
	assert.Equal(t, "17:30", *upd.EndTime)

	require.NotNil(t, upd.DayOfWeek)
	assert.Equal(t, 3, *upd.DayOfWeek)
}

func TestDragDropOnSlotSameDay(t *testing.T) {
	var d Drag
	d.Begin(dragBlock())

	upd, ok := d.DropOnSlot(1, 14)
	require.True(t, ok)

	// Mesmo dia: comando só reancora os horários
	assert.Nil(t, upd.DayOfWeek)
	assert.Equal(t, "14:00", *upd.StartTime)
}

func TestDragDropOnSlotPastMidnight(t *testing.T) {
	var d Drag
	d.Begin(dragBlock()) // 210 minutos

	_, ok := d.DropOnSlot(3, 21) // 21:00 + 3h30 = 00:30
	assert.False(t, ok)

	// 20:30 seria ok, mas o drop é sempre em hora cheia; 20:00 + 3h30 = 23:30
	d.Begin(dragBlock())
	upd, ok := d.DropOnSlot(3, 20)
	require.True(t, ok)
	assert.Equal(t, "23:30", *upd.EndTime)
}

func TestApply(t *testing.T) {
	block := dragBlock()

	day := 5
	start := "08:00"
	Apply(&block, BlockUpdate{DayOfWeek: &day, StartTime: &start})

	assert.Equal(t, 5, block.DayOfWeek)
	assert.Equal(t, "08:00", block.StartTime)
	assert.Equal(t, "12:30", block.EndTime)
}
