package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/studio-scheduler/internal/models"
)

func TestPatternTypeValid(t *testing.T) {
	assert.True(t, PatternWeekly.Valid())
	assert.True(t, PatternBiweekly.Valid())
	assert.True(t, PatternMonthly.Valid())
	assert.False(t, PatternType("daily").Valid())
	assert.False(t, PatternType("").Valid())
}

func TestExpandPattern(t *testing.T) {
	staff := models.StaffMember{
		StudioID: 7,
		Name:     "Marina",
		Role:     "Esteticista",
		Color:    "#7c3aed",
	}
	staff.ID = 42

	p := RecurringPattern{
		StaffID:    42,
		DayOfWeek:  2,
		StartTime:  "10:00",
		EndTime:    "14:00",
		BreakStart: strptr("12:00"),
		BreakEnd:   strptr("12:30"),
		Pattern:    PatternWeekly,
	}

	block := ExpandPattern(p, staff, "temp-1700000000000-abcd1234")

	assert.True(t, block.IsRecurring)
	assert.True(t, block.Active)
	assert.Equal(t, uint(7), block.StudioID)
	assert.Equal(t, uint(42), block.StaffID)
	assert.Equal(t, "Marina", block.StaffName)
	assert.Equal(t, "Esteticista", block.StaffRole)
	assert.Equal(t, "#7c3aed", block.Color)
	assert.Equal(t, 2, block.DayOfWeek)
	assert.Equal(t, "10:00", block.StartTime)
	assert.Equal(t, "14:00", block.EndTime)
	require.NotNil(t, block.BreakStart)
	assert.Equal(t, "12:00", *block.BreakStart)
	assert.Equal(t, "temp-1700000000000-abcd1234", block.ClientRef)

	// Template semanal único: nenhuma âncora de semana
	assert.Nil(t, block.WeekStart)
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Sunday", DayName(0))
	assert.Equal(t, "Tuesday", DayName(2))
	assert.Equal(t, "Saturday", DayName(6))
	assert.Equal(t, "?", DayName(-1))
	assert.Equal(t, "?", DayName(7))
}

func TestPreviewText(t *testing.T) {
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	p := RecurringPattern{
		DayOfWeek: 2,
		StartTime: "10:00",
		EndTime:   "14:00",
		Pattern:   PatternWeekly,
	}
	assert.Equal(t, "Every week on Tuesday, 10:00 AM to 2:00 PM", p.PreviewText())

	p.BreakStart = strptr("12:00")
	p.BreakEnd = strptr("12:30")
	p.EndDate = &end
	assert.Equal(t,
		"Every week on Tuesday, 10:00 AM to 2:00 PM (break 12:00 PM to 12:30 PM) until 2026-06-30",
		p.PreviewText(),
	)

	p.Pattern = PatternBiweekly
	assert.Contains(t, p.PreviewText(), "Every 2 weeks on Tuesday")

	p.Pattern = PatternMonthly
	assert.Contains(t, p.PreviewText(), "Every month on Tuesday")
}

func TestRecurrenceVariants(t *testing.T) {
	single := SingleOccurrence()
	assert.Equal(t, RecurrenceSingle, single.Kind)
	assert.Nil(t, single.Pattern)
	assert.Nil(t, single.Until)

	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	rec := RecurringFrom(RecurringPattern{DayOfWeek: 1, EndDate: &end})
	assert.Equal(t, RecurrenceRecurring, rec.Kind)
	require.NotNil(t, rec.Pattern)
	assert.Equal(t, 1, rec.Pattern.DayOfWeek)
	require.NotNil(t, rec.Until)
	assert.True(t, rec.Until.Equal(end))
}
