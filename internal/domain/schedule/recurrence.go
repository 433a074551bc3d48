package schedule

import (
	"fmt"
	"time"

	"github.com/studioflow/studio-scheduler/internal/models"
)

// ===============================
// Recurring patterns
// ===============================

type PatternType string

const (
	PatternWeekly   PatternType = "weekly"
	PatternBiweekly PatternType = "biweekly"
	PatternMonthly  PatternType = "monthly"
)

func (p PatternType) Valid() bool {
	switch p {
	case PatternWeekly, PatternBiweekly, PatternMonthly:
		return true
	}
	return false
}

// RecurringPattern é a entrada transiente do formulário de recorrência.
// Não é persistida como entidade própria.
type RecurringPattern struct {
	StaffID    uint        `json:"staff_id"`
	DayOfWeek  int         `json:"day_of_week"`
	StartTime  string      `json:"start_time"`
	EndTime    string      `json:"end_time"`
	BreakStart *string     `json:"break_start"`
	BreakEnd   *string     `json:"break_end"`
	Pattern    PatternType `json:"pattern_type"`
	EndDate    *time.Time  `json:"end_date"`
}

// RecurrenceKind mantém explícita a distinção entre bloco avulso e
// template recorrente, para que uma futura materialização de múltiplas
// ocorrências seja um caminho de código separado, não uma ausência
// silenciosa.
type RecurrenceKind string

const (
	RecurrenceSingle    RecurrenceKind = "single"
	RecurrenceRecurring RecurrenceKind = "recurring"
)

type Recurrence struct {
	Kind    RecurrenceKind
	Pattern *RecurringPattern
	Until   *time.Time
}

func SingleOccurrence() Recurrence {
	return Recurrence{Kind: RecurrenceSingle}
}

func RecurringFrom(p RecurringPattern) Recurrence {
	return Recurrence{Kind: RecurrenceRecurring, Pattern: &p, Until: p.EndDate}
}

// ExpandPattern materializa o padrão como exatamente UM bloco template
// semanal com IsRecurring=true. PatternType e EndDate são aceitos e
// exibidos no preview, mas não geram ocorrências datadas múltiplas.
func ExpandPattern(p RecurringPattern, staff models.StaffMember, clientRef string) models.TimeBlock {
	return models.TimeBlock{
		StudioID:    staff.StudioID,
		StaffID:     staff.ID,
		StaffName:   staff.Name,
		StaffRole:   staff.Role,
		Color:       staff.Color,
		DayOfWeek:   p.DayOfWeek,
		StartTime:   NormalizeClock(p.StartTime),
		EndTime:     NormalizeClock(p.EndTime),
		BreakStart:  normalizePtr(p.BreakStart),
		BreakEnd:    normalizePtr(p.BreakEnd),
		IsRecurring: true,
		Active:      true,
		ClientRef:   clientRef,
	}
}

func normalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := NormalizeClock(*s)
	return &n
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayName retorna o nome do dia para a convenção 0 = Sunday.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return "?"
	}
	return dayNames[day]
}

// PreviewText monta a descrição exibida no painel de preview do padrão.
func (p RecurringPattern) PreviewText() string {
	var cadence string
	switch p.Pattern {
	case PatternBiweekly:
		cadence = "Every 2 weeks"
	case PatternMonthly:
		cadence = "Every month"
	default:
		cadence = "Every week"
	}

	text := fmt.Sprintf("%s on %s, %s to %s",
		cadence,
		DayName(p.DayOfWeek),
		FormatClock(p.StartTime, Clock12),
		FormatClock(p.EndTime, Clock12),
	)

	if p.BreakStart != nil && p.BreakEnd != nil {
		text += fmt.Sprintf(" (break %s to %s)",
			FormatClock(*p.BreakStart, Clock12),
			FormatClock(*p.BreakEnd, Clock12),
		)
	}

	if p.EndDate != nil {
		text += " until " + p.EndDate.Format("2006-01-02")
	}

	return text
}
