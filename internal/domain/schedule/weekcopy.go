package schedule

import (
	"time"

	"github.com/studioflow/studio-scheduler/internal/models"
)

// ===============================
// Week copy
// ===============================

// WeekStartOf alinha a data ao domingo da semana, zerando hora.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// NextWeekStart retorna o domingo da semana seguinte.
func NextWeekStart(t time.Time) time.Time {
	return WeekStartOf(t).AddDate(0, 0, 7)
}

// SameWeek informa se o bloco pertence à semana iniciada em weekStart.
// Templates recorrentes (WeekStart nil) valem em qualquer semana e
// portanto não "pertencem" a nenhuma.
func SameWeek(block models.TimeBlock, weekStart time.Time) bool {
	if block.WeekStart == nil {
		return false
	}
	a := WeekStartOf(*block.WeekStart)
	b := WeekStartOf(weekStart)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// CloneForWeek clona todos os blocos da semana de origem para a semana
// destino: mesmo staff, dia, horários, pausa e flag de recorrência,
// ancorados ao novo domingo. Os originais ficam intocados e os clones
// saem sem ID para o repositório atribuir.
func CloneForWeek(blocks []models.TimeBlock, sourceWeekStart, targetWeekStart time.Time) []models.TimeBlock {
	source := WeekStartOf(sourceWeekStart)
	target := WeekStartOf(targetWeekStart)

	var clones []models.TimeBlock
	for _, b := range blocks {
		if !SameWeek(b, source) {
			continue
		}

		clone := b
		clone.ID = 0
		clone.ClientRef = ""
		anchor := target
		clone.WeekStart = &anchor

		clones = append(clones, clone)
	}

	return clones
}
