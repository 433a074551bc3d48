package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/studioflow/studio-scheduler/internal/models"
)

// ===============================
// Clock math ("HH:MM" strings)
// ===============================

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid clock %q", s)
	}

	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])

	return h*60 + m, nil
}

// Duration retorna end - start em minutos. Não protege contra
// end < start — isso é papel da validação, antes de chegar aqui.
func Duration(start, end string) int {
	s, _ := ParseClock(start)
	e, _ := ParseClock(end)
	return e - s
}

// MinutesToClock formata minutos desde a meia-noite como "HH:MM".
func MinutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// NormalizeClock reescreve o horário com zero à esquerda ("9:30" ->
// "09:30"), para que a ordenação lexicográfica no banco seja correta.
// Entrada inválida volta intacta.
func NormalizeClock(s string) string {
	min, err := ParseClock(s)
	if err != nil {
		return s
	}
	return MinutesToClock(min)
}

type ClockStyle int

const (
	Clock24 ClockStyle = iota
	Clock12
)

// FormatClock exibe "HH:MM" em 24h (passthrough) ou 12h ("h:mm AM/PM").
func FormatClock(s string, style ClockStyle) string {
	if style == Clock24 {
		return s
	}

	min, err := ParseClock(s)
	if err != nil {
		return s
	}

	h := min / 60
	m := min % 60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}

	h = h % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// SortBlocksByStart ordena blocos por horário de início (estável).
// Compara em minutos porque "9:30" sem zero à esquerda também é aceito.
func SortBlocksByStart(blocks []models.TimeBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		a, _ := ParseClock(blocks[i].StartTime)
		b, _ := ParseClock(blocks[j].StartTime)
		return a < b
	})
}
