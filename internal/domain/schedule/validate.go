package schedule

import "time"

// ===============================
// Validation engine
// ===============================

// MinBlockMinutes é a duração mínima aceita para um bloco.
const MinBlockMinutes = 30

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BlockCandidate é o bloco proposto pelo editor, ainda não persistido.
type BlockCandidate struct {
	StaffID    uint
	DayOfWeek  int
	StartTime  string
	EndTime    string
	BreakStart *string
	BreakEnd   *string

	// Somente no formulário de padrão recorrente
	EndDate *time.Time
}

// ValidateBlock aplica as regras de consistência interna do bloco, na
// ordem fixa abaixo. Lista vazia = válido.
//
// Deliberadamente NÃO verifica sobreposição com outros blocos do mesmo
// staff/dia — dois blocos sobrepostos são registráveis. Sobreposição é
// reportada apenas como aviso na agregação de disponibilidade.
func ValidateBlock(b BlockCandidate, now time.Time) []Violation {
	var out []Violation

	if b.StaffID == 0 {
		out = append(out, Violation{Field: "staff_id", Message: "staff member is required"})
	}

	if b.StartTime == "" || !IsClock(b.StartTime) {
		out = append(out, Violation{Field: "start_time", Message: "start time must be a valid HH:MM time"})
	}
	if b.EndTime == "" || !IsClock(b.EndTime) {
		out = append(out, Violation{Field: "end_time", Message: "end time must be a valid HH:MM time"})
	}
	if len(out) > 0 {
		// Sem horários válidos não dá para aplicar as demais regras.
		return out
	}

	start, _ := ParseClock(b.StartTime)
	end, _ := ParseClock(b.EndTime)

	if start >= end {
		out = append(out, Violation{Field: "start_time", Message: "start time must be before end time"})
	} else if end-start < MinBlockMinutes {
		out = append(out, Violation{Field: "end_time", Message: "time block must be at least 30 minutes"})
	}

	if b.BreakStart != nil || b.BreakEnd != nil {
		out = append(out, validateBreak(b, start, end)...)
	}

	if b.DayOfWeek < 0 || b.DayOfWeek > 6 {
		out = append(out, Violation{Field: "day_of_week", Message: "day of week must be between 0 and 6"})
	}

	if b.EndDate != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate := time.Date(b.EndDate.Year(), b.EndDate.Month(), b.EndDate.Day(), 0, 0, 0, 0, now.Location())
		if endDate.Before(today) {
			out = append(out, Violation{Field: "end_date", Message: "end date cannot be in the past"})
		}
	}

	return out
}

func validateBreak(b BlockCandidate, start, end int) []Violation {
	var out []Violation

	if b.BreakStart == nil || b.BreakEnd == nil {
		out = append(out, Violation{Field: "break_start", Message: "break start and break end must both be set"})
		return out
	}

	if !IsClock(*b.BreakStart) {
		out = append(out, Violation{Field: "break_start", Message: "break start must be a valid HH:MM time"})
		return out
	}
	if !IsClock(*b.BreakEnd) {
		out = append(out, Violation{Field: "break_end", Message: "break end must be a valid HH:MM time"})
		return out
	}

	bs, _ := ParseClock(*b.BreakStart)
	be, _ := ParseClock(*b.BreakEnd)

	if bs >= be {
		out = append(out, Violation{Field: "break_start", Message: "break start must be before break end"})
	}
	if bs < start {
		out = append(out, Violation{Field: "break_start", Message: "break cannot start before the time block"})
	}
	if be > end {
		out = append(out, Violation{Field: "break_end", Message: "break cannot end after the time block"})
	}

	return out
}
