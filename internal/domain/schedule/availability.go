package schedule

import "github.com/studioflow/studio-scheduler/internal/models"

// ===============================
// Staff availability (derived)
// ===============================

// Conflict aponta dois blocos sobrepostos do mesmo staff/dia.
// Informativo apenas — sobreposição nunca bloqueia um save.
type Conflict struct {
	BlockID      uint `json:"block_id"`
	OtherBlockID uint `json:"other_block_id"`
}

type StaffAvailability struct {
	Staff             models.StaffMember `json:"staff"`
	Blocks            []models.TimeBlock `json:"blocks"`
	TotalHoursPerWeek float64            `json:"total_hours_per_week"`
	Conflicts         []Conflict         `json:"conflicts,omitempty"`
}

// NetMinutes é a duração do bloco descontada a pausa.
func NetMinutes(b models.TimeBlock) int {
	total := Duration(b.StartTime, b.EndTime)
	if b.BreakStart != nil && b.BreakEnd != nil {
		total -= Duration(*b.BreakStart, *b.BreakEnd)
	}
	return total
}

// Overlaps aplica o teste clássico de interseção de intervalos:
// max(start1, start2) < min(end1, end2). Só compara blocos do mesmo
// staff no mesmo dia.
func Overlaps(a, b models.TimeBlock) bool {
	if a.StaffID != b.StaffID || a.DayOfWeek != b.DayOfWeek {
		return false
	}

	s1, _ := ParseClock(a.StartTime)
	e1, _ := ParseClock(a.EndTime)
	s2, _ := ParseClock(b.StartTime)
	e2, _ := ParseClock(b.EndTime)

	lo := s1
	if s2 > lo {
		lo = s2
	}
	hi := e1
	if e2 < hi {
		hi = e2
	}

	return lo < hi
}

// BuildAvailability agrega os blocos por staff: lista ordenada por
// início, total de horas semanais líquidas e avisos de sobreposição.
func BuildAvailability(staff []models.StaffMember, blocks []models.TimeBlock) []StaffAvailability {
	byStaff := make(map[uint][]models.TimeBlock, len(staff))
	for _, b := range blocks {
		byStaff[b.StaffID] = append(byStaff[b.StaffID], b)
	}

	out := make([]StaffAvailability, 0, len(staff))
	for _, s := range staff {
		own := byStaff[s.ID]
		SortBlocksByStart(own)

		minutes := 0
		for _, b := range own {
			minutes += NetMinutes(b)
		}

		out = append(out, StaffAvailability{
			Staff:             s,
			Blocks:            own,
			TotalHoursPerWeek: float64(minutes) / 60.0,
			Conflicts:         findConflicts(own),
		})
	}

	return out
}

func findConflicts(blocks []models.TimeBlock) []Conflict {
	var out []Conflict
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if Overlaps(blocks[i], blocks[j]) {
				out = append(out, Conflict{
					BlockID:      blocks[i].ID,
					OtherBlockID: blocks[j].ID,
				})
			}
		}
	}
	return out
}
