package schedule

import "github.com/studioflow/studio-scheduler/internal/models"

// ===============================
// Grid drag reducer
// ===============================

// A grade de disponibilidade trata arrastar-e-soltar (e reposicionamento
// por teclado, que dispara as mesmas transições) como uma máquina de
// estados pura: Idle -> Dragging -> drop. O resultado de um drop é um
// BlockUpdate parcial, consumido pelos use cases de movimentação.

type DragState int

const (
	DragIdle DragState = iota
	Dragging
)

// BlockUpdate é o comando parcial emitido por um drop aceito.
// Campos nil não são alterados.
type BlockUpdate struct {
	BlockID   uint
	DayOfWeek *int
	StartTime *string
	EndTime   *string
}

type Drag struct {
	state DragState
	block models.TimeBlock
}

func (d *Drag) State() DragState {
	return d.state
}

// Begin captura o bloco sob o ponteiro e entra em Dragging.
func (d *Drag) Begin(block models.TimeBlock) {
	d.state = Dragging
	d.block = block
}

// Cancel descarta o gesto sem mutação (drop fora da grade ou Esc).
func (d *Drag) Cancel() {
	d.state = DragIdle
	d.block = models.TimeBlock{}
}

// DropOnDay solta o bloco sobre a célula de um dia. Só o day_of_week
// muda; staff e horários são preservados. Soltar no mesmo dia é no-op.
func (d *Drag) DropOnDay(day int) (BlockUpdate, bool) {
	if d.state != Dragging {
		return BlockUpdate{}, false
	}

	block := d.block
	d.Cancel()

	if day < 0 || day > 6 || day == block.DayOfWeek {
		return BlockUpdate{}, false
	}

	return BlockUpdate{BlockID: block.ID, DayOfWeek: &day}, true
}

// DropOnSlot solta o bloco sobre a célula (dia, hora) da grade horária.
// O bloco é reancorado: start vira hora cheia do slot e end recebe a
// duração original, preservada ao minuto. Drops cujo novo fim passaria
// da meia-noite são rejeitados.
func (d *Drag) DropOnSlot(day, hour int) (BlockUpdate, bool) {
	if d.state != Dragging {
		return BlockUpdate{}, false
	}

	block := d.block
	d.Cancel()

	if day < 0 || day > 6 || hour < 0 || hour > 23 {
		return BlockUpdate{}, false
	}

	duration := Duration(block.StartTime, block.EndTime)

	newStart := hour * 60
	newEnd := newStart + duration
	if newEnd >= 24*60 {
		// "24:00" não é representável em HH:MM
		return BlockUpdate{}, false
	}

	start := MinutesToClock(newStart)
	end := MinutesToClock(newEnd)

	upd := BlockUpdate{
		BlockID:   block.ID,
		StartTime: &start,
		EndTime:   &end,
	}
	if day != block.DayOfWeek {
		upd.DayOfWeek = &day
	}

	return upd, true
}

// Apply aplica um BlockUpdate sobre o bloco em memória.
func Apply(block *models.TimeBlock, upd BlockUpdate) {
	if upd.DayOfWeek != nil {
		block.DayOfWeek = *upd.DayOfWeek
	}
	if upd.StartTime != nil {
		block.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		block.EndTime = *upd.EndTime
	}
}
