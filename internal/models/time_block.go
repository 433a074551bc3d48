package models

import "time"

type TimeBlock struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	StaffID uint `json:"staff_id"`

	// Campos denormalizados para exibição na grade
	StaffName string `gorm:"size:100" json:"staff_name"`
	StaffRole string `gorm:"size:50" json:"staff_role"`
	Color     string `gorm:"size:7" json:"color"`

	// 0 = Sunday ... 6 = Saturday (time.Weekday)
	DayOfWeek int `json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	BreakStart *string `gorm:"size:5" json:"break_start"`
	BreakEnd   *string `gorm:"size:5" json:"break_end"`

	IsRecurring bool `json:"is_recurring"`
	Active      bool `gorm:"default:true" json:"is_active"`

	// Semana concreta (domingo, date-only) a que o bloco pertence.
	// Nil para templates recorrentes, que valem em qualquer semana.
	WeekStart *time.Time `gorm:"type:date" json:"week_start"`

	// Token otimista gerado pelo cliente antes do save (temp-<ts>-<rand>)
	ClientRef string `gorm:"size:64" json:"client_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
