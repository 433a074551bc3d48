package models

import "time"

// Membro da equipe exibido na grade de disponibilidade.
// Não possui login próprio — contas ficam em User.
type StaffMember struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Role  string `gorm:"size:50" json:"role"`
	Color string `gorm:"size:7" json:"color"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
