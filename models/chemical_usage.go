package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChemicalTypes is the pick list offered when recording usage. "Other"
// covers anything off-list; quantities are free text with embedded units.
var ChemicalTypes = []string{
	"Liquid Chlorine",
	"Chlorine Tablets",
	"Muriatic Acid",
	"Soda Ash",
	"Baking Soda",
	"Calcium Chloride",
	"Stabilizer (CYA)",
	"Algaecide",
	"Clarifier",
	"Salt",
	"Phosphate Remover",
	"Other",
}

// ChemicalUsage is an ad-hoc consumable entry kept for billing, independent
// of any service log.
type ChemicalUsage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	ChemicalType string `gorm:"not null"`
	Quantity     string `gorm:"not null"`
	Notes        string

	// Server-assigned on create as the current date, YYYY-MM-DD.
	CreatedDate string `gorm:"type:varchar(10);index"`

	CreatedAt time.Time
}

func (u *ChemicalUsage) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
