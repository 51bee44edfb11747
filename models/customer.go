package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedBy string    `gorm:"index;not null"` // technician account email

	FullName    string `gorm:"not null"`
	Address     string `gorm:"not null"`
	Phone       string
	Email       string
	GateCode    string
	ServiceDay  string `gorm:"index;not null"` // Monday..Saturday
	PoolGallons *float64
	PoolType    string `gorm:"not null"` // Salt or Chlorine
	SurfaceType string `gorm:"not null"` // Plaster, Vinyl, Fiberglass, Tile

	// Manual display position within the customer's service-day group.
	// Nil until the first normalize-order pass assigns it.
	SortOrder *int

	CreatedAt time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
