package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceLog is one chemical-reading record for a customer on a calendar
// date. Dates are stored as YYYY-MM-DD strings; the UI expects at most one
// log per customer per day but nothing enforces that.
type ServiceLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceDate string `gorm:"type:varchar(10);index;not null"`
	Status      string `gorm:"default:'completed'"`
	Notes       string

	Ph         string `gorm:"not null"` // low, good, high, critical
	Chlorine   string `gorm:"not null"`
	Alkalinity string `gorm:"not null"`
	Stabilizer string `gorm:"not null"`
	Salt       *float64 // salt pools only

	CreatedAt time.Time
}

func (l *ServiceLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
