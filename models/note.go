package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Title    string `gorm:"not null"`
	Content  string `gorm:"type:text;not null"`
	Category string `gorm:"default:'General'"` // General, Customer, Equipment, Reminder, Chemical, Billing

	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Priority   string     `gorm:"default:'medium'"` // low, medium, high
	Completed  bool       `gorm:"index;default:false"`

	// Server-assigned on create as the current date, YYYY-MM-DD.
	CreatedDate string `gorm:"type:varchar(10);index"`

	CreatedAt time.Time
}

func (n *Note) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
