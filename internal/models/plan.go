package models

import (
	"time"

	"gorm.io/datatypes"
)

type Plan struct {
	ID           string         `gorm:"primarykey;type:varchar(36)"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Credits      int            `gorm:"not null"`
	Price        float64        `gorm:"type:decimal(10,2);not null"`
	DurationDays int            `gorm:"not null"`
	Features     datatypes.JSON `gorm:"type:json"`
	IsActive     bool           `gorm:"index;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
