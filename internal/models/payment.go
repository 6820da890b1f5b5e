package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

type PaymentConfig struct {
	ID            uint           `gorm:"primarykey"`
	UUID          string         `gorm:"uniqueIndex;type:varchar(36);not null"`
	Name          string         `gorm:"type:varchar(100);not null;default:'Payment Method'"` // Display name
	PaymentMethod string         `gorm:"type:varchar(50);not null"`                           // e.g., "epay"
	Config        datatypes.JSON `gorm:"type:json;not null"`
	Enable        bool           `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentOrder is a plan purchase awaiting (or past) gateway
// confirmation. Completing a paid order grants the plan's credits
// through the ledger.
type PaymentOrder struct {
	ID          string  `gorm:"primarykey;type:varchar(32)"` // Order ID
	UserID      uint    `gorm:"index;not null"`
	PlanID      string  `gorm:"type:varchar(36);index;not null"`
	Credits     int     `gorm:"not null"`
	Amount      float64 `gorm:"type:decimal(10,2);not null"`
	Status      string  `gorm:"type:varchar(20);default:'pending'"`
	PaymentUUID string  `gorm:"type:varchar(36);index"` // Which payment config was used
	ExternalID  string  `gorm:"type:varchar(64);index"` // Transaction ID from payment gateway
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}
