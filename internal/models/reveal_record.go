package models

import "time"

const (
	RevealKindEmail = "email"
	RevealKindPhone = "phone"
)

// RevealRecord is the idempotency anchor for contact reveals: at most
// one row exists per (user, profile, field kind), created exactly once.
// Once present, further reveals of the same key cost nothing. There is
// no un-reveal; rows are never deleted.
type RevealRecord struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"uniqueIndex:idx_reveal_key;not null"`
	ProfileID      string `gorm:"uniqueIndex:idx_reveal_key;type:varchar(36);not null"`
	FieldKind      string `gorm:"uniqueIndex:idx_reveal_key;type:varchar(10);not null"`
	CreditsCharged int    `gorm:"not null"`
	GrantedAt      time.Time
}
