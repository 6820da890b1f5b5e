package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionTypeRevealEmail     TransactionType = "reveal_email"
	TransactionTypeRevealPhone     TransactionType = "reveal_phone"
	TransactionTypeRevealRollback  TransactionType = "duplicate_reveal_rollback"
	TransactionTypePurchase        TransactionType = "purchase"
	TransactionTypeAdminAdjustment TransactionType = "admin_adjustment"
)

// CreditTransaction is an append-only ledger row. Rows are never
// updated or deleted; the current balance must always equal the sum of
// Amount over a user's rows applied to their initial balance.
type CreditTransaction struct {
	ID            uint            `gorm:"primarykey"`
	CreatedAt     time.Time       `gorm:"precision:3"` // Millisecond precision
	UserID        uint            `gorm:"index;not null"`
	Amount        int             `gorm:"not null"` // negative for debits
	BalanceBefore int             `gorm:"not null"`
	BalanceAfter  int             `gorm:"not null"`
	Type          TransactionType `gorm:"type:varchar(50);index;not null"`
	// ReferenceID ties the row to its trigger: "profileID:email" or
	// "profileID:phone" for reveals, the order ID for purchases.
	ReferenceID string `gorm:"type:varchar(100);index"`
	Reason      string `gorm:"type:text"`
	Operator    string `gorm:"type:varchar(100)"` // email or 'system'
	Hash        string `gorm:"type:varchar(64);default:''"` // HMAC SHA256
}

// GenerateHash generates a tamper-proof hash for the transaction
func (t *CreditTransaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%d|%d|%d|%s|%s|%s",
		t.UserID, t.CreatedAt.UnixNano(), t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.Type, t.ReferenceID, t.Operator)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
