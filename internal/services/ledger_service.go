package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/config"
	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// ledgerRetries bounds retries of transient store failures. Sentinel
// failures (insufficient credits, missing user) are never retried.
const ledgerRetries = 3

// DebitCredits subtracts amount from the user's balance only if the
// balance covers it, as a single conditional UPDATE. The check and the
// write are one statement, so concurrent debits against the same user
// can never drive the balance negative. The ledger row commits in the
// same transaction as the balance change: both or neither.
//
// Returns the new balance.
func DebitCredits(userID uint, amount int, txType models.TransactionType, referenceID, reason, operator string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	var newBalance int
	err := withLedgerRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.User{}).
				Where("id = ? AND credits >= ?", userID, amount).
				UpdateColumn("credits", gorm.Expr("credits - ?", amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var count int64
				if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return ErrUserNotFound
				}
				return ErrInsufficientCredits
			}

			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				return err
			}
			newBalance = user.Credits

			return appendTransaction(tx, &models.CreditTransaction{
				UserID:        userID,
				Amount:        -amount,
				BalanceBefore: newBalance + amount,
				BalanceAfter:  newBalance,
				Type:          txType,
				ReferenceID:   referenceID,
				Reason:        reason,
				Operator:      operator,
			})
		})
	})
	if err != nil {
		return 0, err
	}

	invalidateUserCache(userID)
	return newBalance, nil
}

// CreditCredits unconditionally increases the user's balance (admin
// grants, purchases, reveal rollbacks). Same one-transaction rule as
// DebitCredits.
func CreditCredits(userID uint, amount int, txType models.TransactionType, referenceID, reason, operator string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	var newBalance int
	err := withLedgerRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.User{}).
				Where("id = ?", userID).
				UpdateColumn("credits", gorm.Expr("credits + ?", amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrUserNotFound
			}

			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				return err
			}
			newBalance = user.Credits

			return appendTransaction(tx, &models.CreditTransaction{
				UserID:        userID,
				Amount:        amount,
				BalanceBefore: newBalance - amount,
				BalanceAfter:  newBalance,
				Type:          txType,
				ReferenceID:   referenceID,
				Reason:        reason,
				Operator:      operator,
			})
		})
	})
	if err != nil {
		return 0, err
	}

	invalidateUserCache(userID)
	return newBalance, nil
}

// AdjustCredits applies a signed admin delta: positive grants, negative
// deducts (conditionally, never below zero).
func AdjustCredits(userID uint, delta int, reason, operator string) (int, error) {
	if delta >= 0 {
		return CreditCredits(userID, delta, models.TransactionTypeAdminAdjustment, "", reason, operator)
	}
	return DebitCredits(userID, -delta, models.TransactionTypeAdminAdjustment, "", reason, operator)
}

// GetBalance returns the user's current balance.
func GetBalance(userID uint) (int, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Credits, nil
}

func appendTransaction(tx *gorm.DB, trx *models.CreditTransaction) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	trx.CreatedAt = time.Now()
	trx.Hash = trx.GenerateHash(cfg.LedgerSecret)
	return tx.Create(trx).Error
}

func withLedgerRetry(op func() error) error {
	var err error
	for i := 0; i < ledgerRetries; i++ {
		err = op()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrInsufficientCredits) || errors.Is(err, ErrUserNotFound) {
			return err
		}
	}
	return err
}

// TransactionFilter defines criteria for filtering ledger rows
type TransactionFilter struct {
	UserID    *uint
	Type      *models.TransactionType
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	Limit     int
}

// FindTransactions retrieves a paginated list of ledger rows with filtering
func FindTransactions(filter TransactionFilter) ([]models.CreditTransaction, int64, error) {
	var transactions []models.CreditTransaction
	var total int64

	query := database.DB.Model(&models.CreditTransaction{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at <= ?", *filter.EndTime)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// GenerateTransactionCSV generates a CSV file content for ledger rows
func GenerateTransactionCSV(transactions []models.CreditTransaction) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{
		"ID", "Time", "User ID", "Type", "Amount",
		"Balance Before", "Balance After", "Reference", "Reason",
		"Operator", "Hash",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range transactions {
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.CreatedAt.Format(time.RFC3339Nano),
			fmt.Sprintf("%d", t.UserID),
			string(t.Type),
			fmt.Sprintf("%d", t.Amount),
			fmt.Sprintf("%d", t.BalanceBefore),
			fmt.Sprintf("%d", t.BalanceAfter),
			t.ReferenceID,
			t.Reason,
			t.Operator,
			t.Hash,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
