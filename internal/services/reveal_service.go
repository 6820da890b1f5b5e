package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Amitsjoysm/LEADGENIE/config"
	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

var (
	ErrInvalidRevealType = errors.New("reveal type must be 'email' or 'phone'")
)

// RevealResult is the outcome of a reveal request.
type RevealResult struct {
	FieldValues     []string `json:"field_values"`
	CreditsUsed     int      `json:"credits_used"`
	AlreadyRevealed bool     `json:"already_revealed"`
	Balance         int      `json:"balance"`
}

// Reveal unlocks one contact field of a profile for a user, charging
// the field's credit cost at most once per (user, profile, kind).
//
// The debit happens before the reveal record is written; the two live
// in different tables and are not committed together. If a concurrent
// duplicate wins the record insert between our existence check and our
// own insert, the debit is compensated with an equal credit, so the net
// charge for the key is always exactly one cost. None of this touches
// the request context: once the debit commits, the record write runs
// to completion even if the caller has disconnected.
func Reveal(user models.User, profileID, fieldKind string) (*RevealResult, error) {
	cost, txType, err := revealCost(fieldKind)
	if err != nil {
		return nil, err
	}

	profile, err := FindProfileByID(profileID)
	if err != nil {
		return nil, err
	}
	values := revealFieldValues(profile, fieldKind)

	// Super admins see everything without touching the ledger.
	if user.Role == models.RoleSuperAdmin {
		balance, _ := GetBalance(user.ID)
		return &RevealResult{FieldValues: values, CreditsUsed: 0, AlreadyRevealed: true, Balance: balance}, nil
	}

	// Step 1: an existing record makes this a zero-cost read.
	existing, err := findRevealRecord(user.ID, profileID, fieldKind)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		balance, err := GetBalance(user.ID)
		if err != nil {
			return nil, err
		}
		return &RevealResult{FieldValues: values, CreditsUsed: 0, AlreadyRevealed: true, Balance: balance}, nil
	}

	return chargeAndRecord(user, profile, fieldKind, cost, txType, values)
}

// chargeAndRecord is steps 3-4 of the reveal protocol: atomic debit,
// then create-if-absent of the idempotency record, compensating the
// debit when a concurrent duplicate already created the record.
func chargeAndRecord(user models.User, profile *models.Profile, fieldKind string, cost int, txType models.TransactionType, values []string) (*RevealResult, error) {
	referenceID := fmt.Sprintf("%s:%s", profile.ID, fieldKind)

	balance, err := DebitCredits(user.ID, cost, txType, referenceID,
		fmt.Sprintf("reveal %s of profile %s", fieldKind, profile.ID), user.Email)
	if err != nil {
		// Nothing was written; the caller may safely retry.
		return nil, err
	}

	created, err := createRevealRecord(user.ID, profile.ID, fieldKind, cost)
	if err != nil {
		// The debit committed but the record is missing; without the
		// rollback the user would stay permanently overcharged.
		return nil, rollbackRevealDebit(user, referenceID, cost, err)
	}

	if !created {
		// A concurrent request for the same key won the insert race
		// after our existence check. Exactly one charge survives.
		if err := rollbackRevealDebit(user, referenceID, cost, nil); err != nil {
			return nil, err
		}
		balance, err := GetBalance(user.ID)
		if err != nil {
			return nil, err
		}
		return &RevealResult{FieldValues: values, CreditsUsed: 0, AlreadyRevealed: true, Balance: balance}, nil
	}

	return &RevealResult{FieldValues: values, CreditsUsed: cost, AlreadyRevealed: false, Balance: balance}, nil
}

// rollbackRevealDebit credits back a committed reveal debit. A failure
// here is the one unrecoverable edge: the balance and the reveal state
// disagree and only the immutable ledger can arbitrate, so it is logged
// at the highest severity for out-of-band reconciliation.
func rollbackRevealDebit(user models.User, referenceID string, cost int, cause error) error {
	_, err := CreditCredits(user.ID, cost, models.TransactionTypeRevealRollback, referenceID,
		"duplicate-reveal-rollback", "system")
	if err != nil {
		zap.L().Error("reveal compensation failed, ledger requires manual reconciliation",
			zap.Uint("user_id", user.ID),
			zap.String("reference_id", referenceID),
			zap.Int("credits", cost),
			zap.NamedError("rollback_error", err),
			zap.Error(cause))
		return fmt.Errorf("reveal rollback failed for %s: %w", referenceID, err)
	}
	if cause != nil {
		return fmt.Errorf("reveal record write failed (debit rolled back): %w", cause)
	}
	return nil
}

func revealCost(fieldKind string) (int, models.TransactionType, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return 0, "", err
	}

	switch fieldKind {
	case models.RevealKindEmail:
		return cfg.EmailRevealCost, models.TransactionTypeRevealEmail, nil
	case models.RevealKindPhone:
		return cfg.PhoneRevealCost, models.TransactionTypeRevealPhone, nil
	default:
		return 0, "", ErrInvalidRevealType
	}
}

func revealFieldValues(profile *models.Profile, fieldKind string) []string {
	if fieldKind == models.RevealKindPhone {
		return profile.Phones
	}
	return profile.Emails
}

// createRevealRecord inserts the idempotency record, relying on the
// unique (user, profile, kind) index: of N concurrent inserts for one
// key exactly one reports created=true.
func createRevealRecord(userID uint, profileID, fieldKind string, creditsCharged int) (bool, error) {
	record := models.RevealRecord{
		UserID:         userID,
		ProfileID:      profileID,
		FieldKind:      fieldKind,
		CreditsCharged: creditsCharged,
		GrantedAt:      time.Now(),
	}

	res := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func findRevealRecord(userID uint, profileID, fieldKind string) (*models.RevealRecord, error) {
	var record models.RevealRecord
	err := database.DB.
		Where("user_id = ? AND profile_id = ? AND field_kind = ?", userID, profileID, fieldKind).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// FindRevealRecords returns the caller's reveal records for a set of
// profiles, for the masking layer to consult.
func FindRevealRecords(userID uint, profileIDs []string) ([]models.RevealRecord, error) {
	if len(profileIDs) == 0 {
		return nil, nil
	}

	var records []models.RevealRecord
	err := database.DB.
		Where("user_id = ? AND profile_id IN ?", userID, profileIDs).
		Find(&records).Error
	return records, err
}
