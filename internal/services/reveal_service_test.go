package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

func setupRevealTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.Migrator().DropTable(&models.User{}, &models.Profile{}, &models.Company{},
		&models.CreditTransaction{}, &models.RevealRecord{})
	err = db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Company{},
		&models.CreditTransaction{}, &models.RevealRecord{})
	if err != nil {
		panic("failed to migrate database")
	}
	database.DB = db
	database.RedisClient = nil
}

func createRevealTestUser(email string, credits int, role string) models.User {
	user := models.User{
		Email:    email,
		Password: "x",
		Role:     role,
		Credits:  credits,
		IsActive: true,
	}
	database.DB.Create(&user)
	return user
}

func createRevealTestProfile() *models.Profile {
	profile := &models.Profile{
		ID:        uuid.New().String(),
		FirstName: "Jane",
		LastName:  "Smith",
		JobTitle:  "CTO",
		Emails:    models.StringList{"jane.smith@techcorp.com"},
		Phones:    models.StringList{"+1-555-987-6543"},
		Shard:     models.ShardKey("Smith"),
	}
	database.DB.Create(profile)
	return profile
}

func revealLedgerRows(userID uint) []models.CreditTransaction {
	var rows []models.CreditTransaction
	database.DB.Where("user_id = ?", userID).Order("id").Find(&rows)
	return rows
}

func TestRevealChargesOnce(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("buyer@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	first, err := Reveal(user, profile.ID, models.RevealKindEmail)
	assert.NoError(t, err)
	assert.Equal(t, []string{"jane.smith@techcorp.com"}, first.FieldValues)
	assert.Equal(t, 1, first.CreditsUsed)
	assert.False(t, first.AlreadyRevealed)
	assert.Equal(t, 9, first.Balance)

	// Repeat is free and returns the same raw values
	second, err := Reveal(user, profile.ID, models.RevealKindEmail)
	assert.NoError(t, err)
	assert.Equal(t, first.FieldValues, second.FieldValues)
	assert.Equal(t, 0, second.CreditsUsed)
	assert.True(t, second.AlreadyRevealed)
	assert.Equal(t, 9, second.Balance)

	rows := revealLedgerRows(user.ID)
	assert.Len(t, rows, 1)
	assert.Equal(t, models.TransactionTypeRevealEmail, rows[0].Type)
	assert.Equal(t, -1, rows[0].Amount)
}

func TestRevealPhoneCostsMore(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("buyer@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	result, err := Reveal(user, profile.ID, models.RevealKindPhone)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.CreditsUsed)
	assert.Equal(t, 7, result.Balance)
	assert.Equal(t, []string{"+1-555-987-6543"}, result.FieldValues)
}

func TestRevealEmailAndPhoneChargedSeparately(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("buyer@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	email, err := Reveal(user, profile.ID, models.RevealKindEmail)
	assert.NoError(t, err)
	assert.Equal(t, 1, email.CreditsUsed)

	phone, err := Reveal(user, profile.ID, models.RevealKindPhone)
	assert.NoError(t, err)
	assert.Equal(t, 3, phone.CreditsUsed)
	assert.Equal(t, 6, phone.Balance)

	assert.Len(t, revealLedgerRows(user.ID), 2)
}

func TestRevealInsufficientCredits(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("broke@test.com", 0, models.RoleUser)
	profile := createRevealTestProfile()

	_, err := Reveal(user, profile.ID, models.RevealKindEmail)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	// Nothing was granted or charged
	record, err := findRevealRecord(user.ID, profile.ID, models.RevealKindEmail)
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.Empty(t, revealLedgerRows(user.ID))
}

func TestRevealInvalidKind(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("buyer@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	_, err := Reveal(user, profile.ID, "address")
	assert.ErrorIs(t, err, ErrInvalidRevealType)
}

func TestRevealProfileNotFound(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("buyer@test.com", 10, models.RoleUser)

	_, err := Reveal(user, uuid.New().String(), models.RevealKindEmail)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Empty(t, revealLedgerRows(user.ID))
}

func TestRevealSuperAdminIsFree(t *testing.T) {
	setupRevealTestDB()
	admin := createRevealTestUser("root@test.com", 0, models.RoleSuperAdmin)
	profile := createRevealTestProfile()

	result, err := Reveal(admin, profile.ID, models.RevealKindPhone)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.CreditsUsed)
	assert.True(t, result.AlreadyRevealed)
	assert.Equal(t, []string{"+1-555-987-6543"}, result.FieldValues)
	assert.Empty(t, revealLedgerRows(admin.ID))
}

func TestDuplicateRevealIsCompensated(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("racer@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	// Simulate a concurrent duplicate that won the record insert after
	// this request's existence check passed.
	created, err := createRevealRecord(user.ID, profile.ID, models.RevealKindEmail, 1)
	assert.NoError(t, err)
	assert.True(t, created)

	result, err := chargeAndRecord(user, profile, models.RevealKindEmail, 1,
		models.TransactionTypeRevealEmail, profile.Emails)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.CreditsUsed)
	assert.True(t, result.AlreadyRevealed)
	assert.Equal(t, 10, result.Balance)

	// The debit and its compensation both survive in the ledger and
	// cancel out; the record exists exactly once.
	rows := revealLedgerRows(user.ID)
	assert.Len(t, rows, 2)
	assert.Equal(t, models.TransactionTypeRevealEmail, rows[0].Type)
	assert.Equal(t, -1, rows[0].Amount)
	assert.Equal(t, models.TransactionTypeRevealRollback, rows[1].Type)
	assert.Equal(t, 1, rows[1].Amount)
	assert.Equal(t, rows[0].ReferenceID, rows[1].ReferenceID)

	var recordCount int64
	database.DB.Model(&models.RevealRecord{}).
		Where("user_id = ? AND profile_id = ? AND field_kind = ?", user.ID, profile.ID, models.RevealKindEmail).
		Count(&recordCount)
	assert.Equal(t, int64(1), recordCount)
}

func TestCreateRevealRecordIdempotent(t *testing.T) {
	setupRevealTestDB()
	user := createRevealTestUser("buyer@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	created, err := createRevealRecord(user.ID, profile.ID, models.RevealKindEmail, 1)
	assert.NoError(t, err)
	assert.True(t, created)

	created, err = createRevealRecord(user.ID, profile.ID, models.RevealKindEmail, 1)
	assert.NoError(t, err)
	assert.False(t, created)
}

func TestFindRevealRecordsScopedToUser(t *testing.T) {
	setupRevealTestDB()
	alice := createRevealTestUser("alice@test.com", 10, models.RoleUser)
	bob := createRevealTestUser("bob@test.com", 10, models.RoleUser)
	profile := createRevealTestProfile()

	_, err := Reveal(alice, profile.ID, models.RevealKindEmail)
	assert.NoError(t, err)

	aliceRecords, err := FindRevealRecords(alice.ID, []string{profile.ID})
	assert.NoError(t, err)
	assert.Len(t, aliceRecords, 1)

	// One user's reveal never leaks to another
	bobRecords, err := FindRevealRecords(bob.ID, []string{profile.ID})
	assert.NoError(t, err)
	assert.Empty(t, bobRecords)
}
