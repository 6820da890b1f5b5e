package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

func setupLedgerTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.Migrator().DropTable(&models.User{}, &models.CreditTransaction{})
	if err := db.AutoMigrate(&models.User{}, &models.CreditTransaction{}); err != nil {
		panic("failed to migrate database")
	}
	database.DB = db
	database.RedisClient = nil
}

func createLedgerTestUser(credits int) *models.User {
	user := &models.User{
		Email:    "ledger@test.com",
		Password: "x",
		Role:     models.RoleUser,
		Credits:  credits,
		IsActive: true,
	}
	database.DB.Create(user)
	return user
}

func TestDebitCredits(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(10)

	balance, err := DebitCredits(user.ID, 3, models.TransactionTypeRevealPhone, "p1:phone", "reveal phone", user.Email)
	assert.NoError(t, err)
	assert.Equal(t, 7, balance)

	var stored models.User
	database.DB.First(&stored, user.ID)
	assert.Equal(t, 7, stored.Credits)

	var trx models.CreditTransaction
	err = database.DB.Where("user_id = ?", user.ID).First(&trx).Error
	assert.NoError(t, err)
	assert.Equal(t, -3, trx.Amount)
	assert.Equal(t, 10, trx.BalanceBefore)
	assert.Equal(t, 7, trx.BalanceAfter)
	assert.Equal(t, models.TransactionTypeRevealPhone, trx.Type)
	assert.Equal(t, "p1:phone", trx.ReferenceID)
	assert.NotEmpty(t, trx.Hash)
}

func TestDebitCreditsInsufficient(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(2)

	_, err := DebitCredits(user.ID, 3, models.TransactionTypeRevealPhone, "p1:phone", "reveal phone", user.Email)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	// Balance untouched and no ledger row written
	var stored models.User
	database.DB.First(&stored, user.ID)
	assert.Equal(t, 2, stored.Credits)

	var count int64
	database.DB.Model(&models.CreditTransaction{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDebitCreditsExactBalance(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(3)

	balance, err := DebitCredits(user.ID, 3, models.TransactionTypeRevealPhone, "p1:phone", "reveal phone", user.Email)
	assert.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestDebitCreditsUserNotFound(t *testing.T) {
	setupLedgerTestDB()

	_, err := DebitCredits(999, 1, models.TransactionTypeRevealEmail, "p1:email", "reveal email", "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDebitCreditsRejectsNonPositiveAmount(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(10)

	_, err := DebitCredits(user.ID, 0, models.TransactionTypeRevealEmail, "p1:email", "", user.Email)
	assert.Error(t, err)
	_, err = DebitCredits(user.ID, -5, models.TransactionTypeRevealEmail, "p1:email", "", user.Email)
	assert.Error(t, err)
}

func TestCreditCredits(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(5)

	balance, err := CreditCredits(user.ID, 100, models.TransactionTypePurchase, "order123", "plan purchase", "system")
	assert.NoError(t, err)
	assert.Equal(t, 105, balance)

	var trx models.CreditTransaction
	database.DB.Where("user_id = ?", user.ID).First(&trx)
	assert.Equal(t, 100, trx.Amount)
	assert.Equal(t, 5, trx.BalanceBefore)
	assert.Equal(t, 105, trx.BalanceAfter)
	assert.Equal(t, "order123", trx.ReferenceID)
}

func TestAdjustCredits(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(10)

	balance, err := AdjustCredits(user.ID, 40, "promo grant", "admin@test.com")
	assert.NoError(t, err)
	assert.Equal(t, 50, balance)

	balance, err = AdjustCredits(user.ID, -20, "chargeback", "admin@test.com")
	assert.NoError(t, err)
	assert.Equal(t, 30, balance)

	// A deduction past zero is refused
	_, err = AdjustCredits(user.ID, -100, "too much", "admin@test.com")
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	balance, err = GetBalance(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 30, balance)
}

func TestLedgerSumMatchesBalance(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(0)

	CreditCredits(user.ID, 50, models.TransactionTypePurchase, "o1", "", "system")
	DebitCredits(user.ID, 1, models.TransactionTypeRevealEmail, "p1:email", "", user.Email)
	DebitCredits(user.ID, 3, models.TransactionTypeRevealPhone, "p1:phone", "", user.Email)
	CreditCredits(user.ID, 1, models.TransactionTypeRevealRollback, "p1:email", "", "system")
	DebitCredits(user.ID, 100, models.TransactionTypeRevealPhone, "p2:phone", "", user.Email) // refused

	var sum int
	database.DB.Model(&models.CreditTransaction{}).
		Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum)

	balance, err := GetBalance(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, sum, balance)
	assert.Equal(t, 47, balance)
}

func TestFindTransactionsFilter(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(100)
	other := &models.User{Email: "other@test.com", Password: "x", Credits: 100, IsActive: true}
	database.DB.Create(other)

	DebitCredits(user.ID, 1, models.TransactionTypeRevealEmail, "p1:email", "", user.Email)
	DebitCredits(user.ID, 3, models.TransactionTypeRevealPhone, "p1:phone", "", user.Email)
	DebitCredits(other.ID, 1, models.TransactionTypeRevealEmail, "p2:email", "", other.Email)

	all, total, err := FindTransactions(TransactionFilter{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	mine, total, err := FindTransactions(TransactionFilter{UserID: &user.ID, Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, trx := range mine {
		assert.Equal(t, user.ID, trx.UserID)
	}

	emailType := models.TransactionTypeRevealEmail
	emails, total, err := FindTransactions(TransactionFilter{Type: &emailType, Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, trx := range emails {
		assert.Equal(t, emailType, trx.Type)
	}

	future := time.Now().Add(time.Hour)
	none, total, err := FindTransactions(TransactionFilter{StartTime: &future, Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, none)
}

func TestGenerateTransactionCSV(t *testing.T) {
	setupLedgerTestDB()
	user := createLedgerTestUser(10)
	DebitCredits(user.ID, 1, models.TransactionTypeRevealEmail, "p1:email", "reveal email of profile p1", user.Email)

	transactions, _, err := FindTransactions(TransactionFilter{Page: 1, Limit: 10})
	assert.NoError(t, err)

	data, err := GenerateTransactionCSV(transactions)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "Balance Before")
	assert.Contains(t, string(data), "reveal_email")
	assert.Contains(t, string(data), "p1:email")
}
