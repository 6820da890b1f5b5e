package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

func setupBillingTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.Migrator().DropTable(&models.User{}, &models.Plan{}, &models.PaymentOrder{},
		&models.PaymentConfig{}, &models.CreditTransaction{})
	err = db.AutoMigrate(&models.User{}, &models.Plan{}, &models.PaymentOrder{},
		&models.PaymentConfig{}, &models.CreditTransaction{})
	if err != nil {
		panic("failed to migrate database")
	}
	database.DB = db
	database.RedisClient = nil
}

func createBillingTestUserAndPlan() (*models.User, *models.Plan) {
	user := &models.User{Email: "payer@test.com", Password: "x", Credits: 0, IsActive: true}
	database.DB.Create(user)

	plan, err := CreatePlan(PlanInput{
		Name:         "Starter",
		Credits:      100,
		Price:        9.99,
		DurationDays: 30,
		Features:     []string{"100 credits"},
	})
	if err != nil {
		panic(err)
	}
	return user, plan
}

func TestCreatePlanOrder(t *testing.T) {
	setupBillingTestDB()
	user, plan := createBillingTestUserAndPlan()

	order, err := CreatePlanOrder(user.ID, plan.ID, "pay-uuid")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 100, order.Credits)
	assert.Equal(t, 9.99, order.Amount)
	assert.Len(t, order.ID, 32)
}

func TestCreatePlanOrderInactivePlan(t *testing.T) {
	setupBillingTestDB()
	user, plan := createBillingTestUserAndPlan()

	assert.NoError(t, DeletePlan(plan.ID))

	_, err := CreatePlanOrder(user.ID, plan.ID, "pay-uuid")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCompleteOrderGrantsCreditsOnce(t *testing.T) {
	setupBillingTestDB()
	user, plan := createBillingTestUserAndPlan()

	order, err := CreatePlanOrder(user.ID, plan.ID, "pay-uuid")
	assert.NoError(t, err)

	assert.NoError(t, CompleteOrder(order.ID, "system"))

	balance, err := GetBalance(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 100, balance)

	var stored models.PaymentOrder
	database.DB.First(&stored, "id = ?", order.ID)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)
	assert.NotNil(t, stored.CompletedAt)

	var trx models.CreditTransaction
	err = database.DB.Where("user_id = ? AND type = ?", user.ID, models.TransactionTypePurchase).First(&trx).Error
	assert.NoError(t, err)
	assert.Equal(t, order.ID, trx.ReferenceID)

	// A replayed completion does not grant again
	err = CompleteOrder(order.ID, "system")
	assert.ErrorIs(t, err, ErrOrderNotPayable)

	balance, _ = GetBalance(user.ID)
	assert.Equal(t, 100, balance)

	var count int64
	database.DB.Model(&models.CreditTransaction{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCompleteOrderNotFound(t *testing.T) {
	setupBillingTestDB()

	err := CompleteOrder("missing-order", "system")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetPaymentMethodsOnlyEnabled(t *testing.T) {
	setupBillingTestDB()

	_, err := CreatePaymentConfig("Alipay", "epay", map[string]interface{}{
		"url": "https://pay.example.com", "pid": "1001", "key": "secret",
	}, true)
	assert.NoError(t, err)
	_, err = CreatePaymentConfig("Disabled", "epay", map[string]interface{}{
		"url": "https://old.example.com", "pid": "1002", "key": "secret",
	}, false)
	assert.NoError(t, err)

	methods, err := GetPaymentMethods()
	assert.NoError(t, err)
	assert.Len(t, methods, 1)
	assert.Equal(t, "Alipay", methods[0].Name)
}

func TestGetPaymentJumpURL(t *testing.T) {
	setupBillingTestDB()
	user, plan := createBillingTestUserAndPlan()

	cfg, err := CreatePaymentConfig("Alipay", "epay", map[string]interface{}{
		"url": "https://pay.example.com", "pid": "1001", "key": "secret",
	}, true)
	assert.NoError(t, err)

	order, err := CreatePlanOrder(user.ID, plan.ID, cfg.UUID)
	assert.NoError(t, err)

	payURL, err := GetPaymentJumpURL(order.ID, cfg.UUID, "alipay",
		"https://leadgenie.example.com/api/v1/payment/notify", "https://leadgenie.example.com/billing")
	assert.NoError(t, err)
	assert.Contains(t, payURL, "https://pay.example.com/submit.php?")
	assert.Contains(t, payURL, "out_trade_no="+order.ID)
	assert.Contains(t, payURL, "sign=")

	// A paid order cannot be paid again
	assert.NoError(t, CompleteOrder(order.ID, "system"))
	_, err = GetPaymentJumpURL(order.ID, cfg.UUID, "alipay", "https://x", "https://y")
	assert.ErrorIs(t, err, ErrOrderNotPayable)
}
