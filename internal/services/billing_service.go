package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/payment"
	"github.com/Amitsjoysm/LEADGENIE/internal/payment/epay"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPayable    = errors.New("order is not pending payment")
	ErrPaymentDisabled    = errors.New("payment method is disabled")
	ErrUnsupportedGateway = errors.New("unsupported payment method")
)

func GetPaymentMethods() ([]models.PaymentConfig, error) {
	var methods []models.PaymentConfig
	if err := database.DB.Where("enable = ?", true).Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func CreatePaymentConfig(name string, method string, config map[string]interface{}, enable bool) (*models.PaymentConfig, error) {
	configJSON, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}

	paymentConfig := &models.PaymentConfig{
		UUID:          uuid.New().String(),
		Name:          name,
		PaymentMethod: method,
		Config:        datatypes.JSON(configJSON),
		Enable:        enable,
	}

	if err := database.DB.Create(paymentConfig).Error; err != nil {
		return nil, err
	}
	return paymentConfig, nil
}

// CreatePlanOrder opens a pending purchase of a plan's credit package.
func CreatePlanOrder(userID uint, planID string, paymentUUID string) (*models.PaymentOrder, error) {
	plan, err := FindPlanByID(planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	order := &models.PaymentOrder{
		ID:          strings.ReplaceAll(uuid.New().String(), "-", ""),
		UserID:      userID,
		PlanID:      plan.ID,
		Credits:     plan.Credits,
		Amount:      plan.Price,
		Status:      models.OrderStatusPending,
		PaymentUUID: paymentUUID,
	}

	if err := database.DB.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// GetPaymentJumpURL builds the gateway redirect URL for a pending order.
func GetPaymentJumpURL(orderID, paymentUUID, paymentChannel, notifyBaseURL, returnURL string) (string, error) {
	var cfg models.PaymentConfig
	if err := database.DB.Where("uuid = ?", paymentUUID).First(&cfg).Error; err != nil {
		return "", err
	}
	if !cfg.Enable {
		return "", ErrPaymentDisabled
	}

	driver, err := gatewayDriver(&cfg)
	if err != nil {
		return "", err
	}

	var order models.PaymentOrder
	if err := database.DB.Where("id = ?", orderID).First(&order).Error; err != nil {
		return "", ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return "", ErrOrderNotPayable
	}

	fullNotifyURL := fmt.Sprintf("%s/%s", strings.TrimRight(notifyBaseURL, "/"), cfg.UUID)

	params := map[string]interface{}{
		"name": fmt.Sprintf("Credits x%d", order.Credits),
	}
	if paymentChannel != "" {
		params["type"] = paymentChannel
	}

	return driver.Pay(order.ID, order.Amount, fullNotifyURL, returnURL, params)
}

// HandlePaymentNotify verifies a gateway callback and completes the
// order it references.
func HandlePaymentNotify(paymentUUID string, params map[string]interface{}) error {
	var cfg models.PaymentConfig
	if err := database.DB.Where("uuid = ?", paymentUUID).First(&cfg).Error; err != nil {
		return err
	}

	driver, err := gatewayDriver(&cfg)
	if err != nil {
		return err
	}

	isValid, orderID, externalID, err := driver.Notify(params)
	if err != nil {
		return err
	}
	if !isValid {
		return errors.New("invalid signature")
	}

	database.DB.Model(&models.PaymentOrder{}).Where("id = ?", orderID).Update("external_id", externalID)

	return CompleteOrder(orderID, "system")
}

// CompleteOrder flips a pending order to paid and grants the purchased
// credits through the ledger. The status flip is a conditional update
// on the pending state, so a replayed gateway callback (or an admin
// completing concurrently) grants the credits exactly once.
func CompleteOrder(orderID string, operator string) error {
	var order models.PaymentOrder
	if err := database.DB.Where("id = ?", orderID).First(&order).Error; err != nil {
		return ErrOrderNotFound
	}

	now := time.Now()
	res := database.DB.Model(&models.PaymentOrder{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":       models.OrderStatusPaid,
			"completed_at": &now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotPayable
	}

	_, err := CreditCredits(order.UserID, order.Credits, models.TransactionTypePurchase,
		order.ID, fmt.Sprintf("plan purchase %s", order.PlanID), operator)
	if err != nil {
		// The order is paid but the grant did not land; the ledger is
		// the audit trail for repair.
		zap.L().Error("paid order credit grant failed",
			zap.String("order_id", order.ID),
			zap.Uint("user_id", order.UserID),
			zap.Int("credits", order.Credits),
			zap.Error(err))
		return err
	}

	return nil
}

func gatewayDriver(cfg *models.PaymentConfig) (payment.Driver, error) {
	var driver payment.Driver
	switch cfg.PaymentMethod {
	case "epay":
		driver = epay.NewEpayDriver()
	default:
		return nil, ErrUnsupportedGateway
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(cfg.Config, &configMap); err != nil {
		return nil, err
	}
	if err := driver.SetConfig(configMap); err != nil {
		return nil, err
	}
	return driver, nil
}
