package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

var ErrUserAlreadyExists = errors.New("user with this email already exists")
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

const resetTokenTTL = time.Hour

func RegisterUser(email, password, fullName string) (*models.User, error) {
	// Check if user already exists
	var existingUser models.User
	result := database.DB.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var userCount int64
	database.DB.Model(&models.User{}).Count(&userCount)

	// First account becomes the super admin
	role := models.RoleUser
	if userCount == 0 {
		role = models.RoleSuperAdmin
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		FullName: fullName,
		Role:     role,
		IsActive: true,
	}

	if err := database.DB.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func LoginUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if !user.IsActive {
		return "", nil, errors.New("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// RequestPasswordReset issues a one-hour reset token. Whether the email
// exists is never disclosed to the caller; delivery is a log line here
// (no outbound mail in this deployment).
func RequestPasswordReset(email string) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	token := uuid.New().String()
	key := fmt.Sprintf("pwreset:%s", token)
	if database.RedisClient != nil {
		if err := database.RedisClient.Set(database.Ctx, key, user.ID, resetTokenTTL).Err(); err != nil {
			zap.L().Error("failed to store reset token", zap.Error(err))
			return
		}
	}

	zap.L().Info("password reset requested",
		zap.String("email", email),
		zap.String("token", token))
}

func ResetPassword(token, newPassword string) error {
	if database.RedisClient == nil {
		return ErrInvalidResetToken
	}

	key := fmt.Sprintf("pwreset:%s", token)
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err != nil {
		return ErrInvalidResetToken
	}

	var userID uint
	if _, err := fmt.Sscanf(val, "%d", &userID); err != nil {
		return ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"password": string(hashedPassword)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	database.RedisClient.Del(database.Ctx, key)
	invalidateUserCache(userID)
	return nil
}
