package services

import (
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

func setupAuthTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.Migrator().DropTable(&models.User{})
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic("failed to migrate database")
	}
	database.DB = db
	database.RedisClient = nil
}

func setupAuthTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestRegisterFirstUserBecomesSuperAdmin(t *testing.T) {
	setupAuthTestDB()

	first, err := RegisterUser("founder@test.com", "password123", "Founder")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, first.Role)
	assert.Equal(t, 0, first.Credits)

	second, err := RegisterUser("member@test.com", "password123", "Member")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupAuthTestDB()

	_, err := RegisterUser("dup@test.com", "password123", "First")
	assert.NoError(t, err)

	_, err = RegisterUser("dup@test.com", "otherpass456", "Second")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	setupAuthTestDB()
	_, err := RegisterUser("login@test.com", "password123", "Login User")
	assert.NoError(t, err)

	token, u, err := LoginUser("login@test.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "login@test.com", u.Email)

	_, _, err = LoginUser("login@test.com", "wrongpass")
	assert.Error(t, err)

	_, _, err = LoginUser("nobody@test.com", "password123")
	assert.Error(t, err)
}

func TestLoginDeactivatedUser(t *testing.T) {
	setupAuthTestDB()
	u, err := RegisterUser("inactive@test.com", "password123", "Inactive")
	assert.NoError(t, err)

	database.DB.Model(&models.User{}).Where("id = ?", u.ID).Update("is_active", false)

	_, _, err = LoginUser("inactive@test.com", "password123")
	assert.Error(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	setupAuthTestDB()
	mr := setupAuthTestRedis()
	defer mr.Close()

	_, err := RegisterUser("reset@test.com", "oldpassword1", "Reset User")
	assert.NoError(t, err)

	RequestPasswordReset("reset@test.com")

	// The token is delivered out of band; pull it from the store
	var token string
	for _, key := range mr.Keys() {
		if strings.HasPrefix(key, "pwreset:") {
			token = strings.TrimPrefix(key, "pwreset:")
		}
	}
	assert.NotEmpty(t, token)

	err = ResetPassword(token, "newpassword1")
	assert.NoError(t, err)

	_, _, err = LoginUser("reset@test.com", "oldpassword1")
	assert.Error(t, err)
	_, u, err := LoginUser("reset@test.com", "newpassword1")
	assert.NoError(t, err)
	assert.Equal(t, "reset@test.com", u.Email)

	// The token is single use
	err = ResetPassword(token, "anotherpass1")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	setupAuthTestDB()
	mr := setupAuthTestRedis()
	defer mr.Close()

	RequestPasswordReset("ghost@test.com")
	assert.Empty(t, mr.Keys())
}

func TestResetPasswordInvalidToken(t *testing.T) {
	setupAuthTestDB()
	mr := setupAuthTestRedis()
	defer mr.Close()

	err := ResetPassword("not-a-token", "newpassword1")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
