package profile_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/api/v1/profile"
	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

func setupTestDB() {
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

// setupRouter registers the profile routes behind a stub that injects
// the given user, standing in for the auth middleware.
func setupRouter(user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	})
	profile.RegisterRoutes(group)
	return router
}

func createTestProfile() *models.Profile {
	p := &models.Profile{
		ID:            uuid.New().String(),
		FirstName:     "Jane",
		LastName:      "Smith",
		JobTitle:      "CTO",
		CompanyName:   "TechCorp",
		CompanyDomain: "techcorp.com",
		Emails:        models.StringList{"jane.smith@techcorp.com"},
		Phones:        models.StringList{"+1-555-987-6543"},
		Shard:         models.ShardKey("Smith"),
	}
	database.DB.Create(p)
	return p
}

func createTestUser(credits int, role string) models.User {
	u := models.User{Email: "tester@test.com", Password: "x", Role: role, Credits: credits, IsActive: true}
	database.DB.Create(&u)
	return u
}

type revealEnvelope struct {
	Status int                    `json:"status"`
	Data   profile.RevealResponse `json:"data"`
}

func postReveal(router *gin.Engine, profileID, kind string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(profile.RevealInput{FieldKind: kind})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/"+profileID+"/reveal", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRevealEndpoint(t *testing.T) {
	setupTestDB()
	user := createTestUser(10, models.RoleUser)
	p := createTestProfile()
	router := setupRouter(user)

	w := postReveal(router, p.ID, "email")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp revealEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, []string{"jane.smith@techcorp.com"}, resp.Data.FieldValues)
	assert.Equal(t, 1, resp.Data.CreditsUsed)
	assert.False(t, resp.Data.AlreadyRevealed)
	assert.Equal(t, 9, resp.Data.Balance)

	// Repeat is free
	w = postReveal(router, p.ID, "email")
	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 0, resp.Data.CreditsUsed)
	assert.True(t, resp.Data.AlreadyRevealed)
	assert.Equal(t, 9, resp.Data.Balance)
}

func TestRevealEndpointInsufficientCredits(t *testing.T) {
	setupTestDB()
	user := createTestUser(0, models.RoleUser)
	p := createTestProfile()
	router := setupRouter(user)

	w := postReveal(router, p.ID, "phone")
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestRevealEndpointValidation(t *testing.T) {
	setupTestDB()
	user := createTestUser(10, models.RoleUser)
	p := createTestProfile()
	router := setupRouter(user)

	w := postReveal(router, p.ID, "address")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postReveal(router, uuid.New().String(), "email")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchEndpointMasksContacts(t *testing.T) {
	setupTestDB()
	user := createTestUser(10, models.RoleUser)
	createTestProfile()
	router := setupRouter(user)

	body, _ := json.Marshal(profile.SearchInput{LastName: "Smith"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data profile.SearchResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(1), resp.Data.Total)
	got := resp.Data.Profiles[0]
	assert.Equal(t, []string{"j***@techcorp.com"}, got.Emails)
	assert.Equal(t, []string{"***-***-6543"}, got.Phones)
	assert.Equal(t, "***.com", got.CompanyDomain)
	assert.False(t, got.EmailRevealed)
}

func TestSearchEndpointShowsRevealedContacts(t *testing.T) {
	setupTestDB()
	user := createTestUser(10, models.RoleUser)
	p := createTestProfile()
	router := setupRouter(user)

	w := postReveal(router, p.ID, "email")
	assert.Equal(t, http.StatusOK, w.Code)

	body, _ := json.Marshal(profile.SearchInput{LastName: "Smith"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Data profile.SearchResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	got := resp.Data.Profiles[0]
	assert.True(t, got.EmailRevealed)
	assert.Equal(t, []string{"jane.smith@techcorp.com"}, got.Emails)
	// Phone stays masked until paid for separately
	assert.False(t, got.PhoneRevealed)
	assert.Equal(t, []string{"***-***-6543"}, got.Phones)
}

func TestGetEndpointSuperAdminUnmasked(t *testing.T) {
	setupTestDB()
	admin := createTestUser(0, models.RoleSuperAdmin)
	p := createTestProfile()
	router := setupRouter(admin)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+p.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data profile.ProfileResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, []string{"jane.smith@techcorp.com"}, resp.Data.Emails)
	assert.Equal(t, []string{"+1-555-987-6543"}, resp.Data.Phones)
	assert.Equal(t, "techcorp.com", resp.Data.CompanyDomain)
	assert.True(t, resp.Data.EmailRevealed)
	assert.True(t, resp.Data.PhoneRevealed)
}
