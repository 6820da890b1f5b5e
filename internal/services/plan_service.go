package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanInput struct {
	Name         string   `json:"name" binding:"required"`
	Credits      int      `json:"credits" binding:"required,min=1"`
	Price        float64  `json:"price" binding:"min=0"`
	DurationDays int      `json:"duration_days" binding:"required,min=1"`
	Features     []string `json:"features"`
}

func CreatePlan(input PlanInput) (*models.Plan, error) {
	featuresJSON, err := json.Marshal(input.Features)
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Credits:      input.Credits,
		Price:        input.Price,
		DurationDays: input.DurationDays,
		Features:     datatypes.JSON(featuresJSON),
		IsActive:     true,
	}

	if err := database.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func FindPlans(activeOnly bool) ([]models.Plan, error) {
	var plans []models.Plan
	query := database.DB.Model(&models.Plan{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("price").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func FindPlanByID(id string) (*models.Plan, error) {
	var plan models.Plan
	if err := database.DB.Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func UpdatePlan(id string, updates map[string]interface{}) (*models.Plan, error) {
	if features, ok := updates["features"]; ok {
		featuresJSON, err := json.Marshal(features)
		if err != nil {
			return nil, err
		}
		updates["features"] = datatypes.JSON(featuresJSON)
	}
	updates["updated_at"] = time.Now()

	res := database.DB.Model(&models.Plan{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrPlanNotFound
	}

	return FindPlanByID(id)
}

// DeletePlan deactivates a plan (soft delete); purchased history keeps
// referencing it.
func DeletePlan(id string) error {
	res := database.DB.Model(&models.Plan{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
