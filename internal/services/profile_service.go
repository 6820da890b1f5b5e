package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileFilter defines search criteria for profiles. All string
// matches are case-insensitive substring matches.
type ProfileFilter struct {
	FirstName   string
	LastName    string
	JobTitle    string
	Industry    string
	CompanyName string
	City        string
	Country     string
	Keyword     string
	Page        int
	PageSize    int
}

// ProfileInput carries the writable fields of a profile for admin
// create/update and bulk upload.
type ProfileInput struct {
	FirstName          string   `json:"first_name" binding:"required"`
	LastName           string   `json:"last_name" binding:"required"`
	JobTitle           string   `json:"job_title" binding:"required"`
	Industry           string   `json:"industry"`
	SubIndustry        string   `json:"sub_industry"`
	Keywords           []string `json:"keywords"`
	SEODescription     string   `json:"seo_description"`
	CompanyName        string   `json:"company_name" binding:"required"`
	CompanyDomain      string   `json:"company_domain" binding:"required"`
	ProfileLinkedinURL string   `json:"profile_linkedin_url"`
	CompanyLinkedinURL string   `json:"company_linkedin_url"`
	Emails             []string `json:"emails"`
	Phones             []string `json:"phones"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Country            string   `json:"country"`
}

// CreateProfile creates a profile, creating or reusing the company
// identified by the domain.
func CreateProfile(input ProfileInput) (*models.Profile, error) {
	var companyID string
	companyName, companyDomain := input.CompanyName, input.CompanyDomain
	if companyDomain != "" {
		company, err := UpsertCompanyByDomain(companyName, companyDomain)
		if err != nil {
			return nil, err
		}
		companyID, companyName, companyDomain = company.ID, company.Name, company.Domain
	}

	profile := &models.Profile{
		ID:                 uuid.New().String(),
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		JobTitle:           input.JobTitle,
		Industry:           input.Industry,
		SubIndustry:        input.SubIndustry,
		Keywords:           models.StringList(input.Keywords),
		SEODescription:     input.SEODescription,
		CompanyID:          companyID,
		CompanyName:        companyName,
		CompanyDomain:      companyDomain,
		ProfileLinkedinURL: input.ProfileLinkedinURL,
		CompanyLinkedinURL: input.CompanyLinkedinURL,
		Emails:             models.StringList(input.Emails),
		Phones:             models.StringList(input.Phones),
		City:               input.City,
		State:              input.State,
		Country:            input.Country,
		Shard:              models.ShardKey(input.LastName),
	}

	if err := database.DB.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func FindProfileByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := database.DB.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SearchProfiles returns a page of profiles matching the filter.
// Masking is applied by the caller per its role and reveal state.
func SearchProfiles(filter ProfileFilter) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	query := database.DB.Model(&models.Profile{})

	if filter.FirstName != "" {
		query = query.Where("first_name LIKE ?", "%"+filter.FirstName+"%")
		// A first-name-only search still hits every shard; the shard
		// key is derived from the last name.
	}
	if filter.LastName != "" {
		query = query.Where("shard = ?", models.ShardKey(filter.LastName)).
			Where("last_name LIKE ?", "%"+filter.LastName+"%")
	}
	if filter.JobTitle != "" {
		query = query.Where("job_title LIKE ?", "%"+filter.JobTitle+"%")
	}
	if filter.Industry != "" {
		query = query.Where("industry LIKE ?", "%"+filter.Industry+"%")
	}
	if filter.CompanyName != "" {
		query = query.Where("company_name LIKE ?", "%"+filter.CompanyName+"%")
	}
	if filter.City != "" {
		query = query.Where("city LIKE ?", "%"+filter.City+"%")
	}
	if filter.Country != "" {
		query = query.Where("country LIKE ?", "%"+filter.Country+"%")
	}
	if filter.Keyword != "" {
		query = query.Where("keywords LIKE ? OR seo_description LIKE ?",
			"%"+filter.Keyword+"%", "%"+filter.Keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("last_name, first_name").Limit(filter.PageSize).Offset(offset).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// UpdateProfile applies selective field updates.
func UpdateProfile(id string, updates map[string]interface{}) (*models.Profile, error) {
	var profile models.Profile
	if err := database.DB.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	// The shard follows the last name
	if lastName, ok := updates["last_name"].(string); ok {
		updates["shard"] = models.ShardKey(lastName)
	}
	updates["updated_at"] = time.Now()

	if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func DeleteProfile(id string) error {
	res := database.DB.Where("id = ?", id).Delete(&models.Profile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
