package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyFilter struct {
	Name         string
	Industry     string
	Revenue      string
	EmployeeSize string
	City         string
	Country      string
	Page         int
	PageSize     int
}

type CompanyInput struct {
	Name         string `json:"name" binding:"required"`
	Domain       string `json:"domain" binding:"required"`
	LinkedinURL  string `json:"linkedin_url"`
	Revenue      string `json:"revenue"`
	EmployeeSize string `json:"employee_size"`
	Industry     string `json:"industry"`
	Description  string `json:"description"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

func CreateCompany(input CompanyInput) (*models.Company, error) {
	company := &models.Company{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Domain:       input.Domain,
		LinkedinURL:  input.LinkedinURL,
		Revenue:      input.Revenue,
		EmployeeSize: input.EmployeeSize,
		Industry:     input.Industry,
		Description:  input.Description,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
	}

	if err := database.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// UpsertCompanyByDomain returns the company with the given domain,
// creating a minimal record when none exists. The domain is the
// company's stable identity across profile imports.
func UpsertCompanyByDomain(name, domain string) (*models.Company, error) {
	var company models.Company
	err := database.DB.Where("domain = ?", domain).First(&company).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return CreateCompany(CompanyInput{Name: name, Domain: domain})
}

func FindCompanyByID(id string) (*models.Company, error) {
	var company models.Company
	if err := database.DB.Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func SearchCompanies(filter CompanyFilter) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	query := database.DB.Model(&models.Company{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Industry != "" {
		query = query.Where("industry LIKE ?", "%"+filter.Industry+"%")
	}
	if filter.Revenue != "" {
		query = query.Where("revenue = ?", filter.Revenue)
	}
	if filter.EmployeeSize != "" {
		query = query.Where("employee_size = ?", filter.EmployeeSize)
	}
	if filter.City != "" {
		query = query.Where("city LIKE ?", "%"+filter.City+"%")
	}
	if filter.Country != "" {
		query = query.Where("country LIKE ?", "%"+filter.Country+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("name").Limit(filter.PageSize).Offset(offset).Find(&companies).Error; err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func UpdateCompany(id string, updates map[string]interface{}) (*models.Company, error) {
	var company models.Company
	if err := database.DB.Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	updates["updated_at"] = time.Now()
	if err := database.DB.Model(&company).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func DeleteCompany(id string) error {
	res := database.DB.Where("id = ?", id).Delete(&models.Company{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
