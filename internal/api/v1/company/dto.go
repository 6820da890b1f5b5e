package company

import "github.com/Amitsjoysm/LEADGENIE/internal/models"

type SearchInput struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Revenue      string `json:"revenue"`
	EmployeeSize string `json:"employee_size"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

type CompanyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Domain       string `json:"domain"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`
	Revenue      string `json:"revenue,omitempty"`
	EmployeeSize string `json:"employee_size,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Description  string `json:"description,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
}

type SearchResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

func toCompanyResponse(co *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:           co.ID,
		Name:         co.Name,
		Domain:       co.Domain,
		LinkedinURL:  co.LinkedinURL,
		Revenue:      co.Revenue,
		EmployeeSize: co.EmployeeSize,
		Industry:     co.Industry,
		Description:  co.Description,
		City:         co.City,
		State:        co.State,
		Country:      co.Country,
	}
}
