package profile

import (
	"github.com/Amitsjoysm/LEADGENIE/internal/masking"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

type SearchInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	JobTitle    string `json:"job_title"`
	Industry    string `json:"industry"`
	CompanyName string `json:"company_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Keyword     string `json:"keyword"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
}

type RevealInput struct {
	FieldKind string `json:"field_kind" binding:"required,oneof=email phone"`
}

// ProfileResponse is a profile as one caller may see it; Emails and
// Phones carry the caller's projection, not the stored values.
type ProfileResponse struct {
	ID                 string   `json:"id"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	JobTitle           string   `json:"job_title"`
	Industry           string   `json:"industry"`
	SubIndustry        string   `json:"sub_industry,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
	SEODescription     string   `json:"seo_description,omitempty"`
	CompanyID          string   `json:"company_id,omitempty"`
	CompanyName        string   `json:"company_name"`
	CompanyDomain      string   `json:"company_domain"`
	ProfileLinkedinURL string   `json:"profile_linkedin_url,omitempty"`
	CompanyLinkedinURL string   `json:"company_linkedin_url,omitempty"`
	Emails             []string `json:"emails"`
	Phones             []string `json:"phones"`
	City               string   `json:"city,omitempty"`
	State              string   `json:"state,omitempty"`
	Country            string   `json:"country,omitempty"`
	EmailRevealed      bool     `json:"email_revealed"`
	PhoneRevealed      bool     `json:"phone_revealed"`
}

type SearchResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type RevealResponse struct {
	ProfileID       string   `json:"profile_id"`
	FieldKind       string   `json:"field_kind"`
	FieldValues     []string `json:"field_values"`
	CreditsUsed     int      `json:"credits_used"`
	AlreadyRevealed bool     `json:"already_revealed"`
	Balance         int      `json:"balance"`
}

func toProfileResponse(p *models.Profile, role string, records []models.RevealRecord) ProfileResponse {
	proj := masking.Project(p, role, records)
	return ProfileResponse{
		ID:                 p.ID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		JobTitle:           p.JobTitle,
		Industry:           p.Industry,
		SubIndustry:        p.SubIndustry,
		Keywords:           p.Keywords,
		SEODescription:     p.SEODescription,
		CompanyID:          p.CompanyID,
		CompanyName:        p.CompanyName,
		CompanyDomain:      proj.CompanyDomain,
		ProfileLinkedinURL: p.ProfileLinkedinURL,
		CompanyLinkedinURL: p.CompanyLinkedinURL,
		Emails:             proj.Emails,
		Phones:             proj.Phones,
		City:               p.City,
		State:              p.State,
		Country:            p.Country,
		EmailRevealed:      proj.EmailRevealed,
		PhoneRevealed:      proj.PhoneRevealed,
	}
}
