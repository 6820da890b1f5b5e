// Package masking computes the caller-facing projection of a profile's
// contact fields. It is pure: given the same profile, role and reveal
// records it always produces the same output, so it is shared by
// search results, single fetches and reveal responses.
package masking

import (
	"strings"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

// Projection is a profile's contact fields as one caller may see them.
type Projection struct {
	Emails        []string `json:"emails"`
	Phones        []string `json:"phones"`
	CompanyDomain string   `json:"company_domain"`
	EmailRevealed bool     `json:"email_revealed"`
	PhoneRevealed bool     `json:"phone_revealed"`
}

// Project applies the reveal state for one caller. Super admins always
// see raw values. A regular user sees the raw value of a field kind
// only if a reveal record for (user, profile, kind) is present.
func Project(profile *models.Profile, role string, records []models.RevealRecord) Projection {
	if role == models.RoleSuperAdmin {
		return Projection{
			Emails:        profile.Emails,
			Phones:        profile.Phones,
			CompanyDomain: profile.CompanyDomain,
			EmailRevealed: true,
			PhoneRevealed: true,
		}
	}

	p := Projection{CompanyDomain: MaskDomain(profile.CompanyDomain)}

	for _, r := range records {
		if r.ProfileID != profile.ID {
			continue
		}
		switch r.FieldKind {
		case models.RevealKindEmail:
			p.EmailRevealed = true
		case models.RevealKindPhone:
			p.PhoneRevealed = true
		}
	}

	if p.EmailRevealed {
		p.Emails = profile.Emails
	} else {
		p.Emails = make([]string, 0, len(profile.Emails))
		for _, e := range profile.Emails {
			p.Emails = append(p.Emails, MaskEmail(e))
		}
	}

	if p.PhoneRevealed {
		p.Phones = profile.Phones
	} else {
		p.Phones = make([]string, 0, len(profile.Phones))
		for _, ph := range profile.Phones {
			p.Phones = append(p.Phones, MaskPhone(ph))
		}
	}

	return p
}

// MaskEmail hides the local part except its first character:
// j***@company.com.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return "***@***.com"
	}
	local, domain := email[:at], email[at+1:]
	if local == "" {
		return "**@" + domain
	}
	return local[:1] + "***@" + domain
}

// MaskPhone keeps only the last four digits: ***-***-4567.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "***-***-****"
	}
	return "***-***-" + phone[len(phone)-4:]
}

// MaskDomain hides everything before the TLD: ***.com.
func MaskDomain(domain string) string {
	if domain == "" {
		return ""
	}
	parts := strings.Split(domain, ".")
	return "***." + parts[len(parts)-1]
}
