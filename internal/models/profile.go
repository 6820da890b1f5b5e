package models

import (
	"time"
	"unicode"
)

// Profile is a contact record. PII fields (Emails, Phones) are never
// returned raw to regular users; the masking layer decides the
// projection per caller.
type Profile struct {
	ID             string     `gorm:"primarykey;type:varchar(36)"`
	FirstName      string     `gorm:"type:varchar(100);index"`
	LastName       string     `gorm:"type:varchar(100);index"`
	JobTitle       string     `gorm:"type:varchar(200);index"`
	Industry       string     `gorm:"type:varchar(100);index"`
	SubIndustry    string     `gorm:"type:varchar(100)"`
	Keywords       StringList `gorm:"type:json"`
	SEODescription string     `gorm:"type:text"`

	// Company linkage, denormalized for list views
	CompanyID     string `gorm:"type:varchar(36);index"`
	CompanyName   string `gorm:"type:varchar(200);index"`
	CompanyDomain string `gorm:"type:varchar(200)"`

	ProfileLinkedinURL string `gorm:"type:varchar(300)"`
	CompanyLinkedinURL string `gorm:"type:varchar(300)"`

	Emails StringList `gorm:"type:json"`
	Phones StringList `gorm:"type:json"`

	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	Country string `gorm:"type:varchar(100);index"`

	// Shard is the name-prefix partition key: first letter of the last
	// name, or "other" for non-alphabetic names.
	Shard string `gorm:"type:varchar(10);index;not null;default:'other'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShardKey returns the name-prefix shard for a last name.
func ShardKey(lastName string) string {
	if lastName == "" {
		return "other"
	}
	r := []rune(lastName)[0]
	if r >= 'A' && r <= 'Z' {
		r = unicode.ToLower(r)
	}
	if r >= 'a' && r <= 'z' {
		return string(r)
	}
	return "other"
}
