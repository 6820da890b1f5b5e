package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

func sampleProfile() *models.Profile {
	return &models.Profile{
		ID:            "p-1",
		FirstName:     "Jane",
		LastName:      "Doe",
		CompanyDomain: "acme.com",
		Emails:        models.StringList{"jane.doe@acme.com"},
		Phones:        models.StringList{"+1-555-123-4567"},
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@acme.com", MaskEmail("jane.doe@acme.com"))
	assert.Equal(t, "j***@x.io", MaskEmail("j@x.io"))
	assert.Equal(t, "**@acme.com", MaskEmail("@acme.com"))
	assert.Equal(t, "***@***.com", MaskEmail("not-an-email"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***-***-4567", MaskPhone("+1-555-123-4567"))
	assert.Equal(t, "***-***-****", MaskPhone("4567"))
	assert.Equal(t, "***-***-****", MaskPhone(""))
}

func TestMaskDomain(t *testing.T) {
	assert.Equal(t, "***.com", MaskDomain("acme.com"))
	assert.Equal(t, "***.io", MaskDomain("sub.acme.io"))
	assert.Equal(t, "", MaskDomain(""))
}

func TestProjectMasksWithoutReveals(t *testing.T) {
	p := Project(sampleProfile(), models.RoleUser, nil)

	assert.False(t, p.EmailRevealed)
	assert.False(t, p.PhoneRevealed)
	for _, e := range p.Emails {
		assert.NotContains(t, e, "jane.doe")
	}
	for _, ph := range p.Phones {
		assert.NotContains(t, ph, "555-123")
	}
	assert.Equal(t, "***.com", p.CompanyDomain)
}

func TestProjectHonorsRevealRecords(t *testing.T) {
	profile := sampleProfile()

	records := []models.RevealRecord{
		{UserID: 7, ProfileID: "p-1", FieldKind: models.RevealKindEmail},
	}

	p := Project(profile, models.RoleUser, records)
	assert.True(t, p.EmailRevealed)
	assert.Equal(t, []string{"jane.doe@acme.com"}, p.Emails)
	// Phone stays masked until its own record exists
	assert.False(t, p.PhoneRevealed)
	assert.Equal(t, []string{"***-***-4567"}, p.Phones)
}

func TestProjectIgnoresOtherProfilesRecords(t *testing.T) {
	records := []models.RevealRecord{
		{UserID: 7, ProfileID: "someone-else", FieldKind: models.RevealKindEmail},
	}

	p := Project(sampleProfile(), models.RoleUser, records)
	assert.False(t, p.EmailRevealed)
}

func TestProjectSuperAdminAlwaysUnmasked(t *testing.T) {
	p := Project(sampleProfile(), models.RoleSuperAdmin, nil)

	assert.True(t, p.EmailRevealed)
	assert.True(t, p.PhoneRevealed)
	assert.Equal(t, []string{"jane.doe@acme.com"}, p.Emails)
	assert.Equal(t, []string{"+1-555-123-4567"}, p.Phones)
	assert.Equal(t, "acme.com", p.CompanyDomain)
}
