package repository

import (
	"testing"

	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyToModelOmitsEmptyOpeningHours(t *testing.T) {
	// The jsonb column must stay NULL when unset: postgres rejects
	// ''::jsonb, and gorm's Create includes zero-valued plain strings.
	model := companyToModel(&domain.Company{LegalName: "Mercearia Central"})
	assert.Nil(t, model.OpeningHours)
}

func TestCompanyOpeningHoursRoundTrip(t *testing.T) {
	hours := `{"mon":"08:00-18:00"}`
	model := companyToModel(&domain.Company{LegalName: "Mercearia Central", OpeningHours: hours})
	require.NotNil(t, model.OpeningHours)
	assert.Equal(t, hours, *model.OpeningHours)

	company := companyToDomain(model)
	assert.Equal(t, hours, company.OpeningHours)

	assert.Empty(t, companyToDomain(companyToModel(&domain.Company{})).OpeningHours)
}
