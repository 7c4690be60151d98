package usecase

import (
	"testing"

	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCompanyRepo struct {
	companies map[string]*domain.Company
}

func (r *memCompanyRepo) GetCompanyByID(companyID string) (*domain.Company, error) {
	return r.companies[companyID], nil
}

func (r *memCompanyRepo) CreateCompany(*domain.Company) (string, error) { return "", nil }
func (r *memCompanyRepo) UpdateCompany(*domain.Company) error           { return nil }
func (r *memCompanyRepo) DeleteCompany(string) error                    { return nil }
func (r *memCompanyRepo) GetCompanies() ([]*domain.Company, error)      { return nil, nil }
func (r *memCompanyRepo) GetCompaniesWithProducts() ([]*domain.Company, error) {
	return nil, nil
}

type fixedDistance struct {
	km map[string]float64
}

func (d *fixedDistance) DistanceKm(origin, destination string) (float64, error) {
	return d.km[destination], nil
}

func TestCalculateFee_ChargesPerStartedRadiusSpan(t *testing.T) {
	cartRepo := newMemCartRepo()
	cartRepo.carts["c1"] = &domain.Cart{ID: "c1", UserID: "u1"}
	cartRepo.items["i1"] = &domain.CartItem{
		ID: "i1", CartID: "c1", ProductID: "p1", Quantity: 1, Price: 10,
		Product: &domain.Product{ID: "p1", CompanyID: "s1"},
	}

	companyRepo := &memCompanyRepo{companies: map[string]*domain.Company{
		"s1": {ID: "s1", Address: "Rua A, 10", DeliveryFee: 5, DeliveryRadius: 3},
	}}
	// 7km over a 3km radius is three started spans.
	distance := &fixedDistance{km: map[string]float64{"Rua A, 10": 7}}

	uc := NewDefaultDeliveryUsecase(cartRepo, companyRepo, distance)
	quote, err := uc.CalculateFee("u1", "Av B, 99")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, quote.Fee, 1e-9)
	assert.InDelta(t, 7.0, quote.DistanceKm, 1e-9)
}

func TestCalculateFee_TakesMostExpensiveCompany(t *testing.T) {
	cartRepo := newMemCartRepo()
	cartRepo.carts["c1"] = &domain.Cart{ID: "c1", UserID: "u1"}
	cartRepo.items["i1"] = &domain.CartItem{
		ID: "i1", CartID: "c1", ProductID: "p1", Quantity: 1, Price: 10,
		Product: &domain.Product{ID: "p1", CompanyID: "s1"},
	}
	cartRepo.items["i2"] = &domain.CartItem{
		ID: "i2", CartID: "c1", ProductID: "p2", Quantity: 1, Price: 10,
		Product: &domain.Product{ID: "p2", CompanyID: "s2"},
	}

	companyRepo := &memCompanyRepo{companies: map[string]*domain.Company{
		"s1": {ID: "s1", Address: "Rua A", DeliveryFee: 5, DeliveryRadius: 5},
		"s2": {ID: "s2", Address: "Rua B", DeliveryFee: 8, DeliveryRadius: 5},
	}}
	distance := &fixedDistance{km: map[string]float64{"Rua A": 4, "Rua B": 2}}

	uc := NewDefaultDeliveryUsecase(cartRepo, companyRepo, distance)
	quote, err := uc.CalculateFee("u1", "Av C")
	require.NoError(t, err)
	assert.InDelta(t, 8.0, quote.Fee, 1e-9)
	assert.InDelta(t, 4.0, quote.DistanceKm, 1e-9)
}

func TestCalculateFee_EmptyCart(t *testing.T) {
	uc := NewDefaultDeliveryUsecase(newMemCartRepo(), &memCompanyRepo{}, &fixedDistance{})

	_, err := uc.CalculateFee("u1", "Av C")
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}
