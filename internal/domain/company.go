package domain

import (
	"strings"
	"time"
)

type Company struct {
	ID             string
	LegalName      string
	FinalName      string
	CNPJ           string
	Phone          string
	Email          string
	Category       string
	Status         string
	Logo           string
	Plan           string
	Active         bool

	Address      string
	CEP          string
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string

	DeliveryFee    float64
	DeliveryRadius float64
	OpeningHours   string
	FreeShipping   bool

	FirstPurchaseDiscountStore      bool
	FirstPurchaseDiscountStoreValue int
	FirstPurchaseDiscountApp        bool
	FirstPurchaseDiscountAppValue   int

	PixKey     string
	PixKeyType string

	Products []Product

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentProfile derives the merchant payment profile used by the payment
// code encoder. The address line joins the non-empty address components
// with ", "; uppercasing is left to the encoder.
func (c *Company) PaymentProfile() PaymentProfile {
	parts := make([]string, 0, 6)
	for _, p := range []string{c.Street, c.Number, c.Neighborhood, c.City, c.State, c.CEP} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return PaymentProfile{
		PixKey:      c.PixKey,
		DisplayName: c.FinalName,
		AddressLine: strings.Join(parts, ", "),
		StateCode:   c.State,
	}
}

// PaymentProfile carries the merchant-side fields of a payment code.
type PaymentProfile struct {
	PixKey      string
	DisplayName string
	AddressLine string
	StateCode   string
}

type CompanyRepository interface {
	CreateCompany(company *Company) (string, error)
	UpdateCompany(company *Company) error
	DeleteCompany(companyID string) error
	GetCompanyByID(companyID string) (*Company, error)
	GetCompanies() ([]*Company, error)
	GetCompaniesWithProducts() ([]*Company, error)
}
