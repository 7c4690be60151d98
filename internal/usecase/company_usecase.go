package usecase

import (
	"github.com/mercadim/marketplace-service/internal/domain"
)

type CompanyUsecase interface {
	CreateCompany(company *domain.Company) (string, error)
	UpdateCompany(actingCompanyID string, company *domain.Company) error
	DeleteCompany(companyID string) error
	GetCompanyByID(companyID string) (*domain.Company, error)
	GetCompanies() ([]*domain.Company, error)
	GetCompaniesWithProducts() ([]*domain.Company, error)
	AddInfo(companyID string, info *CompanyInfoInput) (*domain.Company, error)
}

// CompanyInfoInput carries the onboarding fields a store owner fills in
// after registration, pix key and address components included.
type CompanyInfoInput struct {
	Phone          string
	Street         string
	Number         string
	Neighborhood   string
	City           string
	State          string
	CEP            string
	DeliveryFee    float64
	DeliveryRadius float64
	OpeningHours   string
	FreeShipping   bool
	PixKey         string
	PixKeyType     string

	FirstPurchaseDiscountStore      bool
	FirstPurchaseDiscountStoreValue int
	FirstPurchaseDiscountApp        bool
	FirstPurchaseDiscountAppValue   int
}

type DefaultCompanyUsecase struct {
	CompanyRepo domain.CompanyRepository
}

func NewDefaultCompanyUsecase(companyRepo domain.CompanyRepository) *DefaultCompanyUsecase {
	return &DefaultCompanyUsecase{CompanyRepo: companyRepo}
}

func (uc *DefaultCompanyUsecase) CreateCompany(company *domain.Company) (string, error) {
	if company.Status == "" {
		company.Status = "pending"
	}
	return uc.CompanyRepo.CreateCompany(company)
}

func (uc *DefaultCompanyUsecase) UpdateCompany(actingCompanyID string, company *domain.Company) error {
	if company.ID != actingCompanyID {
		return domain.ErrForbidden
	}
	return uc.CompanyRepo.UpdateCompany(company)
}

func (uc *DefaultCompanyUsecase) DeleteCompany(companyID string) error {
	return uc.CompanyRepo.DeleteCompany(companyID)
}

func (uc *DefaultCompanyUsecase) GetCompanyByID(companyID string) (*domain.Company, error) {
	return uc.CompanyRepo.GetCompanyByID(companyID)
}

func (uc *DefaultCompanyUsecase) GetCompanies() ([]*domain.Company, error) {
	return uc.CompanyRepo.GetCompanies()
}

func (uc *DefaultCompanyUsecase) GetCompaniesWithProducts() ([]*domain.Company, error) {
	return uc.CompanyRepo.GetCompaniesWithProducts()
}

func (uc *DefaultCompanyUsecase) AddInfo(companyID string, info *CompanyInfoInput) (*domain.Company, error) {
	company, err := uc.CompanyRepo.GetCompanyByID(companyID)
	if err != nil {
		return nil, err
	}

	company.Phone = info.Phone
	company.Street = info.Street
	company.Number = info.Number
	company.Neighborhood = info.Neighborhood
	company.City = info.City
	company.State = info.State
	company.CEP = info.CEP
	company.DeliveryFee = info.DeliveryFee
	company.DeliveryRadius = info.DeliveryRadius
	company.OpeningHours = info.OpeningHours
	company.FreeShipping = info.FreeShipping
	company.PixKey = info.PixKey
	company.PixKeyType = info.PixKeyType
	company.FirstPurchaseDiscountStore = info.FirstPurchaseDiscountStore
	company.FirstPurchaseDiscountStoreValue = info.FirstPurchaseDiscountStoreValue
	company.FirstPurchaseDiscountApp = info.FirstPurchaseDiscountApp
	company.FirstPurchaseDiscountAppValue = info.FirstPurchaseDiscountAppValue

	if err := uc.CompanyRepo.UpdateCompany(company); err != nil {
		return nil, err
	}
	return company, nil
}
