package repository

import (
	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCompanyRepository struct {
	DB *gorm.DB
}

func NewDefaultCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{DB: db}
}

func (r *DefaultCompanyRepository) CreateCompany(company *domain.Company) (string, error) {
	companyModel := companyToModel(company)
	companyModel.ID = uuid.New().String()

	if err := r.DB.Create(companyModel).Error; err != nil {
		return "", err
	}

	company.ID = companyModel.ID
	return company.ID, nil
}

func (r *DefaultCompanyRepository) UpdateCompany(company *domain.Company) error {
	companyModel := companyToModel(company)
	return r.DB.Model(&models.CompanyModel{ID: company.ID}).Updates(companyModel).Error
}

func (r *DefaultCompanyRepository) DeleteCompany(companyID string) error {
	return r.DB.Delete(&models.CompanyModel{}, "id = ?", companyID).Error
}

func (r *DefaultCompanyRepository) GetCompanyByID(companyID string) (*domain.Company, error) {
	var companyModel models.CompanyModel
	if err := r.DB.First(&companyModel, "id = ?", companyID).Error; err != nil {
		return nil, err
	}
	return companyToDomain(&companyModel), nil
}

func (r *DefaultCompanyRepository) GetCompanies() ([]*domain.Company, error) {
	var companyModels []models.CompanyModel
	if err := r.DB.Order("final_name").Find(&companyModels).Error; err != nil {
		return nil, err
	}
	return companiesToDomain(companyModels), nil
}

func (r *DefaultCompanyRepository) GetCompaniesWithProducts() ([]*domain.Company, error) {
	var companyModels []models.CompanyModel
	err := r.DB.
		Preload("Products", "status = ?", string(domain.ProductActive)).
		Where("active = ?", true).
		Order("final_name").
		Find(&companyModels).Error
	if err != nil {
		return nil, err
	}
	return companiesToDomain(companyModels), nil
}

func companiesToDomain(companyModels []models.CompanyModel) []*domain.Company {
	companies := make([]*domain.Company, 0, len(companyModels))
	for i := range companyModels {
		companies = append(companies, companyToDomain(&companyModels[i]))
	}
	return companies
}

func companyToModel(c *domain.Company) *models.CompanyModel {
	model := &models.CompanyModel{
		ID:        c.ID,
		LegalName: c.LegalName,
		FinalName: c.FinalName,
		CNPJ:      c.CNPJ,
		Phone:     c.Phone,
		Email:     c.Email,
		Category:  c.Category,
		Status:    c.Status,
		Logo:      c.Logo,
		Plan:      c.Plan,
		Active:    c.Active,

		Address:      c.Address,
		CEP:          c.CEP,
		Street:       c.Street,
		Number:       c.Number,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,

		DeliveryFee:    c.DeliveryFee,
		DeliveryRadius: c.DeliveryRadius,
		FreeShipping:   c.FreeShipping,

		FirstPurchaseDiscountStore:      c.FirstPurchaseDiscountStore,
		FirstPurchaseDiscountStoreValue: c.FirstPurchaseDiscountStoreValue,
		FirstPurchaseDiscountApp:        c.FirstPurchaseDiscountApp,
		FirstPurchaseDiscountAppValue:   c.FirstPurchaseDiscountAppValue,

		PixKey:     c.PixKey,
		PixKeyType: c.PixKeyType,
	}
	if c.OpeningHours != "" {
		model.OpeningHours = &c.OpeningHours
	}
	return model
}

func companyToDomain(m *models.CompanyModel) *domain.Company {
	company := &domain.Company{
		ID:        m.ID,
		LegalName: m.LegalName,
		FinalName: m.FinalName,
		CNPJ:      m.CNPJ,
		Phone:     m.Phone,
		Email:     m.Email,
		Category:  m.Category,
		Status:    m.Status,
		Logo:      m.Logo,
		Plan:      m.Plan,
		Active:    m.Active,

		Address:      m.Address,
		CEP:          m.CEP,
		Street:       m.Street,
		Number:       m.Number,
		Neighborhood: m.Neighborhood,
		City:         m.City,
		State:        m.State,

		DeliveryFee:    m.DeliveryFee,
		DeliveryRadius: m.DeliveryRadius,
		FreeShipping:   m.FreeShipping,

		FirstPurchaseDiscountStore:      m.FirstPurchaseDiscountStore,
		FirstPurchaseDiscountStoreValue: m.FirstPurchaseDiscountStoreValue,
		FirstPurchaseDiscountApp:        m.FirstPurchaseDiscountApp,
		FirstPurchaseDiscountAppValue:   m.FirstPurchaseDiscountAppValue,

		PixKey:     m.PixKey,
		PixKeyType: m.PixKeyType,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.OpeningHours != nil {
		company.OpeningHours = *m.OpeningHours
	}
	for i := range m.Products {
		company.Products = append(company.Products, *productToDomain(&m.Products[i]))
	}
	return company
}
