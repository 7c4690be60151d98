package usecase

import (
	"github.com/mercadim/marketplace-service/internal/domain"
)

type ProductUsecase interface {
	CreateProduct(input *ProductInput) (*domain.Product, error)
	UpdateProduct(productID string, input *ProductInput) (*domain.Product, error)
	DeleteProduct(productID string) error
	GetProductsByCompanyID(companyID string) ([]*domain.Product, error)
	GetCategories(companyID string) ([]*domain.Category, error)
}

type ProductInput struct {
	CompanyID      string
	Name           string
	Description    string
	Price          float64
	StockQuantity  int
	Status         string
	Category       string
	Variations     []domain.ProductVariation
	ImagePaths     []string
	ExistingImages []string
}

type DefaultProductUsecase struct {
	ProductRepo  domain.ProductRepository
	CategoryRepo domain.CategoryRepository
}

func NewDefaultProductUsecase(productRepo domain.ProductRepository, categoryRepo domain.CategoryRepository) *DefaultProductUsecase {
	return &DefaultProductUsecase{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
	}
}

func (uc *DefaultProductUsecase) CreateProduct(input *ProductInput) (*domain.Product, error) {
	if !domain.ProductStatus(input.Status).IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	taken, err := uc.ProductRepo.ProductNameTaken(input.CompanyID, input.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrNameTaken
	}

	categoryID, err := uc.resolveCategory(input.CompanyID, input.Category)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		CompanyID:     input.CompanyID,
		CategoryID:    categoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Status:        domain.ProductStatus(input.Status),
	}

	productID, err := uc.ProductRepo.CreateProduct(product)
	if err != nil {
		return nil, err
	}
	product.ID = productID

	if len(input.Variations) > 0 {
		if err := uc.ProductRepo.ReplaceVariations(productID, input.Variations); err != nil {
			return nil, err
		}
	}
	for _, path := range input.ImagePaths {
		if err := uc.ProductRepo.AddImage(productID, path); err != nil {
			return nil, err
		}
	}

	return uc.ProductRepo.GetProductByID(productID)
}

func (uc *DefaultProductUsecase) UpdateProduct(productID string, input *ProductInput) (*domain.Product, error) {
	if !domain.ProductStatus(input.Status).IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	product, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product.CompanyID != input.CompanyID {
		return nil, domain.ErrForbidden
	}

	taken, err := uc.ProductRepo.ProductNameTaken(input.CompanyID, input.Name, productID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrNameTaken
	}

	categoryID := product.CategoryID
	if input.Category != "" {
		categoryID, err = uc.resolveCategory(input.CompanyID, input.Category)
		if err != nil {
			return nil, err
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.Status = domain.ProductStatus(input.Status)
	product.CategoryID = categoryID

	if err := uc.ProductRepo.UpdateProduct(product); err != nil {
		return nil, err
	}

	if len(input.Variations) > 0 {
		if err := uc.ProductRepo.ReplaceVariations(productID, input.Variations); err != nil {
			return nil, err
		}
	}

	if _, err := uc.ProductRepo.RemoveImagesNotIn(productID, input.ExistingImages); err != nil {
		return nil, err
	}
	for _, path := range input.ImagePaths {
		if err := uc.ProductRepo.AddImage(productID, path); err != nil {
			return nil, err
		}
	}

	return uc.ProductRepo.GetProductByID(productID)
}

func (uc *DefaultProductUsecase) DeleteProduct(productID string) error {
	return uc.ProductRepo.DeleteProduct(productID)
}

func (uc *DefaultProductUsecase) GetProductsByCompanyID(companyID string) ([]*domain.Product, error) {
	return uc.ProductRepo.GetProductsByCompanyID(companyID)
}

func (uc *DefaultProductUsecase) GetCategories(companyID string) ([]*domain.Category, error) {
	return uc.CategoryRepo.GetCategoriesByCompanyID(companyID)
}

func (uc *DefaultProductUsecase) resolveCategory(companyID, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	category, err := uc.CategoryRepo.FirstOrCreate(companyID, name)
	if err != nil {
		return "", err
	}
	return category.ID, nil
}
