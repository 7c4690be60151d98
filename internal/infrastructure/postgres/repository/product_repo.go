package repository

import (
	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) (string, error) {
	productModel := models.ProductModel{
		ID:            uuid.New().String(),
		CompanyID:     product.CompanyID,
		CategoryID:    product.CategoryID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Status:        string(product.Status),
	}

	if err := r.DB.Create(&productModel).Error; err != nil {
		return "", err
	}

	product.ID = productModel.ID
	return product.ID, nil
}

func (r *DefaultProductRepository) UpdateProduct(product *domain.Product) error {
	return r.DB.Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"category_id":    product.CategoryID,
			"name":           product.Name,
			"description":    product.Description,
			"price":          product.Price,
			"stock_quantity": product.StockQuantity,
			"status":         string(product.Status),
		}).Error
}

func (r *DefaultProductRepository) DeleteProduct(productID string) error {
	return r.DB.Delete(&models.ProductModel{}, "id = ?", productID).Error
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	err := r.DB.
		Preload("Images").
		Preload("Variations").
		First(&productModel, "id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return productToDomain(&productModel), nil
}

func (r *DefaultProductRepository) GetProductsByCompanyID(companyID string) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	err := r.DB.
		Preload("Images").
		Preload("Variations").
		Where("company_id = ?", companyID).
		Order("name").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToDomain(&productModels[i]))
	}
	return products, nil
}

func (r *DefaultProductRepository) ProductNameTaken(companyID, name, excludeID string) (bool, error) {
	query := r.DB.Model(&models.ProductModel{}).
		Where("company_id = ? AND name = ?", companyID, name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultProductRepository) ReplaceVariations(productID string, variations []domain.ProductVariation) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductVariationModel{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		for _, v := range variations {
			variationModel := models.ProductVariationModel{
				ID:        uuid.New().String(),
				ProductID: productID,
				Type:      v.Type,
				Value:     v.Value,
			}
			if err := tx.Create(&variationModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultProductRepository) AddImage(productID, imagePath string) error {
	imageModel := models.ProductImageModel{
		ID:        uuid.New().String(),
		ProductID: productID,
		ImagePath: imagePath,
	}
	return r.DB.Create(&imageModel).Error
}

func (r *DefaultProductRepository) RemoveImagesNotIn(productID string, keepPaths []string) ([]domain.ProductImage, error) {
	query := r.DB.Where("product_id = ?", productID)
	if len(keepPaths) > 0 {
		query = query.Where("image_path NOT IN ?", keepPaths)
	}

	var imageModels []models.ProductImageModel
	if err := query.Find(&imageModels).Error; err != nil {
		return nil, err
	}
	if len(imageModels) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(imageModels))
	removed := make([]domain.ProductImage, 0, len(imageModels))
	for _, m := range imageModels {
		ids = append(ids, m.ID)
		removed = append(removed, domain.ProductImage{ID: m.ID, ProductID: m.ProductID, ImagePath: m.ImagePath})
	}

	if err := r.DB.Delete(&models.ProductImageModel{}, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return removed, nil
}

func productToDomain(m *models.ProductModel) *domain.Product {
	product := &domain.Product{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		Status:        domain.ProductStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for _, img := range m.Images {
		product.Images = append(product.Images, domain.ProductImage{
			ID:        img.ID,
			ProductID: img.ProductID,
			ImagePath: img.ImagePath,
		})
	}
	for _, v := range m.Variations {
		product.Variations = append(product.Variations, domain.ProductVariation{
			ID:        v.ID,
			ProductID: v.ProductID,
			Type:      v.Type,
			Value:     v.Value,
		})
	}
	return product
}
