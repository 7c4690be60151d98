package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	DB *gorm.DB
}

func NewDefaultCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{DB: db}
}

func (r *DefaultCategoryRepository) FirstOrCreate(companyID, name string) (*domain.Category, error) {
	var categoryModel models.CategoryModel
	err := r.DB.First(&categoryModel, "company_id = ? AND name = ?", companyID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		categoryModel = models.CategoryModel{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Name:      name,
		}
		err = r.DB.Create(&categoryModel).Error
	}
	if err != nil {
		return nil, err
	}

	return &domain.Category{
		ID:        categoryModel.ID,
		CompanyID: categoryModel.CompanyID,
		Name:      categoryModel.Name,
	}, nil
}

func (r *DefaultCategoryRepository) GetCategoriesByCompanyID(companyID string) ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	err := r.DB.Where("company_id = ?", companyID).Order("name").Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, &domain.Category{
			ID:        m.ID,
			CompanyID: m.CompanyID,
			Name:      m.Name,
		})
	}
	return categories, nil
}
