package repository

import (
	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBannerRepository struct {
	DB *gorm.DB
}

func NewDefaultBannerRepository(db *gorm.DB) *DefaultBannerRepository {
	return &DefaultBannerRepository{DB: db}
}

func (r *DefaultBannerRepository) CreateBanner(banner *domain.Banner) (string, error) {
	bannerModel := models.BannerModel{
		ID:        uuid.New().String(),
		Title:     banner.Title,
		ImagePath: banner.ImagePath,
		LinkURL:   banner.LinkURL,
		Active:    banner.Active,
	}

	if err := r.DB.Create(&bannerModel).Error; err != nil {
		return "", err
	}

	banner.ID = bannerModel.ID
	return banner.ID, nil
}

func (r *DefaultBannerRepository) GetActiveBanners() ([]*domain.Banner, error) {
	var bannerModels []models.BannerModel
	err := r.DB.Where("active = ?", true).Order("created_at DESC").Find(&bannerModels).Error
	if err != nil {
		return nil, err
	}

	banners := make([]*domain.Banner, 0, len(bannerModels))
	for _, m := range bannerModels {
		banners = append(banners, &domain.Banner{
			ID:        m.ID,
			Title:     m.Title,
			ImagePath: m.ImagePath,
			LinkURL:   m.LinkURL,
			Active:    m.Active,
			CreatedAt: m.CreatedAt,
		})
	}
	return banners, nil
}
