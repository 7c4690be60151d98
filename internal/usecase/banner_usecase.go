package usecase

import "github.com/mercadim/marketplace-service/internal/domain"

type BannerUsecase interface {
	CreateBanner(banner *domain.Banner) (string, error)
	GetActiveBanners() ([]*domain.Banner, error)
}

type DefaultBannerUsecase struct {
	BannerRepo domain.BannerRepository
}

func NewDefaultBannerUsecase(bannerRepo domain.BannerRepository) *DefaultBannerUsecase {
	return &DefaultBannerUsecase{BannerRepo: bannerRepo}
}

func (uc *DefaultBannerUsecase) CreateBanner(banner *domain.Banner) (string, error) {
	return uc.BannerRepo.CreateBanner(banner)
}

func (uc *DefaultBannerUsecase) GetActiveBanners() ([]*domain.Banner, error) {
	return uc.BannerRepo.GetActiveBanners()
}
