package dto

import "github.com/mercadim/marketplace-service/internal/domain"

type CreateBannerRequest struct {
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
	LinkURL   string `json:"link_url"`
	Active    bool   `json:"active"`
}

type BannerResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
	LinkURL   string `json:"link_url"`
}

func NewBannerListResponse(banners []*domain.Banner) []BannerResponse {
	responses := make([]BannerResponse, 0, len(banners))
	for _, banner := range banners {
		responses = append(responses, BannerResponse{
			ID:        banner.ID,
			Title:     banner.Title,
			ImagePath: banner.ImagePath,
			LinkURL:   banner.LinkURL,
		})
	}
	return responses
}
