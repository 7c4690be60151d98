package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mercadim/marketplace-service/internal/delivery/http/dto"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/usecase"
)

type BannerHandler struct {
	BannerUsecase usecase.BannerUsecase
}

func NewBannerHandler(bannerUsecase usecase.BannerUsecase) *BannerHandler {
	return &BannerHandler{BannerUsecase: bannerUsecase}
}

func (h *BannerHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if request.ImagePath == "" {
		writeBadRequest(w, "image_path is required")
		return
	}

	bannerID, err := h.BannerUsecase.CreateBanner(&domain.Banner{
		Title:     request.Title,
		ImagePath: request.ImagePath,
		LinkURL:   request.LinkURL,
		Active:    request.Active,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": bannerID})
}

func (h *BannerHandler) GetActiveBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.BannerUsecase.GetActiveBanners()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewBannerListResponse(banners))
}
