package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mercadim/marketplace-service/internal/delivery/http/dto"
	"github.com/mercadim/marketplace-service/internal/delivery/http/middleware"
	"github.com/mercadim/marketplace-service/internal/usecase"
)

type CartHandler struct {
	CartUsecase     usecase.CartUsecase
	DeliveryUsecase usecase.DeliveryUsecase
}

func NewCartHandler(cartUsecase usecase.CartUsecase, deliveryUsecase usecase.DeliveryUsecase) *CartHandler {
	return &CartHandler{
		CartUsecase:     cartUsecase,
		DeliveryUsecase: deliveryUsecase,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	companyID := middleware.CompanyID(r.Context())
	if userID == "" && companyID == "" {
		writeUnauthorized(w)
		return
	}

	cart, err := h.CartUsecase.GetCart(userID, companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	if cart == nil {
		writeJSON(w, http.StatusOK, dto.CartResponse{Items: []dto.CartItemResponse{}})
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) AddProducts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	companyID := middleware.CompanyID(r.Context())
	if userID == "" && companyID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.AddCartItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if len(request.Products) == 0 {
		writeBadRequest(w, "products is required")
		return
	}

	products := make([]usecase.AddCartProduct, 0, len(request.Products))
	for _, p := range request.Products {
		if p.Quantity <= 0 {
			writeBadRequest(w, "quantity must be positive")
			return
		}
		products = append(products, usecase.AddCartProduct{
			ProductID:    p.ProductID,
			Quantity:     p.Quantity,
			VariationIDs: p.VariationIDs,
		})
	}

	cart, err := h.CartUsecase.AddProducts(userID, companyID, products)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	companyID := middleware.CompanyID(r.Context())
	if userID == "" && companyID == "" {
		writeUnauthorized(w)
		return
	}

	err := h.CartUsecase.RemoveItem(userID, companyID, chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	if err := h.CartUsecase.IncrementItem(chi.URLParam(r, "itemID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	if err := h.CartUsecase.DecrementItem(chi.URLParam(r, "itemID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CartHandler) CalculateDeliveryFee(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.DeliveryFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if request.Address == "" {
		writeBadRequest(w, "address is required")
		return
	}

	quote, err := h.DeliveryUsecase.CalculateFee(userID, request.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeliveryFeeResponse{
		Fee:        quote.Fee,
		DistanceKm: quote.DistanceKm,
	})
}
