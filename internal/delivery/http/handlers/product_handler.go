package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mercadim/marketplace-service/internal/delivery/http/dto"
	"github.com/mercadim/marketplace-service/internal/delivery/http/middleware"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/usecase"
)

type ProductHandler struct {
	ProductUsecase usecase.ProductUsecase
}

func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{ProductUsecase: productUsecase}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	request, err := decodeProductRequest(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	product, err := h.ProductUsecase.CreateProduct(productInput(companyID, request))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewProductResponse(product))
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	request, err := decodeProductRequest(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	product, err := h.ProductUsecase.UpdateProduct(chi.URLParam(r, "productID"), productInput(companyID, request))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	if err := h.ProductUsecase.DeleteProduct(chi.URLParam(r, "productID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ProductHandler) GetMyProducts(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	products, err := h.ProductUsecase.GetProductsByCompanyID(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewProductListResponse(products))
}

func (h *ProductHandler) GetCompanyProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductUsecase.GetProductsByCompanyID(chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewProductListResponse(products))
}

func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	categories, err := h.ProductUsecase.GetCategories(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCategoryListResponse(categories))
}

func decodeProductRequest(r *http.Request) (*dto.ProductRequest, error) {
	var request dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, errInvalidBody
	}
	if request.Name == "" {
		return nil, errMissingName
	}
	return &request, nil
}

func productInput(companyID string, request *dto.ProductRequest) *usecase.ProductInput {
	input := &usecase.ProductInput{
		CompanyID:      companyID,
		Name:           request.Name,
		Description:    request.Description,
		Price:          request.Price,
		StockQuantity:  request.StockQuantity,
		Status:         request.Status,
		Category:       request.Category,
		ImagePaths:     request.ImagePaths,
		ExistingImages: request.ExistingImages,
	}
	for _, v := range request.Variations {
		input.Variations = append(input.Variations, domain.ProductVariation{
			Type:  v.Type,
			Value: v.Value,
		})
	}
	return input
}
