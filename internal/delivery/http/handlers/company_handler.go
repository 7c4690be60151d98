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

type CompanyHandler struct {
	CompanyUsecase usecase.CompanyUsecase
}

func NewCompanyHandler(companyUsecase usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{CompanyUsecase: companyUsecase}
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if request.LegalName == "" || request.CNPJ == "" {
		writeBadRequest(w, "legal_name and cnpj are required")
		return
	}

	company := &domain.Company{
		LegalName: request.LegalName,
		FinalName: request.FinalName,
		CNPJ:      request.CNPJ,
		Phone:     request.Phone,
		Email:     request.Email,
		Category:  request.Category,
		Plan:      request.Plan,
	}
	companyID, err := h.CompanyUsecase.CreateCompany(company)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": companyID})
}

// AddInfo completes store onboarding with address, delivery and pix
// fields for the authenticated company.
func (h *CompanyHandler) AddInfo(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.CompanyInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	company, err := h.CompanyUsecase.AddInfo(companyID, &usecase.CompanyInfoInput{
		Phone:          request.Phone,
		Street:         request.Street,
		Number:         request.Number,
		Neighborhood:   request.Neighborhood,
		City:           request.City,
		State:          request.State,
		CEP:            request.CEP,
		DeliveryFee:    request.DeliveryFee,
		DeliveryRadius: request.DeliveryRadius,
		OpeningHours:   request.OpeningHours,
		FreeShipping:   request.FreeShipping,
		PixKey:         request.PixKey,
		PixKeyType:     request.PixKeyType,

		FirstPurchaseDiscountStore:      request.FirstPurchaseDiscountStore,
		FirstPurchaseDiscountStoreValue: request.FirstPurchaseDiscountStoreValue,
		FirstPurchaseDiscountApp:        request.FirstPurchaseDiscountApp,
		FirstPurchaseDiscountAppValue:   request.FirstPurchaseDiscountAppValue,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCompanyResponse(company))
}

func (h *CompanyHandler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	company, err := h.CompanyUsecase.GetCompanyByID(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCompanyResponse(company))
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	company, err := h.CompanyUsecase.GetCompanyByID(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	company.LegalName = request.LegalName
	company.FinalName = request.FinalName
	company.Phone = request.Phone
	company.Email = request.Email
	company.Category = request.Category
	company.Plan = request.Plan

	if err := h.CompanyUsecase.UpdateCompany(companyID, company); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCompanyResponse(company))
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.CompanyUsecase.GetCompanyByID(chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCompanyResponse(company))
}

func (h *CompanyHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("with_products") == "true" {
		companies, err := h.CompanyUsecase.GetCompaniesWithProducts()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.NewCompanyListResponse(companies))
		return
	}

	companies, err := h.CompanyUsecase.GetCompanies()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCompanyListResponse(companies))
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}
	if companyID != chi.URLParam(r, "companyID") {
		writeError(w, domain.ErrForbidden)
		return
	}

	if err := h.CompanyUsecase.DeleteCompany(companyID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
