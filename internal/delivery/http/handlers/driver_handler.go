package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mercadim/marketplace-service/internal/delivery/http/dto"
	"github.com/mercadim/marketplace-service/internal/delivery/http/middleware"
	"github.com/mercadim/marketplace-service/internal/usecase"
)

type DriverHandler struct {
	DriverUsecase usecase.DriverUsecase
}

func NewDriverHandler(driverUsecase usecase.DriverUsecase) *DriverHandler {
	return &DriverHandler{DriverUsecase: driverUsecase}
}

func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if request.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	driver, err := h.DriverUsecase.CreateDriver(companyID, &usecase.DriverInput{
		Name:    request.Name,
		Phone:   request.Phone,
		Vehicle: request.Vehicle,
		Plate:   request.Plate,
		Status:  request.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewDriverResponse(driver))
}

func (h *DriverHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	driver, err := h.DriverUsecase.UpdateDriver(companyID, chi.URLParam(r, "driverID"), &usecase.DriverInput{
		Name:    request.Name,
		Phone:   request.Phone,
		Vehicle: request.Vehicle,
		Plate:   request.Plate,
		Status:  request.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewDriverResponse(driver))
}

func (h *DriverHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	drivers, err := h.DriverUsecase.GetDriversByCompanyID(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewDriverListResponse(drivers))
}
