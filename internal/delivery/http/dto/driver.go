package dto

import "github.com/mercadim/marketplace-service/internal/domain"

type DriverRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
	Plate   string `json:"plate"`
	Status  string `json:"status"`
}

type DriverResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
	Plate   string `json:"plate"`
	Status  string `json:"status"`
}

func NewDriverResponse(driver *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:      driver.ID,
		Name:    driver.Name,
		Phone:   driver.Phone,
		Vehicle: driver.Vehicle,
		Plate:   driver.Plate,
		Status:  string(driver.Status),
	}
}

func NewDriverListResponse(drivers []*domain.Driver) []DriverResponse {
	responses := make([]DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		responses = append(responses, NewDriverResponse(driver))
	}
	return responses
}
