package dto

import "github.com/mercadim/marketplace-service/internal/domain"

type CreateCompanyRequest struct {
	LegalName string `json:"legal_name"`
	FinalName string `json:"final_name"`
	CNPJ      string `json:"cnpj"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Category  string `json:"category"`
	Plan      string `json:"plan"`
}

type CompanyInfoRequest struct {
	Phone          string  `json:"phone"`
	Street         string  `json:"street"`
	Number         string  `json:"number"`
	Neighborhood   string  `json:"neighborhood"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	CEP            string  `json:"cep"`
	DeliveryFee    float64 `json:"delivery_fee"`
	DeliveryRadius float64 `json:"delivery_radius"`
	OpeningHours   string  `json:"opening_hours"`
	FreeShipping   bool    `json:"free_shipping"`
	PixKey         string  `json:"pix_key"`
	PixKeyType     string  `json:"pix_key_type"`

	FirstPurchaseDiscountStore      bool `json:"first_purchase_discount_store"`
	FirstPurchaseDiscountStoreValue int  `json:"first_purchase_discount_store_value"`
	FirstPurchaseDiscountApp        bool `json:"first_purchase_discount_app"`
	FirstPurchaseDiscountAppValue   int  `json:"first_purchase_discount_app_value"`
}

type CompanyResponse struct {
	ID             string            `json:"id"`
	LegalName      string            `json:"legal_name"`
	FinalName      string            `json:"final_name"`
	CNPJ           string            `json:"cnpj"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Category       string            `json:"category"`
	Status         string            `json:"status"`
	Logo           string            `json:"logo,omitempty"`
	Plan           string            `json:"plan,omitempty"`
	Active         bool              `json:"active"`
	Address        string            `json:"address,omitempty"`
	CEP            string            `json:"cep,omitempty"`
	Street         string            `json:"street,omitempty"`
	Number         string            `json:"number,omitempty"`
	Neighborhood   string            `json:"neighborhood,omitempty"`
	City           string            `json:"city,omitempty"`
	State          string            `json:"state,omitempty"`
	DeliveryFee    float64           `json:"delivery_fee"`
	DeliveryRadius float64           `json:"delivery_radius"`
	OpeningHours   string            `json:"opening_hours,omitempty"`
	FreeShipping   bool              `json:"free_shipping"`
	PixKey         string            `json:"pix_key,omitempty"`
	PixKeyType     string            `json:"pix_key_type,omitempty"`
	Products       []ProductResponse `json:"products,omitempty"`
}

func NewCompanyResponse(company *domain.Company) CompanyResponse {
	response := CompanyResponse{
		ID:             company.ID,
		LegalName:      company.LegalName,
		FinalName:      company.FinalName,
		CNPJ:           company.CNPJ,
		Phone:          company.Phone,
		Email:          company.Email,
		Category:       company.Category,
		Status:         company.Status,
		Logo:           company.Logo,
		Plan:           company.Plan,
		Active:         company.Active,
		Address:        company.Address,
		CEP:            company.CEP,
		Street:         company.Street,
		Number:         company.Number,
		Neighborhood:   company.Neighborhood,
		City:           company.City,
		State:          company.State,
		DeliveryFee:    company.DeliveryFee,
		DeliveryRadius: company.DeliveryRadius,
		OpeningHours:   company.OpeningHours,
		FreeShipping:   company.FreeShipping,
		PixKey:         company.PixKey,
		PixKeyType:     company.PixKeyType,
	}
	for _, product := range company.Products {
		response.Products = append(response.Products, NewProductResponse(&product))
	}
	return response
}

func NewCompanyListResponse(companies []*domain.Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, NewCompanyResponse(company))
	}
	return responses
}
