package dto

import "github.com/mercadim/marketplace-service/internal/domain"

type ProductRequest struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Price          float64            `json:"price"`
	StockQuantity  int                `json:"stock_quantity"`
	Status         string             `json:"status"`
	Category       string             `json:"category"`
	Variations     []VariationRequest `json:"variations"`
	ImagePaths     []string           `json:"image_paths"`
	ExistingImages []string           `json:"existing_images"`
}

type VariationRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type ProductResponse struct {
	ID            string              `json:"id"`
	CompanyID     string              `json:"company_id"`
	CategoryID    string              `json:"category_id,omitempty"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         float64             `json:"price"`
	StockQuantity int                 `json:"stock_quantity"`
	Status        string              `json:"status"`
	Images        []string            `json:"images"`
	Variations    []VariationResponse `json:"variations"`
}

type VariationResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	response := ProductResponse{
		ID:            product.ID,
		CompanyID:     product.CompanyID,
		CategoryID:    product.CategoryID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Status:        string(product.Status),
		Images:        make([]string, 0, len(product.Images)),
		Variations:    make([]VariationResponse, 0, len(product.Variations)),
	}
	for _, img := range product.Images {
		response.Images = append(response.Images, img.ImagePath)
	}
	for _, v := range product.Variations {
		response.Variations = append(response.Variations, VariationResponse{
			ID:    v.ID,
			Type:  v.Type,
			Value: v.Value,
		})
	}
	return response
}

func NewProductListResponse(products []*domain.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, NewProductResponse(product))
	}
	return responses
}

func NewCategoryListResponse(categories []*domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return responses
}
