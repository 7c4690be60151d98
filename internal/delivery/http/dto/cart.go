package dto

import "github.com/mercadim/marketplace-service/internal/domain"

type AddCartItemsRequest struct {
	Products []CartProductRequest `json:"products"`
}

type CartProductRequest struct {
	ProductID    string   `json:"product_id"`
	Quantity     int      `json:"quantity"`
	VariationIDs []string `json:"variation_ids"`
}

type CartResponse struct {
	ID    string             `json:"id"`
	Total float64            `json:"total"`
	Items []CartItemResponse `json:"items"`
}

type CartItemResponse struct {
	ID          string              `json:"id"`
	ProductID   string              `json:"product_id"`
	ProductName string              `json:"product_name,omitempty"`
	Quantity    int                 `json:"quantity"`
	Price       float64             `json:"price"`
	Variations  []VariationResponse `json:"variations"`
}

type DeliveryFeeRequest struct {
	Address string `json:"address"`
}

type DeliveryFeeResponse struct {
	Fee        float64 `json:"fee"`
	DistanceKm float64 `json:"distance_km"`
}

func NewCartResponse(cart *domain.Cart) CartResponse {
	response := CartResponse{
		ID:    cart.ID,
		Total: cart.Total(),
		Items: make([]CartItemResponse, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		itemResponse := CartItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Variations: make([]VariationResponse, 0, len(item.Variations)),
		}
		if item.Product != nil {
			itemResponse.ProductName = item.Product.Name
		}
		for _, v := range item.Variations {
			itemResponse.Variations = append(itemResponse.Variations, VariationResponse{
				ID:    v.ID,
				Type:  v.Type,
				Value: v.Value,
			})
		}
		response.Items = append(response.Items, itemResponse)
	}
	return response
}
