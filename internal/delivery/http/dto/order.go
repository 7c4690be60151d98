package dto

import (
	"time"

	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/pix"
)

type CheckoutRequest struct {
	AddressID string                `json:"address_id"`
	Total     float64               `json:"total"`
	Items     []CheckoutItemRequest `json:"items"`
}

type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type PixCodeResponse struct {
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expires_at"`
}

func NewPixCodeResponse(generated pix.GeneratedCode) PixCodeResponse {
	return PixCodeResponse{
		Code:      generated.Payload,
		ExpiresAt: generated.ExpiresAt,
	}
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Code      string              `json:"code"`
	UserID    string              `json:"user_id"`
	StoreID   string              `json:"store_id"`
	StoreName string              `json:"store_name,omitempty"`
	DriverID  string              `json:"driver_id,omitempty"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	AddressID string              `json:"address_id"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	response := OrderResponse{
		ID:        order.ID,
		Code:      order.Code,
		UserID:    order.UserID,
		StoreID:   order.StoreID,
		DriverID:  order.DriverID,
		Status:    string(order.Status),
		Total:     order.Total,
		AddressID: order.AddressID,
		Items:     make([]OrderItemResponse, 0, len(order.Items)),
		CreatedAt: order.CreatedAt,
	}
	if order.Store != nil {
		response.StoreName = order.Store.FinalName
	}
	for _, item := range order.Items {
		itemResponse := OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			itemResponse.ProductName = item.Product.Name
		}
		response.Items = append(response.Items, itemResponse)
	}
	return response
}

func NewOrderListResponse(orders []*domain.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, NewOrderResponse(order))
	}
	return responses
}
