package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mercadim/marketplace-service/internal/delivery/http/dto"
	"github.com/mercadim/marketplace-service/internal/delivery/http/middleware"
	"github.com/mercadim/marketplace-service/internal/domain"
	orderdto "github.com/mercadim/marketplace-service/internal/usecase/dto/order"
	"github.com/mercadim/marketplace-service/internal/usecase/order"
)

type OrderHandler struct {
	OrderUsecase order.Usecase
}

func NewOrderHandler(orderUsecase order.Usecase) *OrderHandler {
	return &OrderHandler{OrderUsecase: orderUsecase}
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if request.AddressID == "" {
		writeBadRequest(w, "address_id is required")
		return
	}

	input := &orderdto.CheckoutInput{
		UserID:    userID,
		AddressID: request.AddressID,
		Total:     request.Total,
	}
	for _, item := range request.Items {
		input.Items = append(input.Items, orderdto.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	createdOrder, err := h.OrderUsecase.Checkout(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewOrderResponse(createdOrder))
}

func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeUnauthorized(w)
		return
	}

	orders, err := h.OrderUsecase.GetOrdersByUserID(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewOrderListResponse(orders))
}

func (h *OrderHandler) GetStoreOrders(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	orders, err := h.OrderUsecase.GetOrdersByStoreID(companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewOrderListResponse(orders))
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	foundOrder, err := h.OrderUsecase.GetOrderByID(orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	userID := middleware.UserID(r.Context())
	companyID := middleware.CompanyID(r.Context())
	if foundOrder.UserID != userID && foundOrder.StoreID != companyID {
		writeError(w, domain.ErrForbidden)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewOrderResponse(foundOrder))
}

// UpdateStoreOrderStatus runs the fulfillment transition on behalf of the
// store; moving into processing atomically commits the order's stock.
func (h *OrderHandler) UpdateStoreOrderStatus(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	if companyID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updatedOrder, err := h.OrderUsecase.Transition(r.Context(), &orderdto.TransitionInput{
		OrderID:       chi.URLParam(r, "orderID"),
		NewStatus:     request.Status,
		ActingStoreID: companyID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewOrderResponse(updatedOrder))
}

func (h *OrderHandler) UpdateClientOrderStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeUnauthorized(w)
		return
	}

	var request dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	orderID := chi.URLParam(r, "orderID")
	foundOrder, err := h.OrderUsecase.GetOrderByID(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if foundOrder.UserID != userID {
		writeError(w, domain.ErrForbidden)
		return
	}

	err = h.OrderUsecase.UpdateClientOrderStatus(r.Context(), orderID, domain.OrderStatus(request.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": request.Status})
}

func (h *OrderHandler) GeneratePixCode(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		writeUnauthorized(w)
		return
	}

	generated, err := h.OrderUsecase.GeneratePixCode(r.Context(), chi.URLParam(r, "orderID"), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPixCodeResponse(generated))
}
