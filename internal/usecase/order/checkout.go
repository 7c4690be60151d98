package order

import (
	"context"
	"fmt"
	"log"

	"github.com/jaevor/go-nanoid"
	"github.com/mercadim/marketplace-service/internal/domain"
	orderdto "github.com/mercadim/marketplace-service/internal/usecase/dto/order"
)

const orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Checkout turns the client's open cart into an order. Stock is verified
// but not decremented here; inventory is only committed when the store
// accepts the order through Transition.
func (uc *DefaultOrderUsecase) Checkout(ctx context.Context, input *orderdto.CheckoutInput) (*domain.Order, error) {
	address, err := uc.AddressRepo.GetUserAddress(input.UserID, input.AddressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.ErrInvalidAddress
	}

	cart, err := uc.CartRepo.GetCartByOwner(input.UserID, "")
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	// The client may have adjusted quantities on the review screen.
	for _, requested := range input.Items {
		for i := range cart.Items {
			if cart.Items[i].ProductID == requested.ProductID {
				cart.Items[i].Quantity = requested.Quantity
				if err := uc.CartRepo.UpdateItemQuantity(cart.Items[i].ID, requested.Quantity); err != nil {
					return nil, err
				}
			}
		}
	}

	// An order fulfills under exactly one store. A cart spanning stores
	// must be split client-side into one checkout per store.
	storeID := ""
	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, fmt.Errorf("cart item %s has no product loaded", item.ID)
		}
		if storeID == "" {
			storeID = item.Product.CompanyID
		} else if item.Product.CompanyID != storeID {
			return nil, domain.ErrCartMixedStores
		}
		if item.Product.StockQuantity < item.Quantity {
			return nil, &domain.InsufficientStockError{ProductName: item.Product.Name}
		}
	}

	codeGenerator, err := nanoid.CustomASCII(orderCodeAlphabet, 6)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:    input.UserID,
		StoreID:   storeID,
		Status:    domain.StatusPending,
		Code:      codeGenerator(),
		Total:     input.Total,
		AddressID: address.ID,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	orderID, err := uc.OrderRepo.CreateOrder(order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	if err := uc.CartRepo.DeleteCart(cart.ID); err != nil {
		// The order exists; a stale cart is recoverable.
		log.Printf("failed to delete cart %s after checkout: %v", cart.ID, err)
	}

	uc.Metrics.RecordOrderCreated(order.StoreID, order.Total)
	uc.publishStatusEvent(order)

	return order, nil
}
