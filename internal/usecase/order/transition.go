package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mercadim/marketplace-service/internal/domain"
	publisher "github.com/mercadim/marketplace-service/internal/infrastructure/kafka"
	orderdto "github.com/mercadim/marketplace-service/internal/usecase/dto/order"
)

// Transition applies a store-side order status change. The stock-commit
// edge ({awaiting_confirmation,pending_payment} -> processing) verifies
// and decrements every line item's product stock inside the same
// transaction as the status write; any other target status is a plain
// status write. On failure nothing is persisted.
func (uc *DefaultOrderUsecase) Transition(ctx context.Context, input *orderdto.TransitionInput) (*domain.Order, error) {
	start := time.Now()

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.StoreID != input.ActingStoreID {
		return nil, domain.ErrForbidden
	}

	newStatus := domain.OrderStatus(input.NewStatus)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	tx, err := uc.OrderRepo.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransitionFailed, err)
	}

	var committed bool
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				slog.Error("failed to rollback transition", "order_id", order.ID, "error", rollbackErr)
			}
		}
	}()

	// The pre-tx read above only gates ownership; the stock-commit
	// decision uses the row-locked status so two concurrent requests
	// for the same order cannot both observe the commit origin.
	currentStatus, err := tx.LockOrderStatus(order.ID)
	if err != nil {
		uc.Metrics.RecordTransitionFailure(order.StoreID)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransitionFailed, err)
	}

	if isStockCommit(currentStatus, newStatus) {
		if err := commitStock(tx, order); err != nil {
			var stockErr *domain.InsufficientStockError
			if errors.As(err, &stockErr) {
				uc.Metrics.RecordInsufficientStock(order.StoreID)
				return nil, err
			}
			uc.Metrics.RecordTransitionFailure(order.StoreID)
			return nil, fmt.Errorf("%w: %v", domain.ErrTransitionFailed, err)
		}
	}

	if err := tx.UpdateOrderStatus(order.ID, newStatus); err != nil {
		uc.Metrics.RecordTransitionFailure(order.StoreID)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransitionFailed, err)
	}

	if err := tx.Commit(); err != nil {
		uc.Metrics.RecordTransitionFailure(order.StoreID)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransitionFailed, err)
	}
	committed = true

	order.Status = newStatus
	uc.Metrics.RecordTransition(order.StoreID, string(newStatus), time.Since(start))
	uc.publishStatusEvent(order)

	return order, nil
}

// isStockCommit reports whether the edge decrements inventory. Stock is
// committed at most once: a later pass through processing from any other
// origin state is a plain status write.
func isStockCommit(current, next domain.OrderStatus) bool {
	if next != domain.StatusProcessing {
		return false
	}
	return current == domain.StatusAwaitingConfirmation || current == domain.StatusPendingPayment
}

// commitStock walks the line items, locking each product row, verifying
// stock and decrementing. Runs inside the uncommitted unit, so a shortage
// on any item rolls back every decrement made before it.
func commitStock(tx domain.OrderTx, order *domain.Order) error {
	for _, item := range order.Items {
		product, err := tx.LockProduct(item.ProductID)
		if err != nil {
			return err
		}

		if product.StockQuantity < item.Quantity {
			return &domain.InsufficientStockError{ProductName: product.Name}
		}

		if err := tx.DecrementStock(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// UpdateClientOrderStatus is the client-side status write. It carries no
// stock side effect and no ownership gate beyond the upstream gateway.
func (uc *DefaultOrderUsecase) UpdateClientOrderStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) error {
	if !newStatus.IsValid() {
		return domain.ErrInvalidStatus
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, newStatus); err != nil {
		return err
	}

	order.Status = newStatus
	uc.publishStatusEvent(order)
	return nil
}

func (uc *DefaultOrderUsecase) publishStatusEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish OrderEvent", "order_id", event.OrderID, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID: order.ID,
		StoreID: order.StoreID,
		UserID:  order.UserID,
		Code:    order.Code,
		Status:  string(order.Status),
		Total:   order.Total,
	})
}
