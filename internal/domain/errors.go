package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingPixKey    = errors.New("store has no pix key configured")
	ErrInvalidAmount    = errors.New("invalid payment amount")
	ErrForbidden        = errors.New("access denied")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrTransitionFailed = errors.New("order transition failed")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartMixedStores  = errors.New("cart has items from more than one store")
	ErrCartNotFound     = errors.New("cart not found")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrNameTaken        = errors.New("product name already in use")
)

// InsufficientStockError aborts a stock-commit transition; ProductName
// identifies the first line item that exceeded available stock.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %q does not have enough stock", e.ProductName)
}
