package domain

import "time"

type OrderStatus string

const (
	StatusPendingPayment       OrderStatus = "pending_payment"
	StatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	StatusPending              OrderStatus = "pending"
	StatusProcessing           OrderStatus = "processing"
	StatusReadyForPickup       OrderStatus = "ready_for_pickup"
	StatusCompleted            OrderStatus = "completed"
	StatusCanceled             OrderStatus = "canceled"
)

// IsValid reports whether s is one of the recognized order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusAwaitingConfirmation, StatusPending,
		StatusProcessing, StatusReadyForPickup, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID        string
	UserID    string
	StoreID   string
	DriverID  string
	Status    OrderStatus
	Code      string
	Total     float64
	AddressID string
	Items     []OrderItem
	Store     *Company
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a snapshot of a product at order time: Price never follows
// later product price changes.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     float64
	Product   *Product
}
