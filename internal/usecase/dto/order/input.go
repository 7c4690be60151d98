package orderdto

type CheckoutInput struct {
	UserID    string
	AddressID string
	Total     float64
	Items     []CheckoutItem
}

type CheckoutItem struct {
	ProductID string
	Quantity  int
}

type TransitionInput struct {
	OrderID       string
	NewStatus     string
	ActingStoreID string
}
