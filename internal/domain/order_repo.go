package domain

// OrderTx is one atomic unit of work over the order row and the product
// rows it references. Either Commit persists every write made through it
// or Rollback discards them all; locked product reads do not interleave
// with concurrent units touching the same rows.
type OrderTx interface {
	// LockOrderStatus reads the order's current status with a row-level
	// write lock held until Commit/Rollback. Status reads taken before
	// the unit opened may be stale under concurrent transitions.
	LockOrderStatus(orderID string) (OrderStatus, error)
	// LockProduct reads a product row with a row-level write lock held
	// until Commit/Rollback.
	LockProduct(productID string) (*Product, error)
	DecrementStock(productID string, quantity int) error
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
	Commit() error
	Rollback() error
}

type OrderRepository interface {
	CreateOrder(order *Order) (string, error)
	GetOrderByID(orderID string) (*Order, error)
	GetOrdersByUserID(userID string) ([]*Order, error)
	GetOrdersByStoreID(storeID string) ([]*Order, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
	BeginTx() (OrderTx, error)
}
