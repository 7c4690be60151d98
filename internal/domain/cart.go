package domain

import "time"

type Cart struct {
	ID        string
	UserID    string
	CompanyID string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID         string
	CartID     string
	ProductID  string
	Quantity   int
	Price      float64
	Product    *Product
	Variations []ProductVariation
}

// Total is the running cart total, Σ quantity*price over the items.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

type CartRepository interface {
	// GetCartByOwner returns the open cart of a client (userID) or a store
	// (companyID); exactly one of the two is non-empty. Nil when absent.
	GetCartByOwner(userID, companyID string) (*Cart, error)
	CreateCart(cart *Cart) (string, error)
	DeleteCart(cartID string) error
	// FindItem matches an existing item by product and exact variation set.
	FindItem(cartID, productID string, variationIDs []string) (*CartItem, error)
	AddItem(item *CartItem) (string, error)
	UpdateItemQuantity(itemID string, quantity int) error
	RemoveItem(itemID string) error
	GetItemByID(itemID string) (*CartItem, error)
	CountItems(cartID string) (int64, error)
}
