package models

import (
	"time"

	"github.com/mercadim/marketplace-service/internal/domain"
)

type OrderModel struct {
	ID        string             `gorm:"primaryKey;type:uuid"`
	UserID    string             `gorm:"type:uuid;index:idx_orders_user"`
	StoreID   string             `gorm:"type:uuid;index:idx_orders_store"`
	DriverID  *string            `gorm:"type:uuid"`
	Status    domain.OrderStatus `gorm:"index:idx_orders_status"`
	Code      string
	Total     float64
	AddressID string `gorm:"type:uuid"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Store CompanyModel     `gorm:"foreignKey:StoreID;references:ID"`

	CreatedAt time.Time `gorm:"index:idx_orders_created_at"`
	UpdatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;index"`
	ProductID string `gorm:"type:uuid;index"`
	Quantity  int
	// Price snapshots the product price at order time.
	Price float64

	Product ProductModel `gorm:"foreignKey:ProductID;references:ID"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
