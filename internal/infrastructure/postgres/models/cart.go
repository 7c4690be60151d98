package models

import "time"

type CartModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	UserID    *string `gorm:"type:uuid;index"`
	CompanyID *string `gorm:"type:uuid;index"`

	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartModel) TableName() string {
	return "carts"
}

type CartItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CartID    string `gorm:"type:uuid;index"`
	ProductID string `gorm:"type:uuid"`
	Quantity  int
	Price     float64

	Product    ProductModel            `gorm:"foreignKey:ProductID;references:ID"`
	Variations []ProductVariationModel `gorm:"many2many:cart_item_variations"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
