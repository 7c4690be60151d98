package models

import "time"

type ProductModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	CompanyID     string `gorm:"type:uuid;uniqueIndex:idx_products_company_name"`
	CategoryID    string
	Name          string `gorm:"uniqueIndex:idx_products_company_name"`
	Description   string
	Price         float64
	StockQuantity int
	Status        string

	Images     []ProductImageModel     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variations []ProductVariationModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

type ProductImageModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ProductID string `gorm:"type:uuid;index"`
	ImagePath string
}

func (ProductImageModel) TableName() string {
	return "product_images"
}

type ProductVariationModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ProductID string `gorm:"type:uuid;index"`
	Type      string
	Value     string
}

func (ProductVariationModel) TableName() string {
	return "product_variations"
}

type CategoryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CompanyID string `gorm:"type:uuid;index"`
	Name      string
}

func (CategoryModel) TableName() string {
	return "categories"
}
