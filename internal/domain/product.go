package domain

import "time"

type ProductStatus string

const (
	ProductActive     ProductStatus = "ativo"
	ProductOutOfStock ProductStatus = "em_falta"
	ProductHidden     ProductStatus = "oculto"
)

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductActive, ProductOutOfStock, ProductHidden:
		return true
	}
	return false
}

type Product struct {
	ID            string
	CompanyID     string
	CategoryID    string
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Status        ProductStatus
	Images        []ProductImage
	Variations    []ProductVariation
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductImage struct {
	ID        string
	ProductID string
	ImagePath string
}

type ProductVariation struct {
	ID        string
	ProductID string
	Type      string
	Value     string
}

type Category struct {
	ID        string
	CompanyID string
	Name      string
}

type ProductRepository interface {
	CreateProduct(product *Product) (string, error)
	UpdateProduct(product *Product) error
	DeleteProduct(productID string) error
	GetProductByID(productID string) (*Product, error)
	GetProductsByCompanyID(companyID string) ([]*Product, error)
	// ProductNameTaken reports whether another product of the same company
	// already uses the name. excludeID may be empty.
	ProductNameTaken(companyID, name, excludeID string) (bool, error)
	ReplaceVariations(productID string, variations []ProductVariation) error
	AddImage(productID, imagePath string) error
	RemoveImagesNotIn(productID string, keepPaths []string) ([]ProductImage, error)
}

type CategoryRepository interface {
	// FirstOrCreate returns the company's category with the given name,
	// creating it when absent.
	FirstOrCreate(companyID, name string) (*Category, error)
	GetCategoriesByCompanyID(companyID string) ([]*Category, error)
}
