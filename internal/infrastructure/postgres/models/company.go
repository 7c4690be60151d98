package models

import "time"

type CompanyModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	LegalName string
	FinalName string
	CNPJ      string `gorm:"column:cnpj;uniqueIndex"`
	Phone     string
	Email     string
	Category  string
	Status    string
	Logo      string
	Plan      string
	Active    bool

	Address      string
	CEP          string `gorm:"column:cep"`
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string

	DeliveryFee    float64
	DeliveryRadius float64
	// Nullable: postgres rejects ''::jsonb, so an unset value must be NULL.
	OpeningHours *string `gorm:"type:jsonb"`
	FreeShipping bool

	FirstPurchaseDiscountStore      bool
	FirstPurchaseDiscountStoreValue int
	FirstPurchaseDiscountApp        bool
	FirstPurchaseDiscountAppValue   int

	PixKey     string
	PixKeyType string

	Products []ProductModel `gorm:"foreignKey:CompanyID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanyModel) TableName() string {
	return "companies"
}
