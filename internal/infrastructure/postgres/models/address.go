package models

import "time"

// AddressModel mirrors the rows owned by the profile service; the
// marketplace reads them for ownership checks at checkout.
type AddressModel struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID string `gorm:"type:uuid;index"`
	Line   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}
