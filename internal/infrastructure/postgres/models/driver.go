package models

import "time"

type DriverModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	UserID    *string `gorm:"type:uuid"`
	CompanyID string  `gorm:"type:uuid;index"`
	Name      string
	Phone     string
	Vehicle   string
	Plate     string
	Status    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DriverModel) TableName() string {
	return "drivers"
}
