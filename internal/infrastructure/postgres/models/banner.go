package models

import "time"

type BannerModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Title     string
	ImagePath string
	LinkURL   string
	Active    bool `gorm:"index"`

	CreatedAt time.Time
}

func (BannerModel) TableName() string {
	return "banners"
}
