package domain

import "time"

type Banner struct {
	ID        string
	Title     string
	ImagePath string
	LinkURL   string
	Active    bool
	CreatedAt time.Time
}

type BannerRepository interface {
	CreateBanner(banner *Banner) (string, error)
	GetActiveBanners() ([]*Banner, error)
}
