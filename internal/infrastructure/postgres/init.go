package postgres

import (
	"log"

	"github.com/mercadim/marketplace-service/internal/config"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.MarketplaceDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.CompanyModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ProductImageModel{},
		&models.ProductVariationModel{},
		&models.AddressModel{},
		&models.CartModel{},
		&models.CartItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.DriverModel{},
		&models.BannerModel{},
	)

	return db
}
