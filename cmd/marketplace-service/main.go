package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/mercadim/marketplace-service/internal/config"
	"github.com/mercadim/marketplace-service/internal/delivery/http/handlers"
	"github.com/mercadim/marketplace-service/internal/infrastructure/cep"
	"github.com/mercadim/marketplace-service/internal/infrastructure/geo"
	publisher "github.com/mercadim/marketplace-service/internal/infrastructure/kafka"
	"github.com/mercadim/marketplace-service/internal/infrastructure/metrics"
	"github.com/mercadim/marketplace-service/internal/infrastructure/migrate"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/repository"
	"github.com/mercadim/marketplace-service/internal/usecase"
	"github.com/mercadim/marketplace-service/internal/usecase/order"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	logger := mustInitLogger(cfg)
	slog.SetDefault(logger)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.MarketplaceDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MarketplaceDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
		logger.Info("migrations applied")
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewDefaultKafkaPublisher(brokers)
	defer kafkaPublisher.Close()
	orderEvents := publisher.NewOrderEventPublisher(kafkaPublisher, cfg.KafkaService.Topic)

	orderMetrics := metrics.NewOrderMetrics()

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	companyRepo := repository.NewDefaultCompanyRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	categoryRepo := repository.NewDefaultCategoryRepository(db)
	cartRepo := repository.NewDefaultCartRepository(db)
	addressRepo := repository.NewDefaultAddressRepository(db)
	driverRepo := repository.NewDefaultDriverRepository(db)
	bannerRepo := repository.NewDefaultBannerRepository(db)

	// Init external clients
	distanceClient := geo.NewGoogleDistanceClient(cfg.Maps.APIKey, cfg.Maps.BaseURL)
	cepClient := cep.NewViaCEPClient(cfg.ViaCEP.BaseURL)

	// Init usecases
	orderUsecase := order.NewDefaultOrderUsecase(orderRepo, cartRepo, addressRepo, companyRepo, orderEvents, orderMetrics)
	companyUsecase := usecase.NewDefaultCompanyUsecase(companyRepo)
	productUsecase := usecase.NewDefaultProductUsecase(productRepo, categoryRepo)
	cartUsecase := usecase.NewDefaultCartUsecase(cartRepo, productRepo)
	deliveryUsecase := usecase.NewDefaultDeliveryUsecase(cartRepo, companyRepo, distanceClient)
	driverUsecase := usecase.NewDefaultDriverUsecase(driverRepo)
	bannerUsecase := usecase.NewDefaultBannerUsecase(bannerRepo)

	router := handlers.NewRouter(handlers.RouterDeps{
		Order:   handlers.NewOrderHandler(orderUsecase),
		Cart:    handlers.NewCartHandler(cartUsecase, deliveryUsecase),
		Company: handlers.NewCompanyHandler(companyUsecase),
		Product: handlers.NewProductHandler(productUsecase),
		Driver:  handlers.NewDriverHandler(driverUsecase),
		Banner:  handlers.NewBannerHandler(bannerUsecase),
		CEP:     handlers.NewCEPHandler(cepClient),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	logger.Info("marketplace service listening", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func mustInitLogger(cfg *config.MarketplaceConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogConfig.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogConfig.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
