package main

import (
	"net/http"

	cartapp "github.com/urbannest/furniture-store/application/cart"
	catalogapp "github.com/urbannest/furniture-store/application/catalog"
	orderapp "github.com/urbannest/furniture-store/application/order"
	productapp "github.com/urbannest/furniture-store/application/product"
	uploadapp "github.com/urbannest/furniture-store/application/upload"
	"github.com/urbannest/furniture-store/cmd/config"
	redisclient "github.com/urbannest/furniture-store/cmd/redis"
	_ "github.com/urbannest/furniture-store/docs"
	cartRepo "github.com/urbannest/furniture-store/repository/cart"
	orderRepo "github.com/urbannest/furniture-store/repository/order"
	productRepo "github.com/urbannest/furniture-store/repository/product"
	"github.com/urbannest/furniture-store/thirdparty/cloudinary"
	"github.com/urbannest/furniture-store/thirdparty/rabbitmq"
	"github.com/urbannest/furniture-store/transport"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

// @title UrbanNest Furniture Store API
// @version 1.0
// @description Storefront backend: catalog, carts, custom orders, uploads
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to the key-value store
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(redisclient.Get())
	OrderRepo := orderRepo.NewOrderRepository(redisclient.Get())
	CartRepo := cartRepo.NewCartRepository(redisclient.Get(), cfg.Session.TTL)

	// Image service client
	images := cloudinary.NewClient(cfg.Cloudinary)

	// Order event publisher; the storefront keeps working without it
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("order events disabled, rabbitmq unreachable", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(cfg, ProductRepo)
	CartApp := cartapp.NewCartApp(ProductRepo, CartRepo)
	OrderApp := orderapp.NewOrderApp(cfg, OrderRepo, images, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo)
	UploadApp := uploadapp.NewUploadApp(cfg, images)

	httpTransport := transport.NewTransport(cfg, CatalogApp, CartApp, OrderApp, ProductApp, UploadApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
