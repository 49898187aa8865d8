package main

import (
	"net/http"

	authapp "github.com/hendrawans/marketplace/application/auth"
	browseapp "github.com/hendrawans/marketplace/application/browse"
	cartapp "github.com/hendrawans/marketplace/application/cart"
	imageapp "github.com/hendrawans/marketplace/application/image"
	orderapp "github.com/hendrawans/marketplace/application/order"
	paymentapp "github.com/hendrawans/marketplace/application/payment"
	productapp "github.com/hendrawans/marketplace/application/product"
	userapp "github.com/hendrawans/marketplace/application/user"
	"github.com/hendrawans/marketplace/cmd/config"
	mongoclient "github.com/hendrawans/marketplace/cmd/mongo"
	redisclient "github.com/hendrawans/marketplace/cmd/redis"
	_ "github.com/hendrawans/marketplace/docs"
	cartRepo "github.com/hendrawans/marketplace/repository/cart"
	imageRepo "github.com/hendrawans/marketplace/repository/image"
	orderRepo "github.com/hendrawans/marketplace/repository/order"
	otpRepo "github.com/hendrawans/marketplace/repository/otp"
	paymentRepo "github.com/hendrawans/marketplace/repository/payment"
	productRepo "github.com/hendrawans/marketplace/repository/product"
	redisRepo "github.com/hendrawans/marketplace/repository/redis"
	userRepo "github.com/hendrawans/marketplace/repository/user"
	"github.com/hendrawans/marketplace/thirdparty/mailer"
	"github.com/hendrawans/marketplace/thirdparty/rabbitmq"
	"github.com/hendrawans/marketplace/transport"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Geo marketplace API documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to MongoDB
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	db := mongoclient.DB()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	OTPRepo := otpRepo.NewOTPRepository(db)
	RedisRepo := redisRepo.NewRepository()

	ImageRepo, err := imageRepo.NewImageRepository(db)
	if err != nil {
		logger.Fatal("err init gridfs bucket", zap.Error(err))
	}

	// Order events are best-effort; the server runs without a broker.
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, order events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize application layers
	rh := &transport.RestHandler{
		UserApp:    userapp.NewUserApp(UserRepo),
		AuthApp:    authapp.NewAuthApp(cfg, UserRepo, OTPRepo, RedisRepo, mailer.NewSMTP(cfg)),
		ProductApp: productapp.NewProductApp(ProductRepo),
		BrowseApp:  browseapp.NewBrowseApp(UserRepo, ProductRepo),
		CartApp:    cartapp.NewCartApp(CartRepo),
		OrderApp:   orderapp.NewOrderApp(UserRepo, ProductRepo, CartRepo, OrderRepo, publisher),
		PaymentApp: paymentapp.NewPaymentApp(PaymentRepo),
		ImageApp:   imageapp.NewImageApp(ImageRepo),
	}

	httpTransport := transport.NewTransport(cfg, rh)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
