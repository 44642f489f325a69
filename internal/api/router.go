package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zoomarket/cashbox-system/internal/api/handler"
	"github.com/zoomarket/cashbox-system/internal/api/middleware"
	"github.com/zoomarket/cashbox-system/internal/core/domain"
	"github.com/zoomarket/cashbox-system/internal/core/service"
	"github.com/zoomarket/cashbox-system/internal/infrastructure/config"
	mongodb "github.com/zoomarket/cashbox-system/internal/infrastructure/db/mongo"
	redisdb "github.com/zoomarket/cashbox-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Repositories and services are constructed once here and passed by reference
// into the handlers.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("cashbox"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	// PlaintextVerifier keeps parity with the legacy credential store; swap in
	// service.BcryptVerifier{} once the records are migrated.
	authService := service.NewAuthService(userRepo, service.PlaintextVerifier{}, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, productCache, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	auth := middleware.Auth(cfg.JWTSecret)
	anyRole := middleware.RequireRoles(domain.AllRoles...)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes, each with its declarative role allow-list ---
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/verify", authHandler.Verify, auth, anyRole)
	e.GET("/api/products", productHandler.List, auth, anyRole)
	e.POST("/api/products", productHandler.Create, auth, middleware.RequireRoles(domain.RoleAdmin))
	e.POST("/api/orders", orderHandler.Create, auth, middleware.RequireRoles(domain.RoleCashier))

	// --- Static frontend ---
	e.Static("/app", "web")

	return e
}
