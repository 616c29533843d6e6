package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/inventory-system/internal/api/handler"
	"github.com/sweetshop/inventory-system/internal/api/middleware"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
	"github.com/sweetshop/inventory-system/internal/core/service"
	mongodb "github.com/sweetshop/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// recorder is the async sink for stock movement audit records; it must be
// started by the caller.
func NewRouter(db *mongo.Database, rdb *redis.Client, recorder ports.MovementRecorder, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	itemRepo := mongodb.NewItemRepository(db)
	movementRepo := mongodb.NewMovementRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	ledger := service.NewStockService(itemRepo, dedup, recorder, log)
	catalog := service.NewCatalogService(itemRepo, movementRepo, ledger, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(catalog)
	stockHandler := handler.NewStockHandler(ledger)

	authMiddleware := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog + stock routes (authenticated) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/items", itemHandler.List)
	v1.GET("/items/search", itemHandler.Search)
	v1.GET("/items/:id", itemHandler.Get)
	v1.POST("/items/:id/purchase", stockHandler.Purchase)

	// --- Admin-only routes ---
	v1.POST("/items", itemHandler.Create, adminOnly)
	v1.PUT("/items/:id", itemHandler.Update, adminOnly)
	v1.DELETE("/items/:id", itemHandler.Delete, adminOnly)
	v1.POST("/items/:id/restock", stockHandler.Restock, adminOnly)
	v1.GET("/items/:id/movements", itemHandler.Movements, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
