package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-be/internal/cache"
	"storefront-be/internal/config"
	"storefront-be/internal/controllers"
	"storefront-be/internal/database"
	"storefront-be/internal/jwt"
	"storefront-be/internal/middleware"
	"storefront-be/internal/repository"
	"storefront-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts)
	if err != nil {
		return err
	}

	// Run database migrations
	if err := database.RunMigrations(ctx, db); err != nil {
		db.Close()
		return err
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, continuing without cache", "err", err)
			cacheClient = nil
		} else {
			slog.Info("connected to redis cache")
		}
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	imageRepo := repository.NewImageRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.TokenTTL())

	// Initialize services
	authService := service.NewAuthService(customerRepo, jwtService)
	productService := service.NewProductService(productRepo, customerRepo, imageRepo, cacheClient, cfg.FeaturedCacheTTL)

	// Initialize controllers
	if err := controllers.RegisterValidators(); err != nil {
		db.Close()
		return err
	}
	authController := controllers.NewAuthController(authService)
	productController := controllers.NewProductController(productService, authService)
	qrcodeController := controllers.NewQRCodeController(productService, cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(ctx, "general", rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(ctx, "auth", rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authRateLimiter.LimitMiddleware(), authController.Signup)
			auth.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)
			auth.GET("/me", middleware.AuthMiddleware(jwtService), authController.Me)
		}

		// Public QR code for sharing a product page
		api.GET("/products/:id/qrcode", qrcodeController.GenerateQRCode)

		// Protected routes - require JWT authentication
		products := api.Group("/products")
		products.Use(middleware.AuthMiddleware(jwtService))
		{
			products.GET("", productController.GetAllProducts)
			products.GET("/featured", productController.GetFeaturedProducts)
			products.GET("/recently-viewed", productController.GetRecentlyViewedProducts)
			products.GET("/search", productController.SearchProducts)
			products.GET("/category/:category", productController.GetProductsByCategory)
			products.GET("/:id", productController.GetProductByID)
			products.POST("", productController.CreateProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.DELETE("/:id", productController.DeleteProduct)
			products.POST("/:id/view", productController.ViewProduct)
			products.GET("/:id/recommendations", productController.GetRecommendations)
			products.GET("/:id/images", productController.GetImages)
			products.POST("/:id/images", productController.AddImage)
			products.PUT("/:id/image", productController.ChangeImage)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = multierr.Append(err, srv.Shutdown(shutdownCtx))
	if cacheClient != nil {
		err = multierr.Append(err, cacheClient.Close())
	}
	err = multierr.Append(err, db.Close())
	return err
}
