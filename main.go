package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hasselmann007-dev/pink-store-v2/catalog"
	"github.com/hasselmann007-dev/pink-store-v2/config"
	"github.com/hasselmann007-dev/pink-store-v2/controllers"
	"github.com/hasselmann007-dev/pink-store-v2/logger"
	"github.com/hasselmann007-dev/pink-store-v2/providers"
	"github.com/hasselmann007-dev/pink-store-v2/repository"
	"github.com/hasselmann007-dev/pink-store-v2/routes"
	"github.com/hasselmann007-dev/pink-store-v2/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Initialize(cfg.Environment)
	defer logger.Log.Sync()

	// Missing credentials only fail the checkout request, not the process,
	// so the webhook and status endpoints stay reachable.
	if cfg.HasGatewayCredentials() {
		logger.Log.Info("GhostsPay credentials loaded")
	} else {
		logger.Log.Warn("GHOSTS_SECRET_KEY or GHOSTS_COMPANY_ID not configured; checkout will fail")
	}

	// --- Payment status store ---
	var store repository.PaymentStore
	if cfg.StoreBackend == "redis" {
		redisClient := repository.NewRedisClient(cfg.RedisURL)
		defer redisClient.Close()
		store = repository.NewRedisPaymentStore(redisClient)
	} else {
		store = repository.NewMemoryPaymentStore()
	}
	logger.Log.Info("Payment store initialized", zap.String("backend", cfg.StoreBackend))

	// --- Dependency injection ---
	cat := catalog.New()
	provider := providers.NewGhostsPayProvider(
		cfg.GhostsBaseURL,
		cfg.GhostsSecretKey,
		cfg.GhostsCompanyID,
		cfg.GhostsPostbackURL,
	)
	checkoutService := services.NewCheckoutService(cat, provider, logger.Log)

	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	webhookCtrl := controllers.NewWebhookController(store, cfg.GhostsWebhookSecret, logger.Log)
	productCtrl := controllers.NewProductController(cat)

	// --- HTTP router ---
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(r, checkoutCtrl, webhookCtrl, productCtrl)

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Log.Info("Checkout backend started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Initiating graceful shutdown...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server shutdown error", zap.Error(err))
	}
	logger.Log.Info("Checkout backend stopped")
}
