package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ironhorse/config"
	"ironhorse/cron"
	"ironhorse/database"
	bookingRepoPkg "ironhorse/database/repository/booking"
	orderRepoPkg "ironhorse/database/repository/order"
	ownerRepoPkg "ironhorse/database/repository/owner"
	productRepoPkg "ironhorse/database/repository/product"
	serviceRepoPkg "ironhorse/database/repository/service"
	settingsRepoPkg "ironhorse/database/repository/settings"
	"ironhorse/handlers"
	"ironhorse/routes"
	"ironhorse/services/booking"
	"ironhorse/services/cart"
	"ironhorse/services/catalog"
	"ironhorse/services/checkout"
	"ironhorse/services/media"
	"ironhorse/services/notification"
	"ironhorse/services/owner"
	"ironhorse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCartCache()
	utils.InitAuthCache()

	stripe.Key = config.AppConfig.StripeKey

	mediaService, err := media.NewCloudinaryMediaService()
	if err != nil {
		// Product photo uploads degrade gracefully; everything else runs.
		logger.Sugar().Warnf("main: media service disabled: %v", err)
		mediaService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	productRepo := productRepoPkg.NewMongoProductRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	ownerRepo := ownerRepoPkg.NewMongoOwnerRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Client: cron.NewQueueClient(),
	}
	catalogService := &catalog.DefaultCatalogService{
		Products: productRepo,
		Services: serviceRepo,
	}
	cartService := &cart.DefaultCartService{
		Cache:    utils.GetCartCacheClient(),
		Products: productRepo,
	}
	checkoutService := &checkout.DefaultCheckoutService{
		Carts:    cartService,
		Orders:   orderRepo,
		Products: productRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		ServiceRepo:  serviceRepo,
		Settings:     settingsRepo,
		Notification: notificationService,
	}
	ownerService := &owner.DefaultOwnerService{
		Repo: ownerRepo,
	}

	if err := ownerService.EnsureSeeded(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed owner account: %v", err)
	}

	cron.InitNotificationWorker()

	handlerBundle := &handlers.HandlerBundle{
		OrderRepo:    orderRepo,
		OwnerRepo:    ownerRepo,
		SettingsRepo: settingsRepo,
		Catalog:      catalogService,
		Carts:        cartService,
		Checkout:     checkoutService,
		Bookings:     bookingService,
		Owner:        ownerService,
		Media:        mediaService,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
