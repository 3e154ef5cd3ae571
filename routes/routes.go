package routes

import (
	"net/http"
	"time"

	"ironhorse/handlers"
	"ironhorse/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public storefront catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/products", hb.ListProductsHandler)
		api.GET("/products/:id", hb.GetProductHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/hours", hb.GetOperatingHoursHandler)
	}
}

// RegisterCartRoutes registers anonymous cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCartHandler)
		api.POST("/items", hb.AddCartItemHandler)
		api.PUT("/items/:productId", hb.UpdateCartItemHandler)
		api.DELETE("/items/:productId", hb.RemoveCartItemHandler)
	}
}

// RegisterCheckoutRoutes registers payment endpoints. The webhook stays
// outside the rate limiter so Stripe retries are never throttled.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/checkout/session", middleware.RateLimitMiddleware(), hb.CreateCheckoutSessionHandler)
	r.POST("/api/stripe/webhook", hb.StripeWebhookHandler)
}

// RegisterBookingRoutes registers the appointment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/dates", hb.GetBookableDatesHandler)
		api.GET("/slots", hb.GetAvailableSlotsHandler)
		api.POST("", middleware.RateLimitMiddleware(), hb.CreateBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterAdminRoutes registers the owner-only surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", middleware.RateLimitMiddleware(), hb.OwnerLoginHandler)

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthOwnerMiddleware(hb.OwnerRepo))
		admin.POST("/logout", hb.OwnerLogoutHandler)
		admin.PUT("/password", hb.OwnerChangePasswordHandler)

		admin.POST("/products", hb.CreateProductHandler)
		admin.PUT("/products/:id", hb.UpdateProductHandler)
		admin.DELETE("/products/:id", hb.DeleteProductHandler)
		admin.POST("/products/:id/image", hb.UploadProductImageHandler)

		admin.POST("/services", hb.CreateServiceHandler)
		admin.PUT("/services/:id", hb.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.DeleteServiceHandler)

		admin.GET("/orders", hb.ListOrdersHandler)

		admin.GET("/bookings", hb.ListBookingsByDateHandler)
		admin.PUT("/bookings/:id/status", hb.UpdateBookingStatusHandler)

		admin.PUT("/hours", hb.SetOperatingHoursHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Iron Horse Motorcycles"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Cart-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
