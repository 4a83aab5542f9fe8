package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/hasselmann007-dev/pink-store-v2/controllers"
	"github.com/hasselmann007-dev/pink-store-v2/middleware"
)

// Register wires all API routes onto the router.
func Register(
	r *gin.Engine,
	checkoutCtrl *controllers.CheckoutController,
	webhookCtrl *controllers.WebhookController,
	productCtrl *controllers.ProductController,
) {
	// Non-POST on POST-only routes must answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "Method not allowed"})
	})

	api := r.Group("/api")
	{
		api.POST("/checkout",
			middleware.RateLimit(rate.Every(time.Minute/30), 10),
			checkoutCtrl.Checkout,
		)

		// Gateway callback, no auth by contract
		api.POST("/ghostspay/webhook", webhookCtrl.HandleWebhook)
		api.GET("/payment-status/:id", webhookCtrl.GetPaymentStatus)

		api.GET("/products", productCtrl.ListProducts)
		api.GET("/products/:id", productCtrl.GetProduct)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Backend de pagamentos online"})
		})
	}
}
