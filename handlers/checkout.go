package handlers

import (
	"errors"
	"io"
	"net/http"

	"ironhorse/services/checkout"

	"github.com/gin-gonic/gin"
)

// CreateCheckoutSessionHandler starts payment for the caller's cart and
// returns the Stripe-hosted payment page URL.
func (hb *HandlerBundle) CreateCheckoutSessionHandler(c *gin.Context) {
	token := c.GetHeader("X-Cart-Token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Cart-Token header is required"})
		return
	}

	order, url, err := hb.Checkout.CreateSession(token)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": order.ID, "checkoutUrl": url})
}

// ListOrdersHandler returns all orders, newest first (owner only).
func (hb *HandlerBundle) ListOrdersHandler(c *gin.Context) {
	orders, err := hb.OrderRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// StripeWebhookHandler receives Stripe events. The raw body must be
// passed to signature verification untouched.
func (hb *HandlerBundle) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<16))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	if err := hb.Checkout.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		if errors.Is(err, checkout.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
		// Non-2xx makes Stripe retry, which is what we want for
		// transient store failures.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
