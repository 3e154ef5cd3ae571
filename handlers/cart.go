package handlers

import (
	"errors"
	"net/http"

	"ironhorse/services/cart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// cartToken reads the caller's cart token from the X-Cart-Token header,
// minting a fresh one when absent. The token is echoed back so the
// storefront can persist it client-side.
func cartToken(c *gin.Context) string {
	if t := c.GetHeader("X-Cart-Token"); t != "" {
		return t
	}
	return uuid.New().String()
}

// GetCartHandler returns the cart for the caller's token.
func (hb *HandlerBundle) GetCartHandler(c *gin.Context) {
	token := cartToken(c)
	crt, err := hb.Carts.Get(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	crt.Token = token
	c.JSON(http.StatusOK, gin.H{"cartToken": token, "cart": crt})
}

// AddCartItemHandler adds a product to the cart.
func (hb *HandlerBundle) AddCartItemHandler(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token := cartToken(c)
	crt, err := hb.Carts.AddItem(token, input.ProductID, input.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}
	crt.Token = token
	c.JSON(http.StatusOK, gin.H{"cartToken": token, "cart": crt})
}

// UpdateCartItemHandler sets a line's quantity; zero removes the line.
func (hb *HandlerBundle) UpdateCartItemHandler(c *gin.Context) {
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token := cartToken(c)
	crt, err := hb.Carts.UpdateItem(token, c.Param("productId"), *input.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}
	crt.Token = token
	c.JSON(http.StatusOK, gin.H{"cartToken": token, "cart": crt})
}

// RemoveCartItemHandler drops a product line from the cart.
func (hb *HandlerBundle) RemoveCartItemHandler(c *gin.Context) {
	token := cartToken(c)
	crt, err := hb.Carts.RemoveItem(token, c.Param("productId"))
	if err != nil {
		writeCartError(c, err)
		return
	}
	crt.Token = token
	c.JSON(http.StatusOK, gin.H{"cartToken": token, "cart": crt})
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
	case errors.Is(err, cart.ErrItemNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart operation failed"})
	}
}
