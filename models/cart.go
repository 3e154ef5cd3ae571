package models

import "time"

// CartItem is one product line in a cart.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Cart is an anonymous shopping cart, kept in Redis under its token
// with a sliding TTL.
type Cart struct {
	Token     string     `json:"token"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Total returns the cart's current total price.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
