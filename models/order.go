package models

import "time"

// Order statuses track the Stripe checkout lifecycle.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order records a checkout. Payment itself lives in Stripe; the order
// holds our side of the session.
type Order struct {
	ID              string      `bson:"id" json:"id"`
	CartToken       string      `bson:"cartToken" json:"cartToken"`
	Items           []OrderItem `bson:"items" json:"items"`
	Total           float64     `bson:"total" json:"total"`
	Currency        string      `bson:"currency" json:"currency"`
	StripeSessionID string      `bson:"stripeSessionId" json:"stripeSessionId"`
	CustomerEmail   string      `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	Status          string      `bson:"status" json:"status"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}
