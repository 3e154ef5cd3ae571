package orderRepo

import "ironhorse/models"

// OrderRepository defines methods for checkout order data access.
type OrderRepository interface {
	// GetByID retrieves an order by its unique ID.
	GetByID(id string) (*models.Order, error)
	// GetByStripeSession retrieves an order by its Stripe session ID.
	GetByStripeSession(sessionID string) (*models.Order, error)
	// Create inserts a new order record.
	Create(order *models.Order) error
	// MarkPaid transitions an order to paid, recording the payer email.
	MarkPaid(id, customerEmail string) error
	// GetAll retrieves all orders, newest first.
	GetAll() ([]models.Order, error)
}
