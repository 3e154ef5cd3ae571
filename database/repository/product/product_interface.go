package productRepo

import "ironhorse/models"

// ProductRepository defines methods for catalog product data access.
type ProductRepository interface {
	// GetByID retrieves a product by its unique ID.
	GetByID(id string) (*models.Product, error)
	// GetAll retrieves all products, optionally filtered by category.
	GetAll(category string, activeOnly bool) ([]models.Product, error)
	// Create inserts a new product record.
	Create(product *models.Product) error
	// Update modifies an existing product record.
	Update(product *models.Product) error
	// Delete removes a product record by its ID.
	Delete(id string) error
	// AdjustStock decrements stock for a purchased quantity; it fails
	// if fewer than qty units remain.
	AdjustStock(id string, qty int) error
}
