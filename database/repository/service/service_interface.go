package serviceRepo

import "ironhorse/models"

// ServiceRepository defines methods for shop-service catalog access.
type ServiceRepository interface {
	// GetByID retrieves a service type by its unique ID.
	GetByID(id string) (*models.ServiceType, error)
	// GetAll retrieves all service types; activeOnly limits to bookable ones.
	GetAll(activeOnly bool) ([]models.ServiceType, error)
	// Create inserts a new service type.
	Create(service *models.ServiceType) error
	// Update modifies an existing service type.
	Update(service *models.ServiceType) error
	// Delete removes a service type by its ID.
	Delete(id string) error
}
