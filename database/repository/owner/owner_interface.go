package ownerRepo

import "ironhorse/models"

// OwnerRepository defines methods for store-owner account access.
type OwnerRepository interface {
	// Get retrieves the owner account, or nil if none has been seeded.
	Get() (*models.Owner, error)
	// GetByEmail retrieves the owner account by email.
	GetByEmail(email string) (*models.Owner, error)
	// Create inserts the owner account.
	Create(owner *models.Owner) error
	// Update modifies the owner account.
	Update(owner *models.Owner) error
}
