package catalog

import (
	"errors"
	"fmt"

	productRepo "ironhorse/database/repository/product"
	serviceRepo "ironhorse/database/repository/service"
	"ironhorse/models"

	"github.com/google/uuid"
)

// ErrNotFound means the catalog holds no such product or service.
var ErrNotFound = errors.New("catalog item not found")

// CatalogService exposes the product catalog and the bookable service
// list. Reads are public; writes are owner-only (enforced at the
// route layer).
type CatalogService interface {
	ListProducts(category string, includeInactive bool) ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id string) error

	ListServices(includeInactive bool) ([]models.ServiceType, error)
	GetService(id string) (*models.ServiceType, error)
	CreateService(s *models.ServiceType) error
	UpdateService(s *models.ServiceType) error
	DeleteService(id string) error
}

// DefaultCatalogService implements CatalogService over the Mongo repos.
type DefaultCatalogService struct {
	Products productRepo.ProductRepository
	Services serviceRepo.ServiceRepository
}

// ListProducts returns catalog products, storefront view by default.
func (s *DefaultCatalogService) ListProducts(category string, includeInactive bool) ([]models.Product, error) {
	return s.Products.GetAll(category, !includeInactive)
}

// GetProduct fetches one product.
func (s *DefaultCatalogService) GetProduct(id string) (*models.Product, error) {
	p, err := s.Products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// CreateProduct inserts a new product, assigning its ID.
func (s *DefaultCatalogService) CreateProduct(p *models.Product) error {
	if p.Name == "" || p.Price < 0 {
		return fmt.Errorf("invalid product: name required, price must be non-negative")
	}
	p.ID = uuid.New().String()
	return s.Products.Create(p)
}

// UpdateProduct modifies an existing product.
func (s *DefaultCatalogService) UpdateProduct(p *models.Product) error {
	existing, err := s.Products.GetByID(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	return s.Products.Update(p)
}

// DeleteProduct removes a product.
func (s *DefaultCatalogService) DeleteProduct(id string) error {
	return s.Products.Delete(id)
}

// ListServices returns the bookable services, storefront view by default.
func (s *DefaultCatalogService) ListServices(includeInactive bool) ([]models.ServiceType, error) {
	return s.Services.GetAll(!includeInactive)
}

// GetService fetches one service type.
func (s *DefaultCatalogService) GetService(id string) (*models.ServiceType, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

// CreateService inserts a new service type, assigning its ID.
func (s *DefaultCatalogService) CreateService(svc *models.ServiceType) error {
	if svc.Name == "" || svc.DurationMinutes <= 0 {
		return fmt.Errorf("invalid service: name required, duration must be positive")
	}
	svc.ID = uuid.New().String()
	return s.Services.Create(svc)
}

// UpdateService modifies an existing service type.
func (s *DefaultCatalogService) UpdateService(svc *models.ServiceType) error {
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("invalid service: duration must be positive")
	}
	existing, err := s.Services.GetByID(svc.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	svc.CreatedAt = existing.CreatedAt
	return s.Services.Update(svc)
}

// DeleteService removes a service type.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Services.Delete(id)
}
