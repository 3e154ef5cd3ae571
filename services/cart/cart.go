package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	productRepo "ironhorse/database/repository/product"
	"ironhorse/models"

	"github.com/go-redis/redis/v8"
)

// cartTTL is the sliding expiry on abandoned carts.
const cartTTL = 7 * 24 * time.Hour

var (
	// ErrProductNotFound means the product does not exist or is not for sale.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity means a non-positive quantity was requested.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrItemNotInCart means the cart holds no line for that product.
	ErrItemNotInCart = errors.New("item not in cart")
)

// CartService manages anonymous shopping carts.
type CartService interface {
	Get(token string) (*models.Cart, error)
	AddItem(token, productID string, quantity int) (*models.Cart, error)
	UpdateItem(token, productID string, quantity int) (*models.Cart, error)
	RemoveItem(token, productID string) (*models.Cart, error)
	Clear(token string) error
}

// DefaultCartService keeps carts in Redis under their token with a
// sliding TTL, the way booking sessions were cached before them.
type DefaultCartService struct {
	Cache    *redis.Client
	Products productRepo.ProductRepository
}

func cartKey(token string) string {
	return "cart:" + token
}

// Get loads the cart for a token; an unknown token yields an empty cart.
func (s *DefaultCartService) Get(token string) (*models.Cart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, cartKey(token)).Result()
	if err == redis.Nil {
		return &models.Cart{Token: token, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}
	return &c, nil
}

// AddItem adds quantity of a product, merging with an existing line.
func (s *DefaultCartService) AddItem(token, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.Products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil || !product.Active {
		return nil, ErrProductNotFound
	}

	c, err := s.Get(token)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.Items[i].UnitPrice = product.Price
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, models.CartItem{
			ProductID: productID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}

	return c, s.save(c)
}

// UpdateItem sets the quantity of an existing line; zero removes it.
func (s *DefaultCartService) UpdateItem(token, productID string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(token, productID)
	}

	c, err := s.Get(token)
	if err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return c, s.save(c)
		}
	}
	return nil, ErrItemNotInCart
}

// RemoveItem drops a product line from the cart.
func (s *DefaultCartService) RemoveItem(token, productID string) (*models.Cart, error) {
	c, err := s.Get(token)
	if err != nil {
		return nil, err
	}

	kept := c.Items[:0]
	found := false
	for _, it := range c.Items {
		if it.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return nil, ErrItemNotInCart
	}
	c.Items = kept

	return c, s.save(c)
}

// Clear deletes the cart outright.
func (s *DefaultCartService) Clear(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, cartKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *DefaultCartService) save(c *models.Cart) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Cache.Set(ctx, cartKey(c.Token), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
