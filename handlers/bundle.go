package handlers

import (
	orderRepoPkg "ironhorse/database/repository/order"
	ownerRepoPkg "ironhorse/database/repository/owner"
	settingsRepoPkg "ironhorse/database/repository/settings"
	"ironhorse/services/booking"
	"ironhorse/services/cart"
	"ironhorse/services/catalog"
	"ironhorse/services/checkout"
	"ironhorse/services/media"
	"ironhorse/services/owner"
)

// HandlerBundle groups the services every endpoint handler needs.
type HandlerBundle struct {
	OrderRepo    orderRepoPkg.OrderRepository
	OwnerRepo    ownerRepoPkg.OwnerRepository
	SettingsRepo settingsRepoPkg.SettingsRepository

	Catalog  catalog.CatalogService
	Carts    cart.CartService
	Checkout checkout.CheckoutService
	Bookings booking.BookingService
	Owner    owner.OwnerService
	Media    media.MediaService
}
