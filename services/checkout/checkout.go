package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"ironhorse/config"
	orderRepo "ironhorse/database/repository/order"
	productRepo "ironhorse/database/repository/product"
	"ironhorse/models"
	"ironhorse/services/cart"
	"ironhorse/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart means checkout was attempted on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidSignature means the Stripe webhook signature did not verify.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// CheckoutService turns a cart into a Stripe Checkout Session and
// settles the order when Stripe reports payment.
type CheckoutService interface {
	// CreateSession records a pending order and returns it together
	// with the Stripe-hosted payment page URL.
	CreateSession(cartToken string) (*models.Order, string, error)
	// HandleWebhook verifies and applies a Stripe event.
	HandleWebhook(payload []byte, sigHeader string) error
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Carts    cart.CartService
	Orders   orderRepo.OrderRepository
	Products productRepo.ProductRepository
}

// CreateSession builds the Stripe session from the cart's current
// contents. Prices are the catalog prices snapshotted into the order;
// all payment math from here on belongs to Stripe.
func (s *DefaultCheckoutService) CreateSession(cartToken string) (*models.Order, string, error) {
	c, err := s.Carts.Get(cartToken)
	if err != nil {
		return nil, "", err
	}
	if len(c.Items) == 0 {
		return nil, "", ErrEmptyCart
	}

	currency := config.AppConfig.Currency
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(c.Items))
	orderItems := make([]models.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(it.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(toCents(it.UnitPrice)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
			},
		})
		orderItems = append(orderItems, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:  stripe.String(config.AppConfig.CheckoutCancelURL),
	}
	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		CartToken:       cartToken,
		Items:           orderItems,
		Total:           c.Total(),
		Currency:        currency,
		StripeSessionID: sess.ID,
		Status:          models.OrderStatusPending,
	}
	if err := s.Orders.Create(order); err != nil {
		return nil, "", err
	}

	return order, sess.URL, nil
}

// HandleWebhook verifies the Stripe signature and settles the matching
// order on checkout.session.completed. Unrecognized event types are
// acknowledged and ignored.
func (s *DefaultCheckoutService) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		return ErrInvalidSignature
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to parse checkout session: %w", err)
	}

	order, err := s.Orders.GetByStripeSession(sess.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("no order for stripe session %s", sess.ID)
	}
	if order.Status == models.OrderStatusPaid {
		// Stripe retries webhooks; a settled order stays settled.
		return nil
	}

	email := ""
	if sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}
	if err := s.Orders.MarkPaid(order.ID, email); err != nil {
		return err
	}

	logger := utils.GetLogger()
	for _, it := range order.Items {
		if err := s.Products.AdjustStock(it.ProductID, it.Quantity); err != nil {
			// Stock drift is an ops problem, not a payment problem.
			logger.Warn("stock adjustment failed after payment",
				zap.String("orderID", order.ID),
				zap.String("productID", it.ProductID),
				zap.Error(err))
		}
	}
	if err := s.Carts.Clear(order.CartToken); err != nil {
		logger.Warn("failed to clear cart after payment",
			zap.String("orderID", order.ID), zap.Error(err))
	}

	logger.Info("order paid",
		zap.String("orderID", order.ID),
		zap.String("sessionID", sess.ID))
	return nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
