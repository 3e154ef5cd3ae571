package orderRepo

import (
	"context"
	"fmt"
	"time"

	"ironhorse/database"
	"ironhorse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	repo := &MongoOrderRepo{coll: database.Collection("orders")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stripeSessionId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its unique ID.
func (r *MongoOrderRepo) GetByID(id string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order with id %s: %w", id, err)
	}
	return &order, nil
}

// GetByStripeSession retrieves an order by its Stripe session ID.
func (r *MongoOrderRepo) GetByStripeSession(sessionID string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"stripeSessionId": sessionID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order for session %s: %w", sessionID, err)
	}
	return &order, nil
}

// Create inserts a new order document.
func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// MarkPaid transitions an order to paid.
func (r *MongoOrderRepo) MarkPaid(id, customerEmail string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":        models.OrderStatusPaid,
		"customerEmail": customerEmail,
		"updatedAt":     time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark order %s paid: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order with id %s not found", id)
	}
	return nil
}

// GetAll retrieves all orders, newest first.
func (r *MongoOrderRepo) GetAll() ([]models.Order, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
