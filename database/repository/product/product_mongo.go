package productRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ironhorse/database"
	"ironhorse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInsufficientStock is returned by AdjustStock when fewer units
// remain than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo creates a new instance of ProductRepository using MongoDB.
func NewMongoProductRepo() ProductRepository {
	repo := &MongoProductRepo{coll: database.Collection("products")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProductRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its unique ID.
func (r *MongoProductRepo) GetByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product with id %s: %w", id, err)
	}
	return &product, nil
}

// GetAll retrieves all products, optionally filtered by category.
func (r *MongoProductRepo) GetAll(category string, activeOnly bool) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Create inserts a new product document.
func (r *MongoProductRepo) Create(product *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update modifies an existing product document.
func (r *MongoProductRepo) Update(product *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	product.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": product.ID}, bson.M{"$set": product})
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", product.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product with id %s not found", product.ID)
	}
	return nil
}

// Delete removes a product document by its ID.
func (r *MongoProductRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product with id %s not found", id)
	}
	return nil
}

// AdjustStock decrements stock atomically, guarding against oversell.
func (r *MongoProductRepo) AdjustStock(id string, qty int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "stock": bson.M{"$gte": qty}}
	update := bson.M{
		"$inc": bson.M{"stock": -qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for product %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrInsufficientStock
	}
	return nil
}
