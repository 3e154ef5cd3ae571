package ownerRepo

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

// MongoOwnerRepo implements OwnerRepository using MongoDB.
type MongoOwnerRepo struct {
	coll *mongo.Collection
}

// NewMongoOwnerRepo creates a new instance of OwnerRepository using MongoDB.
func NewMongoOwnerRepo() OwnerRepository {
	repo := &MongoOwnerRepo{coll: database.Collection("owner")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOwnerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Get retrieves the owner account.
func (r *MongoOwnerRepo) Get() (*models.Owner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var owner models.Owner
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&owner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch owner account: %w", err)
	}
	return &owner, nil
}

// GetByEmail retrieves the owner account by email.
func (r *MongoOwnerRepo) GetByEmail(email string) (*models.Owner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var owner models.Owner
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&owner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch owner with email %s: %w", email, err)
	}
	return &owner, nil
}

// Create inserts the owner account.
func (r *MongoOwnerRepo) Create(owner *models.Owner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	owner.CreatedAt = now
	owner.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, owner); err != nil {
		return fmt.Errorf("failed to create owner account: %w", err)
	}
	return nil
}

// Update modifies the owner account.
func (r *MongoOwnerRepo) Update(owner *models.Owner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	owner.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": owner.ID}, bson.M{"$set": owner})
	if err != nil {
		return fmt.Errorf("failed to update owner account: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("owner account not found")
	}
	return nil
}
