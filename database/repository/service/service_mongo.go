package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	repo := &MongoServiceRepo{coll: database.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a service type by its unique ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.ServiceType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.ServiceType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetAll retrieves all service types.
func (r *MongoServiceRepo) GetAll(activeOnly bool) ([]models.ServiceType, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ServiceType
	for cursor.Next(ctx) {
		var s models.ServiceType
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// Create inserts a new service type document.
func (r *MongoServiceRepo) Create(service *models.ServiceType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update modifies an existing service type document.
func (r *MongoServiceRepo) Update(service *models.ServiceType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": service.ID}, bson.M{"$set": service})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", service.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", service.ID)
	}
	return nil
}

// Delete removes a service type document by its ID.
func (r *MongoServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}
