package settingsRepo

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

// operatingHoursKey is the fixed id of the single hours document.
const operatingHoursKey = "operating-hours"

type hoursDocument struct {
	ID        string                `bson:"id"`
	Hours     models.OperatingHours `bson:"hours"`
	UpdatedAt time.Time             `bson:"updatedAt"`
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetOperatingHours retrieves the weekly schedule, seeding the default
// on first access.
func (r *MongoSettingsRepo) GetOperatingHours() (models.OperatingHours, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc hoursDocument
	err := r.coll.FindOne(ctx, bson.M{"id": operatingHoursKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		hours := models.DefaultOperatingHours()
		if err := r.SetOperatingHours(hours); err != nil {
			return models.OperatingHours{}, err
		}
		return hours, nil
	}
	if err != nil {
		return models.OperatingHours{}, fmt.Errorf("failed to fetch operating hours: %w", err)
	}
	return doc.Hours, nil
}

// SetOperatingHours replaces the weekly schedule.
func (r *MongoSettingsRepo) SetOperatingHours(hours models.OperatingHours) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc := hoursDocument{ID: operatingHoursKey, Hours: hours, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": operatingHoursKey}, doc, opts); err != nil {
		return fmt.Errorf("failed to save operating hours: %w", err)
	}
	return nil
}
