package bookingRepo

import (
	"fmt"
	"time"

	"ironhorse/models"
	"ironhorse/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// CreateIfSlotFree admits a booking with at-most-one-winner semantics.
// The confirmed bookings for the same service and date are re-read and
// re-checked for overlap inside a causally-consistent transaction, so a
// slot that looked free when the slot list was rendered can still be
// rejected here if another customer committed first.
func (r *MongoBookingRepo) CreateIfSlotFree(booking *models.Booking) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		existing, err := r.listConfirmed(sc, booking.ServiceID, booking.Date)
		if err != nil {
			return nil, err
		}
		for _, b := range existing {
			conflict, err := scheduling.Overlaps(booking.StartTime, booking.EndTime, b.StartTime, b.EndTime)
			if err != nil {
				return nil, err
			}
			if conflict {
				return nil, ErrSlotTaken
			}
		}

		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		return nil, nil
	}, txnOpts)

	return err
}
