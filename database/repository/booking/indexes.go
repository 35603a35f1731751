package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes on the bookings collection.
//
// The slot index is the authoritative guard for slot exclusivity: it is
// unique over (service_id, date, time_slot) but only applies to
// documents with slot_held == true, so a Cancelled booking (slot_held
// false) frees its slot for rebooking. The application-level conflict
// check before insert is only a fast-path rejection; concurrent inserts
// for the same slot are settled here by a duplicate-key error.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "service_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time_slot", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"slot_held": true}).
				SetName("unique_live_slot"),
		},
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("customer_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("status_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
