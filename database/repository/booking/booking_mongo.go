package bookingRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

func (r *mongoBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, b)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) FindSlotHolder(ctx context.Context, serviceID, date, timeSlot string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"service_id": serviceID,
		"date":       date,
		"time_slot":  timeSlot,
		"status":     bson.M{"$ne": models.BookingCancelled},
	}
	var b models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, from, to string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     to,
		"slot_held":  to != models.BookingCancelled,
		"updated_at": time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Booking
	// Matching on the expected status makes the transition a
	// compare-and-set: a racing transition leaves no matching document.
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id, "status": from}, bson.M{"$set": set}, opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	filter := bson.M{"customer_id": customerID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *mongoBookingRepo) List(ctx context.Context, f ListFilter) ([]models.Booking, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Date != "" {
		filter["date"] = f.Date
	}
	if f.ServiceID != "" {
		filter["service_id"] = f.ServiceID
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *mongoBookingRepo) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *mongoBookingRepo) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, filter)
}

func (r *mongoBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *mongoBookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, bson.M{"status": status})
}

func (r *mongoBookingRepo) CountOnDate(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, bson.M{"date": date})
}

func (r *mongoBookingRepo) CountActiveForService(ctx context.Context, serviceID string) (int64, error) {
	return r.count(ctx, bson.M{
		"service_id": serviceID,
		"status":     bson.M{"$in": bson.A{models.BookingPending, models.BookingConfirmed}},
	})
}
