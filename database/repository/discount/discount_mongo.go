package discountRepo

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

func (r *mongoDiscountRepo) Insert(ctx context.Context, d *models.Discount) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, d)
	return err
}

func (r *mongoDiscountRepo) GetByID(ctx context.Context, id string) (*models.Discount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d models.Discount
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoDiscountRepo) List(ctx context.Context, serviceID string, isActive *bool) ([]models.Discount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if serviceID != "" {
		filter["service_id"] = serviceID
	}
	if isActive != nil {
		filter["is_active"] = *isActive
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var discounts []models.Discount
	if err := cursor.All(ctx, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *mongoDiscountRepo) Update(ctx context.Context, id string, set bson.M) (*models.Discount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d models.Discount
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoDiscountRepo) Disable(ctx context.Context, id string) error {
	_, err := r.Update(ctx, id, bson.M{"is_active": false})
	return err
}

func (r *mongoDiscountRepo) FindActiveOn(ctx context.Context, serviceID, date string) ([]models.Discount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"service_id": serviceID,
		"is_active":  true,
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var discounts []models.Discount
	if err := cursor.All(ctx, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *mongoDiscountRepo) FindOverlapping(ctx context.Context, serviceID, start, end, excludeID string) (*models.Discount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Two inclusive date ranges intersect when each starts before the
	// other ends. Lexicographic comparison is safe for "YYYY-MM-DD".
	filter := bson.M{
		"service_id": serviceID,
		"is_active":  true,
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	var d models.Discount
	err := r.coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoDiscountRepo) DeleteByService(ctx context.Context, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"service_id": serviceID})
	return err
}

func (r *mongoDiscountRepo) CountActiveOn(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{
		"is_active":  true,
		"start_date": bson.M{"$lte": date},
		"end_date":   bson.M{"$gte": date},
	})
}

func (r *mongoDiscountRepo) DeactivateExpired(ctx context.Context, today string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{"is_active": true, "end_date": bson.M{"$lt": today}},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
