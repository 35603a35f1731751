package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

func (r *mongoBookingRepo) sumRevenue(ctx context.Context, match bson.M) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$match": match},
		bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$final_price"}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// TotalRevenue sums final_price over all Completed bookings.
func (r *mongoBookingRepo) TotalRevenue(ctx context.Context) (float64, error) {
	return r.sumRevenue(ctx, bson.M{"status": models.BookingCompleted})
}

// RevenueSince sums Completed revenue for bookings dated on or after date.
func (r *mongoBookingRepo) RevenueSince(ctx context.Context, date string) (float64, error) {
	return r.sumRevenue(ctx, bson.M{
		"status": models.BookingCompleted,
		"date":   bson.M{"$gte": date},
	})
}

func (r *mongoBookingRepo) RevenueByService(ctx context.Context) ([]models.ServiceRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$match": bson.M{"status": models.BookingCompleted}},
		bson.M{"$group": bson.M{
			"_id":           "$service_id",
			"service_title": bson.M{"$first": "$service_title"},
			"total_revenue": bson.M{"$sum": "$final_price"},
			"booking_count": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.M{"total_revenue": -1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.ServiceRevenue
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mongoBookingRepo) BookingsByDate(ctx context.Context, since string) ([]models.DailyBookings, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$match": bson.M{"date": bson.M{"$gte": since}}},
		bson.M{"$group": bson.M{
			"_id":   "$date",
			"count": bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingCompleted}},
				"$final_price",
				0,
			}}},
		}},
		bson.M{"$sort": bson.M{"_id": 1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.DailyBookings
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mongoBookingRepo) TopServices(ctx context.Context, limit int64) ([]models.TopService, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$group": bson.M{
			"_id":           "$service_id",
			"service_title": bson.M{"$first": "$service_title"},
			"booking_count": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.M{"booking_count": -1}},
		bson.M{"$limit": limit},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.TopService
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
