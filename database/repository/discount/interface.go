package discountRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

type DiscountRepository interface {
	Insert(ctx context.Context, d *models.Discount) error
	GetByID(ctx context.Context, id string) (*models.Discount, error)
	// List returns discounts sorted newest first. serviceID "" means all
	// services; isActive nil means both active and inactive.
	List(ctx context.Context, serviceID string, isActive *bool) ([]models.Discount, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Discount, error)
	// Disable flips is_active off; discounts are never hard-deleted on
	// their own.
	Disable(ctx context.Context, id string) error
	// FindActiveOn returns the active discounts whose window covers date.
	FindActiveOn(ctx context.Context, serviceID, date string) ([]models.Discount, error)
	// FindOverlapping returns an active discount for the same service
	// whose [start_date, end_date] intersects [start, end], excluding the
	// discount with excludeID ("" to exclude nothing).
	FindOverlapping(ctx context.Context, serviceID, start, end, excludeID string) (*models.Discount, error)
	DeleteByService(ctx context.Context, serviceID string) error
	CountActiveOn(ctx context.Context, date string) (int64, error)
	// DeactivateExpired flips is_active off for discounts whose window
	// closed before today, returning how many were changed.
	DeactivateExpired(ctx context.Context, today string) (int64, error)
}

type mongoDiscountRepo struct {
	coll *mongo.Collection
}

// NewMongoDiscountRepo constructs a DiscountRepository backed by the
// discounts collection.
func NewMongoDiscountRepo(db *mongo.Database) DiscountRepository {
	return &mongoDiscountRepo{coll: db.Collection("discounts")}
}
