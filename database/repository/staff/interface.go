package staffRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// ListFilter controls staff listing. By default only active,
// non-deleted staff are returned.
type ListFilter struct {
	Status          string
	IncludeInactive bool
	IncludeDeleted  bool
}

type StaffRepository interface {
	Insert(ctx context.Context, s *models.Staff) error
	// GetByID returns the staff member regardless of deletion state;
	// callers decide how to treat soft-deleted records.
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	List(ctx context.Context, f ListFilter) ([]models.Staff, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Staff, error)
	// SoftDelete marks the record deleted and inactive, keeping the
	// document in the collection.
	SoftDelete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a StaffRepository backed by the staff
// collection.
func NewMongoStaffRepo(db *mongo.Database) StaffRepository {
	return &mongoStaffRepo{coll: db.Collection("staff")}
}
