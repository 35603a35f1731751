package serviceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

type ServiceRepository interface {
	Insert(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// List returns services sorted newest first; status "" means all.
	List(ctx context.Context, status string) ([]models.Service, error)
	// Update applies the given $set fields and returns the updated document.
	Update(ctx context.Context, id string, set bson.M) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a ServiceRepository backed by the
// services collection.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{coll: db.Collection("services")}
}
