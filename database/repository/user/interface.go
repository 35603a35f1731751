package userRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

type UserRepository interface {
	Insert(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.User, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.User, error)
	HasAdmin(ctx context.Context) (bool, error)
	CountCustomers(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a UserRepository backed by the users collection.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{coll: db.Collection("users")}
}
