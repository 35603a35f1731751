package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// ListFilter narrows the admin booking listing. Zero values mean "any".
type ListFilter struct {
	Status    string
	Date      string
	ServiceID string
}

type BookingRepository interface {
	// Insert persists a new booking. A violation of the slot uniqueness
	// index is reported as repository.ErrDuplicate.
	Insert(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindSlotHolder returns the non-Cancelled booking occupying the
	// given (service, date, time slot), or repository.ErrNotFound.
	FindSlotHolder(ctx context.Context, serviceID, date, timeSlot string) (*models.Booking, error)
	// UpdateStatus moves the booking from the expected current status to
	// the new one (releasing the slot when the new status is Cancelled)
	// and returns the updated document. The write only applies while the
	// booking is still in `from`, so concurrent transitions cannot both
	// win; a stale `from` is reported as repository.ErrNotFound.
	UpdateStatus(ctx context.Context, id, from, to string) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error)
	List(ctx context.Context, f ListFilter) ([]models.Booking, error)
	Recent(ctx context.Context, limit int64) ([]models.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountOnDate(ctx context.Context, date string) (int64, error)
	// CountActiveForService counts Pending/Confirmed bookings, used to
	// decide between deactivating and deleting a service.
	CountActiveForService(ctx context.Context, serviceID string) (int64, error)
	// Revenue aggregations over Completed bookings.
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueSince(ctx context.Context, date string) (float64, error)
	RevenueByService(ctx context.Context) ([]models.ServiceRevenue, error)
	BookingsByDate(ctx context.Context, since string) ([]models.DailyBookings, error)
	TopServices(ctx context.Context, limit int64) ([]models.TopService, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository backed by the
// bookings collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}
