package attendanceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// ListFilter narrows attendance listings. Date and the StartDate/EndDate
// range are mutually exclusive; the range wins when both ends are set.
type ListFilter struct {
	Date      string
	StaffID   string
	StartDate string
	EndDate   string
}

type AttendanceRepository interface {
	// Insert persists a check-in record. A second record for the same
	// (staff_id, date) is reported as repository.ErrDuplicate.
	Insert(ctx context.Context, a *models.Attendance) error
	GetByID(ctx context.Context, id string) (*models.Attendance, error)
	FindByStaffAndDate(ctx context.Context, staffID, date string) (*models.Attendance, error)
	Update(ctx context.Context, id string, set bson.M) (*models.Attendance, error)
	List(ctx context.Context, f ListFilter) ([]models.Attendance, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAttendanceRepo struct {
	coll *mongo.Collection
}

// NewMongoAttendanceRepo constructs an AttendanceRepository backed by
// the attendance collection.
func NewMongoAttendanceRepo(db *mongo.Database) AttendanceRepository {
	return &mongoAttendanceRepo{coll: db.Collection("attendance")}
}
