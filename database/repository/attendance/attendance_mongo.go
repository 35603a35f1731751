package attendanceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

func (r *mongoAttendanceRepo) Insert(ctx context.Context, a *models.Attendance) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *mongoAttendanceRepo) findOne(ctx context.Context, filter bson.M) (*models.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a models.Attendance
	err := r.coll.FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAttendanceRepo) GetByID(ctx context.Context, id string) (*models.Attendance, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoAttendanceRepo) FindByStaffAndDate(ctx context.Context, staffID, date string) (*models.Attendance, error) {
	return r.findOne(ctx, bson.M{"staff_id": staffID, "date": date})
}

func (r *mongoAttendanceRepo) Update(ctx context.Context, id string, set bson.M) (*models.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updated_at"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Attendance
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAttendanceRepo) List(ctx context.Context, f ListFilter) ([]models.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.StaffID != "" {
		filter["staff_id"] = f.StaffID
	}
	switch {
	case f.StartDate != "" && f.EndDate != "":
		filter["date"] = bson.M{"$gte": f.StartDate, "$lte": f.EndDate}
	case f.Date != "":
		filter["date"] = f.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureIndexes creates the unique (staff_id, date) index so a staff
// member can only check in once per day.
func (r *mongoAttendanceRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_staff_date"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}
	return nil
}
