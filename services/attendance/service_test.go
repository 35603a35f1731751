package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	attendanceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/attendance"
	staffRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

type fakeAttendanceRepo struct {
	records map[string]*models.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]*models.Attendance{}}
}

func (r *fakeAttendanceRepo) Insert(ctx context.Context, a *models.Attendance) error {
	for _, existing := range r.records {
		if existing.StaffID == a.StaffID && existing.Date == a.Date {
			return repository.ErrDuplicate
		}
	}
	cp := *a
	r.records[a.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (*models.Attendance, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAttendanceRepo) FindByStaffAndDate(ctx context.Context, staffID, date string) (*models.Attendance, error) {
	for _, a := range r.records {
		if a.StaffID == staffID && a.Date == date {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, id string, set bson.M) (*models.Attendance, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := set["check_in_time"].(string); ok {
		a.CheckInTime = v
	}
	if v, ok := set["check_out_time"].(string); ok {
		a.CheckOutTime = &v
	}
	if v, ok := set["attendance_status"].(string); ok {
		a.AttendanceStatus = v
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAttendanceRepo) List(ctx context.Context, f attendanceRepo.ListFilter) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, a := range r.records {
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.StaffID != "" && a.StaffID != f.StaffID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeStaffRepo struct {
	staff map[string]*models.Staff
}

func (r *fakeStaffRepo) Insert(ctx context.Context, s *models.Staff) error {
	r.staff[s.ID] = s
	return nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStaffRepo) List(ctx context.Context, f staffRepo.ListFilter) ([]models.Staff, error) {
	return nil, nil
}

func (r *fakeStaffRepo) Update(ctx context.Context, id string, set bson.M) (*models.Staff, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeStaffRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (r *fakeStaffRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

var attendanceTestNow = time.Date(2026, 2, 10, 9, 15, 0, 0, time.Local)

func newTestAttendanceService() (*DefaultAttendanceService, *fakeAttendanceRepo) {
	records := newFakeAttendanceRepo()
	staff := &fakeStaffRepo{staff: map[string]*models.Staff{
		"st-1": {ID: "st-1", FullName: "Priya", Role: models.StaffStylist, Status: models.StaffActive},
		"st-2": {ID: "st-2", FullName: "Gone", Role: models.StaffStylist, IsDeleted: true},
	}}
	svc := &DefaultAttendanceService{
		Attendance: records,
		Staff:      staff,
		Now:        func() time.Time { return attendanceTestNow },
	}
	return svc, records
}

func TestCheckIn(t *testing.T) {
	t.Run("defaults date, time and status", func(t *testing.T) {
		svc, _ := newTestAttendanceService()
		rec, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1"})
		require.NoError(t, err)
		assert.Equal(t, "2026-02-10", rec.Date)
		assert.Equal(t, "09:15", rec.CheckInTime)
		assert.Equal(t, models.AttendancePresent, rec.AttendanceStatus)
		assert.Equal(t, "Priya", rec.StaffName)
	})

	t.Run("second check-in on the same day conflicts", func(t *testing.T) {
		svc, _ := newTestAttendanceService()
		_, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1"})
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1"})
		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	})

	t.Run("same staff may check in on a different day", func(t *testing.T) {
		svc, _ := newTestAttendanceService()
		_, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1", Date: "2026-02-09"})
		require.NoError(t, err)
		_, err = svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1", Date: "2026-02-10"})
		assert.NoError(t, err)
	})

	t.Run("unknown staff", func(t *testing.T) {
		svc, _ := newTestAttendanceService()
		_, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "missing"})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("soft-deleted staff cannot check in", func(t *testing.T) {
		svc, _ := newTestAttendanceService()
		_, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-2"})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("rejects malformed inputs", func(t *testing.T) {
		svc, _ := newTestAttendanceService()
		_, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1", Date: "10/02/2026"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1", CheckInTime: "9am"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1", AttendanceStatus: "OnLeave"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCheckOut(t *testing.T) {
	svc, _ := newTestAttendanceService()
	rec, err := svc.CheckIn(context.Background(), CheckInInput{StaffID: "st-1"})
	require.NoError(t, err)

	t.Run("defaults to current time", func(t *testing.T) {
		updated, err := svc.CheckOut(context.Background(), rec.ID, "")
		require.NoError(t, err)
		require.NotNil(t, updated.CheckOutTime)
		assert.Equal(t, "09:15", *updated.CheckOutTime)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.CheckOut(context.Background(), "missing", "17:00")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		_, err := svc.CheckOut(context.Background(), rec.ID, "5pm")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
