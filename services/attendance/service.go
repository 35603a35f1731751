package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	attendanceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/attendance"
	staffRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrAlreadyCheckedIn = errors.New("attendance already recorded for this staff member on this date")
	ErrInvalidInput     = errors.New("invalid attendance input")
)

// CheckInInput records a staff member's arrival. Date and check-in time
// default to "now" when omitted.
type CheckInInput struct {
	StaffID          string `json:"staff_id" binding:"required"`
	Date             string `json:"date"`
	CheckInTime      string `json:"check_in_time"`
	AttendanceStatus string `json:"attendance_status"`
}

// UpdateInput patches an attendance record; nil fields are untouched.
type UpdateInput struct {
	CheckInTime      *string `json:"check_in_time"`
	CheckOutTime     *string `json:"check_out_time"`
	AttendanceStatus *string `json:"attendance_status"`
}

// AttendanceService records and queries daily staff attendance.
type AttendanceService interface {
	CheckIn(ctx context.Context, in CheckInInput) (*models.Attendance, error)
	CheckOut(ctx context.Context, id, checkOutTime string) (*models.Attendance, error)
	Get(ctx context.Context, id string) (*models.Attendance, error)
	Update(ctx context.Context, id string, in UpdateInput) (*models.Attendance, error)
	List(ctx context.Context, f attendanceRepo.ListFilter) ([]models.Attendance, error)
}

type DefaultAttendanceService struct {
	Attendance attendanceRepo.AttendanceRepository
	Staff      staffRepo.StaffRepository

	// Now is the clock used for defaulted dates and times; nil means
	// time.Now.
	Now func() time.Time
}

func (s *DefaultAttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAttendanceService) CheckIn(ctx context.Context, in CheckInInput) (*models.Attendance, error) {
	member, err := s.Staff.GetByID(ctx, in.StaffID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	if member.IsDeleted {
		return nil, ErrStaffNotFound
	}

	now := s.now()
	date := in.Date
	if date == "" {
		date = now.Format(utils.DateLayout)
	} else if !utils.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	checkIn := in.CheckInTime
	if checkIn == "" {
		checkIn = now.Format(utils.TimeSlotLayout)
	} else if !utils.ValidTimeSlot(checkIn) {
		return nil, fmt.Errorf("%w: check-in time must be HH:MM", ErrInvalidInput)
	}
	status := in.AttendanceStatus
	if status == "" {
		status = models.AttendancePresent
	}
	if !models.ValidAttendanceStatus(status) {
		return nil, fmt.Errorf("%w: unknown attendance status %q", ErrInvalidInput, status)
	}

	rec := &models.Attendance{
		ID:               uuid.NewString(),
		StaffID:          member.ID,
		StaffName:        member.FullName,
		Date:             date,
		CheckInTime:      checkIn,
		AttendanceStatus: status,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
	if err := s.Attendance.Insert(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return rec, nil
}

// CheckOut stamps the departure time on an existing record.
func (s *DefaultAttendanceService) CheckOut(ctx context.Context, id, checkOutTime string) (*models.Attendance, error) {
	if checkOutTime == "" {
		checkOutTime = s.now().Format(utils.TimeSlotLayout)
	} else if !utils.ValidTimeSlot(checkOutTime) {
		return nil, fmt.Errorf("%w: check-out time must be HH:MM", ErrInvalidInput)
	}

	rec, err := s.Attendance.Update(ctx, id, bson.M{
		"check_out_time": checkOutTime,
		"updated_at":     s.now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

func (s *DefaultAttendanceService) Get(ctx context.Context, id string) (*models.Attendance, error) {
	rec, err := s.Attendance.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

func (s *DefaultAttendanceService) Update(ctx context.Context, id string, in UpdateInput) (*models.Attendance, error) {
	set := bson.M{"updated_at": s.now().UTC()}
	if in.CheckInTime != nil {
		if !utils.ValidTimeSlot(*in.CheckInTime) {
			return nil, fmt.Errorf("%w: check-in time must be HH:MM", ErrInvalidInput)
		}
		set["check_in_time"] = *in.CheckInTime
	}
	if in.CheckOutTime != nil {
		if !utils.ValidTimeSlot(*in.CheckOutTime) {
			return nil, fmt.Errorf("%w: check-out time must be HH:MM", ErrInvalidInput)
		}
		set["check_out_time"] = *in.CheckOutTime
	}
	if in.AttendanceStatus != nil {
		if !models.ValidAttendanceStatus(*in.AttendanceStatus) {
			return nil, fmt.Errorf("%w: unknown attendance status %q", ErrInvalidInput, *in.AttendanceStatus)
		}
		set["attendance_status"] = *in.AttendanceStatus
	}

	rec, err := s.Attendance.Update(ctx, id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

func (s *DefaultAttendanceService) List(ctx context.Context, f attendanceRepo.ListFilter) ([]models.Attendance, error) {
	if f.Date != "" && !utils.ValidDate(f.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.Attendance.List(ctx, f)
}
