package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	staffRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrInvalidInput  = errors.New("invalid staff input")
)

// CreateStaffInput is the admin payload for adding a staff member.
type CreateStaffInput struct {
	FullName     string              `json:"full_name" binding:"required"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Role         string              `json:"role" binding:"required"`
	WorkingDays  []string            `json:"working_days"`
	ShiftTimings models.ShiftTimings `json:"shift_timings"`
	Status       string              `json:"status"`
}

// UpdateStaffInput carries partial updates; nil fields are untouched.
type UpdateStaffInput struct {
	FullName     *string              `json:"full_name"`
	Email        *string              `json:"email"`
	Phone        *string              `json:"phone"`
	Role         *string              `json:"role"`
	WorkingDays  *[]string            `json:"working_days"`
	ShiftTimings *models.ShiftTimings `json:"shift_timings"`
	Status       *string              `json:"status"`
}

// StaffService manages the staff roster.
type StaffService interface {
	Create(ctx context.Context, in CreateStaffInput) (*models.Staff, error)
	Get(ctx context.Context, id string) (*models.Staff, error)
	List(ctx context.Context, f staffRepo.ListFilter) ([]models.Staff, error)
	Update(ctx context.Context, id string, in UpdateStaffInput) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
}

type DefaultStaffService struct {
	Staff staffRepo.StaffRepository
}

func validateShift(t models.ShiftTimings) error {
	if t.Start == "" && t.End == "" {
		return nil
	}
	if !utils.ValidTimeSlot(t.Start) || !utils.ValidTimeSlot(t.End) {
		return fmt.Errorf("%w: shift timings must be HH:MM", ErrInvalidInput)
	}
	if t.End <= t.Start {
		return fmt.Errorf("%w: shift end must be after shift start", ErrInvalidInput)
	}
	return nil
}

func (s *DefaultStaffService) Create(ctx context.Context, in CreateStaffInput) (*models.Staff, error) {
	if !models.ValidStaffRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}
	if in.Email != "" && !utils.ValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if err := validateShift(in.ShiftTimings); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.StaffActive
	}
	if status != models.StaffActive && status != models.StaffInactive {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	now := time.Now().UTC()
	member := &models.Staff{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         in.Role,
		WorkingDays:  in.WorkingDays,
		ShiftTimings: in.ShiftTimings,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Staff.Insert(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *DefaultStaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	member, err := s.Staff.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	if member.IsDeleted {
		return nil, ErrStaffNotFound
	}
	return member, nil
}

func (s *DefaultStaffService) List(ctx context.Context, f staffRepo.ListFilter) ([]models.Staff, error) {
	return s.Staff.List(ctx, f)
}

func (s *DefaultStaffService) Update(ctx context.Context, id string, in UpdateStaffInput) (*models.Staff, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.FullName != nil {
		set["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		if *in.Email != "" && !utils.ValidEmail(*in.Email) {
			return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
		}
		set["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Phone != nil {
		set["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		if !models.ValidStaffRole(*in.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *in.Role)
		}
		set["role"] = *in.Role
	}
	if in.WorkingDays != nil {
		set["working_days"] = *in.WorkingDays
	}
	if in.ShiftTimings != nil {
		if err := validateShift(*in.ShiftTimings); err != nil {
			return nil, err
		}
		set["shift_timings"] = *in.ShiftTimings
	}
	if in.Status != nil {
		if *in.Status != models.StaffActive && *in.Status != models.StaffInactive {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		set["status"] = *in.Status
	}

	member, err := s.Staff.Update(ctx, id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrStaffNotFound
	}
	return member, err
}

// Delete soft-deletes a staff member so attendance history keeps its
// staff references intact.
func (s *DefaultStaffService) Delete(ctx context.Context, id string) error {
	err := s.Staff.SoftDelete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStaffNotFound
	}
	return err
}
