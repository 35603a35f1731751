package discount

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	discountRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/discount"
	serviceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/service"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidInput     = errors.New("invalid discount input")
	ErrWindowOverlap    = errors.New("an active discount already covers part of this date range")
)

// CreateDiscountInput is the admin payload for creating a discount.
type CreateDiscountInput struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	DiscountType  string  `json:"discount_type" binding:"required"`
	DiscountValue float64 `json:"discount_value" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
}

// UpdateDiscountInput carries partial updates; nil fields are untouched.
type UpdateDiscountInput struct {
	DiscountType  *string  `json:"discount_type"`
	DiscountValue *float64 `json:"discount_value"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	IsActive      *bool    `json:"is_active"`
}

// DiscountService manages discount windows per service.
type DiscountService interface {
	Create(ctx context.Context, in CreateDiscountInput) (*models.Discount, error)
	Get(ctx context.Context, id string) (*models.Discount, error)
	List(ctx context.Context, serviceID string, isActive *bool) ([]models.Discount, error)
	Update(ctx context.Context, id string, in UpdateDiscountInput) (*models.Discount, error)
	// Delete disables a discount; records are kept for pricing history.
	Delete(ctx context.Context, id string) error
}

type DefaultDiscountService struct {
	Discounts discountRepo.DiscountRepository
	Services  serviceRepo.ServiceRepository
}

func validateWindow(discountType string, value float64, start, end string) error {
	if discountType != models.DiscountPercentage && discountType != models.DiscountFlat {
		return fmt.Errorf("%w: discount type must be %q or %q",
			ErrInvalidInput, models.DiscountPercentage, models.DiscountFlat)
	}
	if value <= 0 {
		return fmt.Errorf("%w: discount value must be positive", ErrInvalidInput)
	}
	if discountType == models.DiscountPercentage && value > 100 {
		return fmt.Errorf("%w: percentage discount cannot exceed 100", ErrInvalidInput)
	}
	if !utils.ValidDate(start) || !utils.ValidDate(end) {
		return fmt.Errorf("%w: dates must be YYYY-MM-DD", ErrInvalidInput)
	}
	if end < start {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	return nil
}

func (s *DefaultDiscountService) Create(ctx context.Context, in CreateDiscountInput) (*models.Discount, error) {
	if err := validateWindow(in.DiscountType, in.DiscountValue, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(ctx, in.ServiceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.Discounts.FindOverlapping(ctx, in.ServiceID, in.StartDate, in.EndDate, "")
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWindowOverlap
	}

	now := time.Now().UTC()
	d := &models.Discount{
		ID:            uuid.NewString(),
		ServiceID:     in.ServiceID,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsActive:      true,
		ServiceTitle:  svc.Title,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Discounts.Insert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DefaultDiscountService) Get(ctx context.Context, id string) (*models.Discount, error) {
	d, err := s.Discounts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}
	s.fillServiceTitle(ctx, d)
	return d, nil
}

func (s *DefaultDiscountService) List(ctx context.Context, serviceID string, isActive *bool) ([]models.Discount, error) {
	discounts, err := s.Discounts.List(ctx, serviceID, isActive)
	if err != nil {
		return nil, err
	}

	titles := map[string]string{}
	for i := range discounts {
		d := &discounts[i]
		title, ok := titles[d.ServiceID]
		if !ok {
			if svc, err := s.Services.GetByID(ctx, d.ServiceID); err == nil {
				title = svc.Title
			}
			titles[d.ServiceID] = title
		}
		d.ServiceTitle = title
	}
	return discounts, nil
}

func (s *DefaultDiscountService) Update(ctx context.Context, id string, in UpdateDiscountInput) (*models.Discount, error) {
	current, err := s.Discounts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}

	// Merge the patch over the stored record before validating, so
	// changing only one end of the window is still checked as a whole.
	next := *current
	if in.DiscountType != nil {
		next.DiscountType = *in.DiscountType
	}
	if in.DiscountValue != nil {
		next.DiscountValue = *in.DiscountValue
	}
	if in.StartDate != nil {
		next.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		next.EndDate = *in.EndDate
	}
	if in.IsActive != nil {
		next.IsActive = *in.IsActive
	}

	if err := validateWindow(next.DiscountType, next.DiscountValue, next.StartDate, next.EndDate); err != nil {
		return nil, err
	}

	if next.IsActive {
		existing, err := s.Discounts.FindOverlapping(ctx, next.ServiceID, next.StartDate, next.EndDate, id)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrWindowOverlap
		}
	}

	updated, err := s.Discounts.Update(ctx, id, bson.M{
		"discount_type":  next.DiscountType,
		"discount_value": next.DiscountValue,
		"start_date":     next.StartDate,
		"end_date":       next.EndDate,
		"is_active":      next.IsActive,
		"updated_at":     time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}
	s.fillServiceTitle(ctx, updated)
	return updated, nil
}

func (s *DefaultDiscountService) Delete(ctx context.Context, id string) error {
	err := s.Discounts.Disable(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDiscountNotFound
	}
	return err
}

func (s *DefaultDiscountService) fillServiceTitle(ctx context.Context, d *models.Discount) {
	if svc, err := s.Services.GetByID(ctx, d.ServiceID); err == nil {
		d.ServiceTitle = svc.Title
	}
}
