package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	bookingRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	serviceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/service"
	userRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/user"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/notification"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// CreateInput is a customer's booking request.
type CreateInput struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
	Notes     string `json:"notes"`
}

// BookingService admits new bookings and drives status transitions.
type BookingService interface {
	Create(ctx context.Context, customerID string, in CreateInput) (*models.Booking, error)
	Transition(ctx context.Context, bookingID, requestedStatus, actorRole, actorID string) (*models.Booking, error)
	CancelByCustomer(ctx context.Context, customerID, bookingID string) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error)
	ListForCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Pricing  *PricingResolver
	Notifier notification.Notifier

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create admits a booking request. Checks run in a fixed order and the
// first failure wins: active service, future date/time, free slot. On
// success the booking is persisted as Pending with prices captured from
// the resolver.
//
// The slot check here is only the fast path; the partial unique index on
// the bookings collection settles concurrent requests for the same slot,
// surfacing as a duplicate-key error on insert.
func (s *DefaultBookingService) Create(ctx context.Context, customerID string, in CreateInput) (*models.Booking, error) {
	svc, err := s.Services.GetByID(ctx, in.ServiceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(CodeServiceUnavailable, "service not found")
	}
	if err != nil {
		return nil, err
	}
	if svc.Status != models.ServiceActive {
		return nil, newError(CodeServiceUnavailable, "service is not available")
	}

	if !utils.IsFutureDateTime(in.Date, in.TimeSlot, s.now()) {
		return nil, newError(CodePastDateTime, "booking must be for a future date and time")
	}

	if _, err := s.Bookings.FindSlotHolder(ctx, in.ServiceID, in.Date, in.TimeSlot); err == nil {
		return nil, newError(CodeSlotConflict, "this time slot is already booked")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	customer, err := s.Users.GetByID(ctx, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(CodeNotFound, "customer not found")
	}
	if err != nil {
		return nil, err
	}

	finalPrice, discountApplied, err := s.Pricing.ResolvePrice(ctx, svc, in.Date)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	b := &models.Booking{
		ID:              uuid.New().String(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		ServiceID:       svc.ID,
		ServiceTitle:    svc.Title,
		Date:            in.Date,
		TimeSlot:        in.TimeSlot,
		BasePrice:       svc.BasePrice,
		FinalPrice:      finalPrice,
		DiscountApplied: discountApplied,
		Status:          models.BookingPending,
		SlotHeld:        true,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Bookings.Insert(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(CodeSlotConflict, "this time slot is already booked")
		}
		return nil, err
	}

	s.notify(b, notification.EventBookingCreated)
	return b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(CodeNotFound, "booking not found")
	}
	return b, err
}

func (s *DefaultBookingService) List(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error) {
	return s.Bookings.List(ctx, f)
}

func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	return s.Bookings.ListByCustomer(ctx, customerID, status)
}

// notify delivers in the background; a failing or absent notifier never
// changes a booking outcome.
func (s *DefaultBookingService) notify(b *models.Booking, event notification.Event) {
	if s.Notifier == nil {
		return
	}
	go func(b models.Booking) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notifier.Notify(ctx, &b, event); err != nil {
			utils.GetLogger().Warn("booking notification failed",
				zap.String("booking_id", b.ID),
				zap.String("event", string(event)),
				zap.Error(err))
		}
	}(*b)
}
