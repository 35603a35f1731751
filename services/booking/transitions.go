package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/notification"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// adminTransitions is the allowed state machine for admins. Completed
// and Cancelled are terminal: they have no entry here, so nothing moves
// out of them.
var adminTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
}

func adminAllowed(from, to string) bool {
	for _, t := range adminTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change requested by the
// given actor. Customers may only cancel their own Pending/Confirmed
// bookings while the appointment is still in the future; admins follow
// the full state machine.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID, requestedStatus, actorRole, actorID string) (*models.Booking, error) {
	if !models.ValidBookingStatus(requestedStatus) {
		return nil, newError(CodeInvalidStatus, fmt.Sprintf("unknown booking status %q", requestedStatus))
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(CodeNotFound, "booking not found")
	}
	if err != nil {
		return nil, err
	}

	switch actorRole {
	case models.RoleAdmin:
		if !adminAllowed(b.Status, requestedStatus) {
			return nil, newError(CodeIllegalTransition,
				fmt.Sprintf("cannot move booking from %s to %s", b.Status, requestedStatus))
		}
	case models.RoleCustomer:
		if b.CustomerID != actorID {
			return nil, newError(CodeForbidden, "booking belongs to another customer")
		}
		if requestedStatus != models.BookingCancelled {
			return nil, newError(CodeIllegalTransition, "customers may only cancel bookings")
		}
		if b.Status == models.BookingCompleted || b.Status == models.BookingCancelled {
			return nil, newError(CodeIllegalTransition,
				fmt.Sprintf("cannot cancel a %s booking", b.Status))
		}
		if !utils.IsFutureDateTime(b.Date, b.TimeSlot, s.now()) {
			return nil, newError(CodeIllegalTransition, "cannot cancel a past booking")
		}
	default:
		return nil, newError(CodeForbidden, "unknown actor role")
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, b.Status, requestedStatus)
	if errors.Is(err, repository.ErrNotFound) {
		// The booking moved to another status between the read above and
		// the write; the loser of the race gets a conflict.
		return nil, newError(CodeIllegalTransition,
			fmt.Sprintf("booking is no longer %s", b.Status))
	}
	if err != nil {
		return nil, err
	}

	if requestedStatus == models.BookingCancelled {
		s.notify(updated, notification.EventBookingCancelled)
	} else {
		s.notify(updated, notification.EventStatusChanged)
	}
	return updated, nil
}

// CancelByCustomer is the customer-facing cancellation path.
func (s *DefaultBookingService) CancelByCustomer(ctx context.Context, customerID, bookingID string) (*models.Booking, error) {
	return s.Transition(ctx, bookingID, models.BookingCancelled, models.RoleCustomer, customerID)
}
