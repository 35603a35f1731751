package notification

import (
	"context"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// Event identifies what happened to a booking.
type Event string

const (
	EventBookingCreated   Event = "booking_created"
	EventBookingCancelled Event = "booking_cancelled"
	EventStatusChanged    Event = "status_changed"
)

// Notifier delivers booking notifications to the customer. Delivery is
// fire-and-forget: callers must not let a notifier failure change the
// outcome of the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, b *models.Booking, event Event) error
}

// NoopNotifier satisfies Notifier without sending anything. It is wired
// in whenever SMTP is not configured, so enabling email later requires
// no changes outside main.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, b *models.Booking, event Event) error {
	return nil
}
