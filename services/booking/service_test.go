package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// testNow is the fixed clock all admission tests run against.
var testNow = time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local)

func newTestBookingService(services *fakeServiceRepo, bookings *fakeBookingRepo, users *fakeUserRepo, discounts *fakeDiscountRepo) *DefaultBookingService {
	if discounts == nil {
		discounts = &fakeDiscountRepo{}
	}
	return &DefaultBookingService{
		Services: services,
		Bookings: bookings,
		Users:    users,
		Pricing:  &PricingResolver{Discounts: discounts},
		Now:      func() time.Time { return testNow },
	}
}

func activeService() *models.Service {
	return &models.Service{
		ID:        "svc-1",
		Title:     "Haircut",
		BasePrice: 25.00,
		Duration:  30,
		Status:    models.ServiceActive,
	}
}

func testCustomer() *models.User {
	return &models.User{
		ID:    "cust-1",
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  models.RoleCustomer,
	}
}

func TestCreateBooking(t *testing.T) {
	in := CreateInput{
		ServiceID: "svc-1",
		Date:      "2026-02-15",
		TimeSlot:  "14:00",
	}

	t.Run("succeeds for active service and free future slot", func(t *testing.T) {
		svc := newTestBookingService(
			newFakeServiceRepo(activeService()),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		b, err := svc.Create(context.Background(), "cust-1", in)
		require.NoError(t, err)
		assert.Equal(t, models.BookingPending, b.Status)
		assert.True(t, b.SlotHeld)
		assert.Equal(t, "Haircut", b.ServiceTitle)
		assert.Equal(t, "asha@example.com", b.CustomerEmail)
		assert.InDelta(t, 25.00, b.BasePrice, 0.001)
		assert.InDelta(t, 25.00, b.FinalPrice, 0.001)
		assert.False(t, b.DiscountApplied)
	})

	t.Run("captures discounted price at creation", func(t *testing.T) {
		discounts := &fakeDiscountRepo{discounts: []*models.Discount{
			{
				ID: "d-1", ServiceID: "svc-1",
				DiscountType: models.DiscountPercentage, DiscountValue: 20,
				StartDate: "2026-02-01", EndDate: "2026-02-28",
				IsActive: true,
			},
		}}
		svc := newTestBookingService(
			newFakeServiceRepo(activeService()),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			discounts,
		)

		b, err := svc.Create(context.Background(), "cust-1", in)
		require.NoError(t, err)
		assert.True(t, b.DiscountApplied)
		assert.InDelta(t, 25.00, b.BasePrice, 0.001)
		assert.InDelta(t, 20.00, b.FinalPrice, 0.001)
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		svc := newTestBookingService(
			newFakeServiceRepo(),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		_, err := svc.Create(context.Background(), "cust-1", in)
		assert.True(t, IsCode(err, CodeServiceUnavailable))
	})

	t.Run("inactive service is rejected", func(t *testing.T) {
		inactive := activeService()
		inactive.Status = models.ServiceInactive
		svc := newTestBookingService(
			newFakeServiceRepo(inactive),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		_, err := svc.Create(context.Background(), "cust-1", in)
		assert.True(t, IsCode(err, CodeServiceUnavailable))
	})

	t.Run("past date is rejected", func(t *testing.T) {
		svc := newTestBookingService(
			newFakeServiceRepo(activeService()),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		_, err := svc.Create(context.Background(), "cust-1", CreateInput{
			ServiceID: "svc-1", Date: "2026-02-09", TimeSlot: "14:00",
		})
		assert.True(t, IsCode(err, CodePastDateTime))
	})

	t.Run("earlier slot today is rejected", func(t *testing.T) {
		svc := newTestBookingService(
			newFakeServiceRepo(activeService()),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		_, err := svc.Create(context.Background(), "cust-1", CreateInput{
			ServiceID: "svc-1", Date: "2026-02-10", TimeSlot: "08:00",
		})
		assert.True(t, IsCode(err, CodePastDateTime))
	})

	t.Run("occupied slot is rejected", func(t *testing.T) {
		taken := &models.Booking{
			ID: "b-1", ServiceID: "svc-1",
			Date: "2026-02-15", TimeSlot: "14:00",
			Status: models.BookingConfirmed, SlotHeld: true,
		}
		svc := newTestBookingService(
			newFakeServiceRepo(activeService()),
			newFakeBookingRepo(taken),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		_, err := svc.Create(context.Background(), "cust-1", in)
		assert.True(t, IsCode(err, CodeSlotConflict))
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		cancelled := &models.Booking{
			ID: "b-1", ServiceID: "svc-1",
			Date: "2026-02-15", TimeSlot: "14:00",
			Status: models.BookingCancelled, SlotHeld: false,
		}
		svc := newTestBookingService(
			newFakeServiceRepo(activeService()),
			newFakeBookingRepo(cancelled),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		b, err := svc.Create(context.Background(), "cust-1", in)
		require.NoError(t, err)
		assert.Equal(t, models.BookingPending, b.Status)
	})

	t.Run("inactive service wins over past date", func(t *testing.T) {
		inactive := activeService()
		inactive.Status = models.ServiceInactive
		svc := newTestBookingService(
			newFakeServiceRepo(inactive),
			newFakeBookingRepo(),
			newFakeUserRepo(testCustomer()),
			nil,
		)

		// Both checks would fail; the service check runs first.
		_, err := svc.Create(context.Background(), "cust-1", CreateInput{
			ServiceID: "svc-1", Date: "2026-01-01", TimeSlot: "10:00",
		})
		assert.True(t, IsCode(err, CodeServiceUnavailable))
	})
}
