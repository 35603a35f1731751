package dashboard

import (
	"context"
	"time"

	bookingRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	discountRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/discount"
	serviceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/service"
	staffRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/staff"
	userRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/user"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// DashboardService aggregates cross-collection counters and revenue
// series for the admin overview pages.
type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
	Stats(ctx context.Context) (*models.DashboardStats, error)
	RecentBookings(ctx context.Context, limit int64) ([]models.Booking, error)
	RevenueByService(ctx context.Context) ([]models.ServiceRevenue, error)
	BookingsByDate(ctx context.Context, days int) ([]models.DailyBookings, error)
	TopServices(ctx context.Context, limit int64) ([]models.TopService, error)
}

type DefaultDashboardService struct {
	Bookings  bookingRepo.BookingRepository
	Services  serviceRepo.ServiceRepository
	Staff     staffRepo.StaffRepository
	Users     userRepo.UserRepository
	Discounts discountRepo.DiscountRepository

	Now func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultDashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var (
		sum models.DashboardSummary
		err error
	)
	today := s.now().Format(utils.DateLayout)

	if sum.TotalBookings, err = s.Bookings.CountAll(ctx); err != nil {
		return nil, err
	}
	if sum.TodaysBookings, err = s.Bookings.CountOnDate(ctx, today); err != nil {
		return nil, err
	}
	if sum.ConfirmedBookings, err = s.Bookings.CountByStatus(ctx, models.BookingConfirmed); err != nil {
		return nil, err
	}
	if sum.CompletedBookings, err = s.Bookings.CountByStatus(ctx, models.BookingCompleted); err != nil {
		return nil, err
	}
	if sum.CancelledBookings, err = s.Bookings.CountByStatus(ctx, models.BookingCancelled); err != nil {
		return nil, err
	}
	if sum.ActiveServices, err = s.Services.Count(ctx, models.ServiceActive); err != nil {
		return nil, err
	}
	if sum.ActiveStaff, err = s.Staff.CountActive(ctx); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (s *DefaultDashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		stats models.DashboardStats
		err   error
	)
	now := s.now()
	today := now.Format(utils.DateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(utils.DateLayout)

	if stats.Customers.Total, err = s.Users.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if stats.Services.Total, err = s.Services.Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.Services.Active, err = s.Services.Count(ctx, models.ServiceActive); err != nil {
		return nil, err
	}
	if stats.Staff.Active, err = s.Staff.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.Bookings.Total, err = s.Bookings.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.Bookings.Pending, err = s.Bookings.CountByStatus(ctx, models.BookingPending); err != nil {
		return nil, err
	}
	if stats.Bookings.Confirmed, err = s.Bookings.CountByStatus(ctx, models.BookingConfirmed); err != nil {
		return nil, err
	}
	if stats.Bookings.Completed, err = s.Bookings.CountByStatus(ctx, models.BookingCompleted); err != nil {
		return nil, err
	}
	if stats.Bookings.Cancelled, err = s.Bookings.CountByStatus(ctx, models.BookingCancelled); err != nil {
		return nil, err
	}
	if stats.Bookings.Today, err = s.Bookings.CountOnDate(ctx, today); err != nil {
		return nil, err
	}
	if stats.Revenue.Total, err = s.Bookings.TotalRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.Revenue.ThisMonth, err = s.Bookings.RevenueSince(ctx, monthStart); err != nil {
		return nil, err
	}
	if stats.Discounts.Active, err = s.Discounts.CountActiveOn(ctx, today); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *DefaultDashboardService) RecentBookings(ctx context.Context, limit int64) ([]models.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.Bookings.Recent(ctx, limit)
}

func (s *DefaultDashboardService) RevenueByService(ctx context.Context) ([]models.ServiceRevenue, error) {
	return s.Bookings.RevenueByService(ctx)
}

// BookingsByDate returns the per-day booking counts and revenue for the
// last `days` days (default 30).
func (s *DefaultDashboardService) BookingsByDate(ctx context.Context, days int) ([]models.DailyBookings, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := s.now().AddDate(0, 0, -days).Format(utils.DateLayout)
	return s.Bookings.BookingsByDate(ctx, since)
}

func (s *DefaultDashboardService) TopServices(ctx context.Context, limit int64) ([]models.TopService, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	return s.Bookings.TopServices(ctx, limit)
}
