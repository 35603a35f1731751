package booking

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	bookingRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// In-memory repository fakes backing the booking service tests.

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: map[string]*models.Service{}}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) Insert(ctx context.Context, s *models.Service) error {
	r.services[s.ID] = s
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, status string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, id string, set bson.M) (*models.Service, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) Count(ctx context.Context, status string) (int64, error) {
	list, _ := r.List(ctx, status)
	return int64(len(list)), nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Insert(ctx context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil || u.Role != models.RoleCustomer {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetAdminByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Role == models.RoleAdmin {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == models.RoleCustomer {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	if b.SlotHeld {
		for _, other := range r.bookings {
			if other.SlotHeld && other.ServiceID == b.ServiceID &&
				other.Date == b.Date && other.TimeSlot == b.TimeSlot {
				return repository.ErrDuplicate
			}
		}
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindSlotHolder(ctx context.Context, serviceID, date, timeSlot string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ServiceID == serviceID && b.Date == date && b.TimeSlot == timeSlot &&
			b.Status != models.BookingCancelled {
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, from, to string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return nil, repository.ErrNotFound
	}
	b.Status = to
	b.SlotHeld = to != models.BookingCancelled
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID && (status == "" || b.Status == status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) List(ctx context.Context, f bookingRepo.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Date != "" && b.Date != f.Date {
			continue
		}
		if f.ServiceID != "" && b.ServiceID != f.ServiceID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Recent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return r.List(ctx, bookingRepo.ListFilter{})
}

func (r *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	list, _ := r.List(ctx, bookingRepo.ListFilter{Status: status})
	return int64(len(list)), nil
}

func (r *fakeBookingRepo) CountOnDate(ctx context.Context, date string) (int64, error) {
	list, _ := r.List(ctx, bookingRepo.ListFilter{Date: date})
	return int64(len(list)), nil
}

func (r *fakeBookingRepo) CountActiveForService(ctx context.Context, serviceID string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.ServiceID == serviceID &&
			(b.Status == models.BookingPending || b.Status == models.BookingConfirmed) {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var sum float64
	for _, b := range r.bookings {
		if b.Status == models.BookingCompleted {
			sum += b.FinalPrice
		}
	}
	return sum, nil
}

func (r *fakeBookingRepo) RevenueSince(ctx context.Context, date string) (float64, error) {
	var sum float64
	for _, b := range r.bookings {
		if b.Status == models.BookingCompleted && strings.Compare(b.Date, date) >= 0 {
			sum += b.FinalPrice
		}
	}
	return sum, nil
}

func (r *fakeBookingRepo) RevenueByService(ctx context.Context) ([]models.ServiceRevenue, error) {
	return nil, nil
}

func (r *fakeBookingRepo) BookingsByDate(ctx context.Context, since string) ([]models.DailyBookings, error) {
	return nil, nil
}

func (r *fakeBookingRepo) TopServices(ctx context.Context, limit int64) ([]models.TopService, error) {
	return nil, nil
}

func (r *fakeBookingRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeDiscountRepo struct {
	discounts []*models.Discount
}

func (r *fakeDiscountRepo) Insert(ctx context.Context, d *models.Discount) error {
	r.discounts = append(r.discounts, d)
	return nil
}

func (r *fakeDiscountRepo) GetByID(ctx context.Context, id string) (*models.Discount, error) {
	for _, d := range r.discounts {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDiscountRepo) List(ctx context.Context, serviceID string, isActive *bool) ([]models.Discount, error) {
	var out []models.Discount
	for _, d := range r.discounts {
		if serviceID != "" && d.ServiceID != serviceID {
			continue
		}
		if isActive != nil && d.IsActive != *isActive {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDiscountRepo) Update(ctx context.Context, id string, set bson.M) (*models.Discount, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeDiscountRepo) Disable(ctx context.Context, id string) error {
	for _, d := range r.discounts {
		if d.ID == id {
			d.IsActive = false
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeDiscountRepo) FindActiveOn(ctx context.Context, serviceID, date string) ([]models.Discount, error) {
	var out []models.Discount
	for _, d := range r.discounts {
		if d.ServiceID == serviceID && d.IsActive &&
			d.StartDate <= date && date <= d.EndDate {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDiscountRepo) FindOverlapping(ctx context.Context, serviceID, start, end, excludeID string) (*models.Discount, error) {
	for _, d := range r.discounts {
		if d.ServiceID == serviceID && d.IsActive && d.ID != excludeID &&
			d.StartDate <= end && start <= d.EndDate {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDiscountRepo) DeleteByService(ctx context.Context, serviceID string) error {
	kept := r.discounts[:0]
	for _, d := range r.discounts {
		if d.ServiceID != serviceID {
			kept = append(kept, d)
		}
	}
	r.discounts = kept
	return nil
}

func (r *fakeDiscountRepo) CountActiveOn(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, d := range r.discounts {
		if d.IsActive && d.StartDate <= date && date <= d.EndDate {
			n++
		}
	}
	return n, nil
}

func (r *fakeDiscountRepo) DeactivateExpired(ctx context.Context, today string) (int64, error) {
	var n int64
	for _, d := range r.discounts {
		if d.IsActive && d.EndDate < today {
			d.IsActive = false
			n++
		}
	}
	return n, nil
}
