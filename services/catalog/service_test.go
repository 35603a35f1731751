package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	bookingRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

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
	s, ok := r.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := set["title"].(string); ok {
		s.Title = v
	}
	if v, ok := set["base_price"].(float64); ok {
		s.BasePrice = v
	}
	if v, ok := set["duration"].(int); ok {
		s.Duration = v
	}
	if v, ok := set["status"].(string); ok {
		s.Status = v
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) Count(ctx context.Context, status string) (int64, error) {
	list, _ := r.List(ctx, status)
	return int64(len(list)), nil
}

type fakeDiscountRepo struct {
	discounts       []*models.Discount
	deletedServices []string
}

func (r *fakeDiscountRepo) Insert(ctx context.Context, d *models.Discount) error {
	r.discounts = append(r.discounts, d)
	return nil
}

func (r *fakeDiscountRepo) GetByID(ctx context.Context, id string) (*models.Discount, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeDiscountRepo) List(ctx context.Context, serviceID string, isActive *bool) ([]models.Discount, error) {
	return nil, nil
}

func (r *fakeDiscountRepo) Update(ctx context.Context, id string, set bson.M) (*models.Discount, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeDiscountRepo) Disable(ctx context.Context, id string) error { return nil }

func (r *fakeDiscountRepo) FindActiveOn(ctx context.Context, serviceID, date string) ([]models.Discount, error) {
	var out []models.Discount
	for _, d := range r.discounts {
		if d.ServiceID == serviceID && d.IsActive && d.StartDate <= date && date <= d.EndDate {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDiscountRepo) FindOverlapping(ctx context.Context, serviceID, start, end, excludeID string) (*models.Discount, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeDiscountRepo) DeleteByService(ctx context.Context, serviceID string) error {
	r.deletedServices = append(r.deletedServices, serviceID)
	return nil
}

func (r *fakeDiscountRepo) CountActiveOn(ctx context.Context, date string) (int64, error) {
	return 0, nil
}

func (r *fakeDiscountRepo) DeactivateExpired(ctx context.Context, today string) (int64, error) {
	return 0, nil
}

// fakeBookingCounter only implements the single booking-repo method the
// catalog uses; the rest panic if reached.
type fakeBookingCounter struct {
	bookingRepo.BookingRepository
	activeByService map[string]int64
}

func (r *fakeBookingCounter) CountActiveForService(ctx context.Context, serviceID string) (int64, error) {
	return r.activeByService[serviceID], nil
}

func haircut() *models.Service {
	return &models.Service{
		ID:        "svc-1",
		Title:     "Haircut",
		BasePrice: 25.00,
		Duration:  30,
		Status:    models.ServiceActive,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestCatalog(services *fakeServiceRepo, discounts *fakeDiscountRepo, active map[string]int64) *DefaultCatalogService {
	if discounts == nil {
		discounts = &fakeDiscountRepo{}
	}
	return &DefaultCatalogService{
		Services:  services,
		Discounts: discounts,
		Bookings:  &fakeBookingCounter{activeByService: active},
	}
}

func TestCreateService(t *testing.T) {
	svc := newTestCatalog(newFakeServiceRepo(), nil, nil)

	created, err := svc.Create(context.Background(), CreateServiceInput{
		Title: "Manicure", BasePrice: 18.50, Duration: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceActive, created.Status, "defaults to active")

	_, err = svc.Create(context.Background(), CreateServiceInput{Title: "Free", BasePrice: 0, Duration: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateServiceInput{Title: "Instant", BasePrice: 10, Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateServiceInput{Title: "Odd", BasePrice: 10, Duration: 30, Status: "Paused"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceViews(t *testing.T) {
	discounts := &fakeDiscountRepo{discounts: []*models.Discount{
		{
			ID: "d-1", ServiceID: "svc-1",
			DiscountType: models.DiscountPercentage, DiscountValue: 20,
			StartDate: "2026-02-01", EndDate: "2026-02-28",
			IsActive: true,
		},
	}}
	svc := newTestCatalog(newFakeServiceRepo(haircut()), discounts, nil)

	t.Run("discount in effect is folded in", func(t *testing.T) {
		view, err := svc.GetView(context.Background(), "svc-1", "2026-02-15")
		require.NoError(t, err)
		assert.True(t, view.HasDiscount)
		assert.Equal(t, models.DiscountPercentage, view.DiscountType)
		assert.InDelta(t, 20.00, view.FinalPrice, 0.001)
		assert.InDelta(t, 25.00, view.BasePrice, 0.001)
	})

	t.Run("no discount outside the window", func(t *testing.T) {
		view, err := svc.GetView(context.Background(), "svc-1", "2026-03-05")
		require.NoError(t, err)
		assert.False(t, view.HasDiscount)
		assert.InDelta(t, 25.00, view.FinalPrice, 0.001)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := svc.GetView(context.Background(), "missing", "2026-02-15")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestDeleteService(t *testing.T) {
	t.Run("deactivates instead of deleting with live bookings", func(t *testing.T) {
		services := newFakeServiceRepo(haircut())
		svc := newTestCatalog(services, nil, map[string]int64{"svc-1": 2})

		result, err := svc.Delete(context.Background(), "svc-1")
		require.NoError(t, err)
		assert.True(t, result.Deactivated)
		assert.False(t, result.Deleted)

		kept, err := services.GetByID(context.Background(), "svc-1")
		require.NoError(t, err)
		assert.Equal(t, models.ServiceInactive, kept.Status)
	})

	t.Run("hard-deletes and sweeps discounts without live bookings", func(t *testing.T) {
		services := newFakeServiceRepo(haircut())
		discounts := &fakeDiscountRepo{}
		svc := newTestCatalog(services, discounts, nil)

		result, err := svc.Delete(context.Background(), "svc-1")
		require.NoError(t, err)
		assert.True(t, result.Deleted)

		_, err = services.GetByID(context.Background(), "svc-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Equal(t, []string{"svc-1"}, discounts.deletedServices)
	})

	t.Run("unknown service", func(t *testing.T) {
		svc := newTestCatalog(newFakeServiceRepo(), nil, nil)
		_, err := svc.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
