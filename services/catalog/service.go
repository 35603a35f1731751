package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/akhilesh-av/Salon-akhil-freelance/database/repository"
	bookingRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	discountRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/discount"
	serviceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/service"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidInput    = errors.New("invalid service input")
)

const (
	activeCatalogKey = "catalog:active"
	catalogCacheTTL  = 5 * time.Minute
)

// CreateServiceInput is the admin payload for creating a service.
type CreateServiceInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	Status      string  `json:"status"`
}

// UpdateServiceInput carries partial updates; nil fields are untouched.
type UpdateServiceInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	Duration    *int     `json:"duration"`
	Status      *string  `json:"status"`
}

// DeleteResult reports how a delete request was honoured: services with
// live bookings are deactivated instead of removed.
type DeleteResult struct {
	Deleted     bool   `json:"deleted"`
	Deactivated bool   `json:"deactivated"`
	Message     string `json:"message"`
}

// CatalogService manages the service catalog and its public,
// discount-enriched read side.
type CatalogService interface {
	Create(ctx context.Context, in CreateServiceInput) (*models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	GetView(ctx context.Context, id string, onDate string) (*models.ServiceView, error)
	List(ctx context.Context, status string) ([]models.Service, error)
	ListActiveViews(ctx context.Context, onDate string) ([]models.ServiceView, error)
	Update(ctx context.Context, id string, in UpdateServiceInput) (*models.Service, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type DefaultCatalogService struct {
	Services  serviceRepo.ServiceRepository
	Discounts discountRepo.DiscountRepository
	Bookings  bookingRepo.BookingRepository
}

func (s *DefaultCatalogService) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if in.BasePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrInvalidInput)
	}
	if in.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = models.ServiceActive
	}
	if status != models.ServiceActive && status != models.ServiceInactive {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	now := time.Now().UTC()
	svc := &models.Service{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		BasePrice:   in.BasePrice,
		Duration:    in.Duration,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Services.Insert(ctx, svc); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return svc, nil
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Services.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	return svc, err
}

// GetView returns the service with the discount in effect on onDate folded in.
func (s *DefaultCatalogService) GetView(ctx context.Context, id, onDate string) (*models.ServiceView, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := s.enrich(ctx, *svc, onDate)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *DefaultCatalogService) List(ctx context.Context, status string) ([]models.Service, error) {
	return s.Services.List(ctx, status)
}

// ListActiveViews is the public catalog: active services with today's
// discounts applied. Results are cached in Redis for a short TTL.
func (s *DefaultCatalogService) ListActiveViews(ctx context.Context, onDate string) ([]models.ServiceView, error) {
	if views, ok := s.readCache(ctx, onDate); ok {
		return views, nil
	}

	services, err := s.Services.List(ctx, models.ServiceActive)
	if err != nil {
		return nil, err
	}
	views := make([]models.ServiceView, 0, len(services))
	for _, svc := range services {
		view, err := s.enrich(ctx, svc, onDate)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	s.writeCache(ctx, onDate, views)
	return views, nil
}

func (s *DefaultCatalogService) Update(ctx context.Context, id string, in UpdateServiceInput) (*models.Service, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		set["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.BasePrice != nil {
		if *in.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: base price must be positive", ErrInvalidInput)
		}
		set["base_price"] = *in.BasePrice
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		set["duration"] = *in.Duration
	}
	if in.Status != nil {
		if *in.Status != models.ServiceActive && *in.Status != models.ServiceInactive {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		set["status"] = *in.Status
	}

	svc, err := s.Services.Update(ctx, id, set)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return svc, nil
}

// Delete removes a service. A service with Pending or Confirmed
// bookings is deactivated instead, preserving booking history.
func (s *DefaultCatalogService) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	active, err := s.Bookings.CountActiveForService(ctx, id)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		if _, err := s.Services.Update(ctx, id, bson.M{
			"status":     models.ServiceInactive,
			"updated_at": time.Now().UTC(),
		}); err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
		return &DeleteResult{
			Deactivated: true,
			Message:     "service has active bookings and was deactivated instead of deleted",
		}, nil
	}

	if err := s.Services.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := s.Discounts.DeleteByService(ctx, id); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return &DeleteResult{Deleted: true, Message: "service deleted"}, nil
}

func (s *DefaultCatalogService) enrich(ctx context.Context, svc models.Service, onDate string) (models.ServiceView, error) {
	view := models.ServiceView{Service: svc, FinalPrice: svc.BasePrice}
	discounts, err := s.Discounts.FindActiveOn(ctx, svc.ID, onDate)
	if err != nil {
		return view, err
	}
	if len(discounts) == 0 {
		return view, nil
	}
	pick := discounts[0]
	for _, d := range discounts[1:] {
		if d.CreatedAt.After(pick.CreatedAt) {
			pick = d
		}
	}
	view.HasDiscount = true
	view.DiscountType = pick.DiscountType
	view.DiscountValue = pick.DiscountValue
	view.FinalPrice = booking.DiscountedPrice(svc.BasePrice, pick.DiscountType, pick.DiscountValue)
	return view, nil
}

func cacheKey(onDate string) string {
	return activeCatalogKey + ":" + onDate
}

func (s *DefaultCatalogService) readCache(ctx context.Context, onDate string) ([]models.ServiceView, bool) {
	client := utils.GetCacheClient()
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, cacheKey(onDate)).Bytes()
	if err != nil {
		return nil, false
	}
	var views []models.ServiceView
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, false
	}
	return views, true
}

func (s *DefaultCatalogService) writeCache(ctx context.Context, onDate string, views []models.ServiceView) {
	client := utils.GetCacheClient()
	if client == nil {
		return
	}
	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := client.Set(ctx, cacheKey(onDate), raw, catalogCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache write failed", zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidateCache(ctx context.Context) {
	client := utils.GetCacheClient()
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, activeCatalogKey+":*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
