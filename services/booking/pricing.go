package booking

import (
	"context"
	"math"

	discountRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/discount"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
)

// PricingResolver computes the effective price of a service on a given
// date against the active discount windows. It is a pure function of the
// service and the discounts read for that date.
type PricingResolver struct {
	Discounts discountRepo.DiscountRepository
}

// ResolvePrice returns the final price for booking svc on onDate and
// whether a discount was applied.
//
// The discount-creation conflict check keeps active windows per service
// disjoint, but overlaps can still appear through concurrent writes or
// manual edits. When more than one active discount covers onDate, the
// one with the most recent created_at wins, so the outcome is
// deterministic regardless of read order.
func (p *PricingResolver) ResolvePrice(ctx context.Context, svc *models.Service, onDate string) (finalPrice float64, discountApplied bool, err error) {
	discounts, err := p.Discounts.FindActiveOn(ctx, svc.ID, onDate)
	if err != nil {
		return 0, false, err
	}
	if len(discounts) == 0 {
		return svc.BasePrice, false, nil
	}

	pick := discounts[0]
	for _, d := range discounts[1:] {
		if d.CreatedAt.After(pick.CreatedAt) {
			pick = d
		}
	}
	return DiscountedPrice(svc.BasePrice, pick.DiscountType, pick.DiscountValue), true, nil
}

// DiscountedPrice applies a percentage or flat reduction to basePrice.
// The result is floored at zero and rounded to cents.
func DiscountedPrice(basePrice float64, discountType string, discountValue float64) float64 {
	final := basePrice
	switch discountType {
	case models.DiscountPercentage:
		final = basePrice * (1 - discountValue/100)
	case models.DiscountFlat:
		final = basePrice - discountValue
	}
	if final < 0 {
		final = 0
	}
	return math.Round(final*100) / 100
}
