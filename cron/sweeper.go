package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	discountRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/discount"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// StartDiscountSweeper schedules a daily job that deactivates discounts
// whose window has closed. Expired discounts are already excluded from
// pricing by the date filter; the sweeper just keeps the collection's
// is_active flags truthful for the admin listing.
func StartDiscountSweeper(discounts discountRepo.DiscountRepository) *cron.Cron {
	c := cron.New()

	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := time.Now().Format(utils.DateLayout)
		n, err := discounts.DeactivateExpired(ctx, today)
		if err != nil {
			utils.GetLogger().Error("discount expiry sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			utils.GetLogger().Info("deactivated expired discounts", zap.Int64("count", n))
		}
	}

	// Shortly after midnight, local time.
	if _, err := c.AddFunc("5 0 * * *", sweep); err != nil {
		utils.GetLogger().Error("failed to schedule discount sweeper", zap.Error(err))
		return c
	}

	// Run once at startup to catch anything that expired while down.
	go sweep()

	c.Start()
	return c
}
