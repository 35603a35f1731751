package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/akhilesh-av/Salon-akhil-freelance/services/dashboard"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// DashboardSummaryHandler returns the top-line counters. Admin only.
func DashboardSummaryHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			utils.JSONInternalError(c, "Failed to load dashboard summary", err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// DashboardStatsHandler returns the extended statistics. Admin only.
func DashboardStatsHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			utils.JSONInternalError(c, "Failed to load dashboard stats", err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// RecentBookingsHandler returns the latest bookings (?limit=). Admin only.
func RecentBookingsHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
		bookings, err := svc.RecentBookings(c.Request.Context(), limit)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load recent bookings", err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// RevenueByServiceHandler returns the per-service revenue breakdown.
// Admin only.
func RevenueByServiceHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.RevenueByService(c.Request.Context())
		if err != nil {
			utils.JSONInternalError(c, "Failed to load revenue breakdown", err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// BookingsByDateHandler returns the daily bookings series (?days=).
// Admin only.
func BookingsByDateHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
		series, err := svc.BookingsByDate(c.Request.Context(), days)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load bookings series", err)
			return
		}
		c.JSON(http.StatusOK, series)
	}
}

// TopServicesHandler returns the most-booked services (?limit=). Admin only.
func TopServicesHandler(svc dashboard.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "5"), 10, 64)
		rows, err := svc.TopServices(c.Request.Context(), limit)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load top services", err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
