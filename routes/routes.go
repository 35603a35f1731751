package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/akhilesh-av/Salon-akhil-freelance/handlers"
	"github.com/akhilesh-av/Salon-akhil-freelance/middleware"
	"github.com/akhilesh-av/Salon-akhil-freelance/models"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/attendance"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/auth"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/catalog"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/dashboard"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/discount"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// Deps bundles the services the route tree is built from.
type Deps struct {
	Auth       auth.AuthService
	Catalog    catalog.CatalogService
	Discounts  discount.DiscountService
	Bookings   booking.BookingService
	Staff      staff.StaffService
	Attendance attendance.AttendanceService
	Dashboard  dashboard.DashboardService
}

// SetupRouter builds the full gin engine with middleware and all route
// groups registered.
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	registerAuthRoutes(r, deps)
	registerPublicCatalogRoutes(r, deps)
	registerCustomerBookingRoutes(r, deps)
	registerAdminRoutes(r, deps)
	return r
}

func registerAuthRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.RegisterHandler(deps.Auth))
		api.POST("/login", handlers.LoginHandler(deps.Auth))
		api.POST("/admin/login", handlers.AdminLoginHandler(deps.Auth))

		api.GET("/me", middleware.AuthRequired(), handlers.MeHandler(deps.Auth))
	}
}

func registerPublicCatalogRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/services")
	{
		api.GET("", handlers.ListPublicServicesHandler(deps.Catalog))
		api.GET("/:id", handlers.GetPublicServiceHandler(deps.Catalog))
	}
}

func registerCustomerBookingRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleCustomer))
	{
		api.POST("", handlers.CreateBookingHandler(deps.Bookings))
		api.GET("", handlers.ListMyBookingsHandler(deps.Bookings))
		api.GET("/:id", handlers.GetMyBookingHandler(deps.Bookings))
		api.PUT("/:id/cancel", handlers.CancelMyBookingHandler(deps.Bookings))
	}
}

func registerAdminRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/admin")
	api.Use(middleware.AuthRequired(), middleware.AdminOnly())
	{
		services := api.Group("/services")
		{
			services.POST("", handlers.CreateServiceHandler(deps.Catalog))
			services.GET("", handlers.ListServicesHandler(deps.Catalog))
			services.GET("/:id", handlers.GetServiceHandler(deps.Catalog))
			services.PUT("/:id", handlers.UpdateServiceHandler(deps.Catalog))
			services.DELETE("/:id", handlers.DeleteServiceHandler(deps.Catalog))
		}

		discounts := api.Group("/discounts")
		{
			discounts.POST("", handlers.CreateDiscountHandler(deps.Discounts))
			discounts.GET("", handlers.ListDiscountsHandler(deps.Discounts))
			discounts.GET("/:id", handlers.GetDiscountHandler(deps.Discounts))
			discounts.PUT("/:id", handlers.UpdateDiscountHandler(deps.Discounts))
			discounts.DELETE("/:id", handlers.DeleteDiscountHandler(deps.Discounts))
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", handlers.ListBookingsHandler(deps.Bookings))
			bookings.GET("/:id", handlers.GetBookingHandler(deps.Bookings))
			bookings.PUT("/:id/status", handlers.UpdateBookingStatusHandler(deps.Bookings))
		}

		staffGroup := api.Group("/staff")
		{
			staffGroup.POST("", handlers.CreateStaffHandler(deps.Staff))
			staffGroup.GET("", handlers.ListStaffHandler(deps.Staff))
			staffGroup.GET("/:id", handlers.GetStaffHandler(deps.Staff))
			staffGroup.PUT("/:id", handlers.UpdateStaffHandler(deps.Staff))
			staffGroup.DELETE("/:id", handlers.DeleteStaffHandler(deps.Staff))
		}

		attendanceGroup := api.Group("/attendance")
		{
			attendanceGroup.POST("/check-in", handlers.CheckInHandler(deps.Attendance))
			attendanceGroup.PUT("/:id/check-out", handlers.CheckOutHandler(deps.Attendance))
			attendanceGroup.GET("", handlers.ListAttendanceHandler(deps.Attendance))
			attendanceGroup.GET("/:id", handlers.GetAttendanceHandler(deps.Attendance))
			attendanceGroup.PUT("/:id", handlers.UpdateAttendanceHandler(deps.Attendance))
		}

		dashboardGroup := api.Group("/dashboard")
		{
			dashboardGroup.GET("/summary", handlers.DashboardSummaryHandler(deps.Dashboard))
			dashboardGroup.GET("/stats", handlers.DashboardStatsHandler(deps.Dashboard))
			dashboardGroup.GET("/recent-bookings", handlers.RecentBookingsHandler(deps.Dashboard))
			dashboardGroup.GET("/revenue-by-service", handlers.RevenueByServiceHandler(deps.Dashboard))
			dashboardGroup.GET("/bookings-by-date", handlers.BookingsByDateHandler(deps.Dashboard))
			dashboardGroup.GET("/top-services", handlers.TopServicesHandler(deps.Dashboard))
		}
	}
}
