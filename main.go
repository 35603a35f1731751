package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akhilesh-av/Salon-akhil-freelance/config"
	appcron "github.com/akhilesh-av/Salon-akhil-freelance/cron"
	"github.com/akhilesh-av/Salon-akhil-freelance/database"
	attendanceRepoPkg "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/attendance"
	bookingRepoPkg "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	discountRepoPkg "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/discount"
	serviceRepoPkg "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/service"
	staffRepoPkg "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/staff"
	userRepoPkg "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/user"
	"github.com/akhilesh-av/Salon-akhil-freelance/routes"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/attendance"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/auth"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/catalog"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/dashboard"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/discount"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/notification"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	db := database.Get()

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	discountRepo := discountRepoPkg.NewMongoDiscountRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	staffRepo := staffRepoPkg.NewMongoStaffRepo(db)
	attendanceRepo := attendanceRepoPkg.NewMongoAttendanceRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndexes()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := attendanceRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure attendance indexes: %v", err)
	}

	// services.
	var notifier notification.Notifier = notification.NoopNotifier{}
	if smtp := notification.NewSMTPNotifier(); smtp != nil {
		notifier = smtp
	}

	authService := &auth.DefaultAuthService{Users: userRepo}

	pricing := &booking.PricingResolver{Discounts: discountRepo}
	bookingService := &booking.DefaultBookingService{
		Services: serviceRepo,
		Bookings: bookingRepo,
		Users:    userRepo,
		Pricing:  pricing,
		Notifier: notifier,
	}

	catalogService := &catalog.DefaultCatalogService{
		Services:  serviceRepo,
		Discounts: discountRepo,
		Bookings:  bookingRepo,
	}

	discountService := &discount.DefaultDiscountService{
		Discounts: discountRepo,
		Services:  serviceRepo,
	}

	staffService := &staff.DefaultStaffService{Staff: staffRepo}

	attendanceService := &attendance.DefaultAttendanceService{
		Attendance: attendanceRepo,
		Staff:      staffRepo,
	}

	dashboardService := &dashboard.DefaultDashboardService{
		Bookings:  bookingRepo,
		Services:  serviceRepo,
		Staff:     staffRepo,
		Users:     userRepo,
		Discounts: discountRepo,
	}

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelBoot()
	if err := authService.EnsureDefaultAdmin(bootCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed default admin: %v", err)
	}

	sweeper := appcron.StartDiscountSweeper(discountRepo)
	defer sweeper.Stop()

	router := routes.SetupRouter(routes.Deps{
		Auth:       authService,
		Catalog:    catalogService,
		Discounts:  discountService,
		Bookings:   bookingService,
		Staff:      staffService,
		Attendance: attendanceService,
		Dashboard:  dashboardService,
	})

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
