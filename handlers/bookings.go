package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/middleware"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/booking"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// bookingErrStatus maps booking domain error codes to HTTP statuses.
func bookingErrStatus(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeServiceUnavailable, booking.CodePastDateTime, booking.CodeInvalidStatus:
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case booking.CodeSlotConflict, booking.CodeIllegalTransition:
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case booking.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	default:
		utils.JSONInternalError(c, "Booking operation failed", err)
	}
}

// CreateBookingHandler admits a new booking for the authenticated customer.
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in booking.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		if !utils.ValidDate(in.Date) {
			utils.JSONError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD", "")
			return
		}
		if !utils.ValidTimeSlot(in.TimeSlot) {
			utils.JSONError(c, http.StatusBadRequest, "Time slot must be HH:MM", "")
			return
		}

		customerID := c.GetString(middleware.ContextUserID)
		created, err := svc.Create(c.Request.Context(), customerID, in)
		if err != nil {
			bookingErrStatus(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListMyBookingsHandler lists the caller's bookings, optionally
// filtered by ?status=.
func ListMyBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetString(middleware.ContextUserID)
		bookings, err := svc.ListForCustomer(c.Request.Context(), customerID, c.Query("status"))
		if err != nil {
			utils.JSONInternalError(c, "Failed to load bookings", err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// GetMyBookingHandler returns one of the caller's bookings.
func GetMyBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			bookingErrStatus(c, err)
			return
		}
		if b.CustomerID != c.GetString(middleware.ContextUserID) {
			utils.JSONError(c, http.StatusForbidden, "Booking belongs to another customer", "")
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CancelMyBookingHandler cancels one of the caller's bookings.
func CancelMyBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetString(middleware.ContextUserID)
		cancelled, err := svc.CancelByCustomer(c.Request.Context(), customerID, c.Param("id"))
		if err != nil {
			bookingErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, cancelled)
	}
}

// ListBookingsHandler lists all bookings with optional ?status=, ?date=
// and ?service_id= filters. Admin only.
func ListBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := bookingRepo.ListFilter{
			Status:    c.Query("status"),
			Date:      c.Query("date"),
			ServiceID: c.Query("service_id"),
		}
		bookings, err := svc.List(c.Request.Context(), f)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load bookings", err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// GetBookingHandler returns any booking by id. Admin only.
func GetBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			bookingErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// UpdateBookingStatusHandler drives the booking state machine. Admin only.
func UpdateBookingStatusHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Status is required", err.Error())
			return
		}

		updated, err := svc.Transition(c.Request.Context(), c.Param("id"), body.Status,
			c.GetString(middleware.ContextRole), c.GetString(middleware.ContextUserID))
		if err != nil {
			bookingErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
