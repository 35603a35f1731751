package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	attendanceRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/attendance"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/attendance"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

func attendanceErrStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "Attendance record not found", "")
	case errors.Is(err, attendance.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, "Staff member not found", "")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, attendance.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONInternalError(c, "Attendance operation failed", err)
	}
}

// CheckInHandler records a staff check-in. Admin only.
func CheckInHandler(svc attendance.AttendanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in attendance.CheckInInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		rec, err := svc.CheckIn(c.Request.Context(), in)
		if err != nil {
			attendanceErrStatus(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

// CheckOutHandler stamps a check-out time on a record. Admin only.
func CheckOutHandler(svc attendance.AttendanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			CheckOutTime string `json:"check_out_time"`
		}
		// Body is optional: an empty body means "now".
		_ = c.ShouldBindJSON(&body)

		rec, err := svc.CheckOut(c.Request.Context(), c.Param("id"), body.CheckOutTime)
		if err != nil {
			attendanceErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// ListAttendanceHandler lists attendance records, filtered by ?date=,
// ?staff_id=, ?start_date= and ?end_date=. Admin only.
func ListAttendanceHandler(svc attendance.AttendanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := attendanceRepo.ListFilter{
			Date:      c.Query("date"),
			StaffID:   c.Query("staff_id"),
			StartDate: c.Query("start_date"),
			EndDate:   c.Query("end_date"),
		}
		records, err := svc.List(c.Request.Context(), f)
		if err != nil {
			attendanceErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// GetAttendanceHandler returns one attendance record. Admin only.
func GetAttendanceHandler(svc attendance.AttendanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			attendanceErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// UpdateAttendanceHandler patches an attendance record. Admin only.
func UpdateAttendanceHandler(svc attendance.AttendanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in attendance.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		rec, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			attendanceErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
