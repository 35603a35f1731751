package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	staffRepo "github.com/akhilesh-av/Salon-akhil-freelance/database/repository/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/staff"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

func staffErrStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, staff.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, "Staff member not found", "")
	case errors.Is(err, staff.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONInternalError(c, "Staff operation failed", err)
	}
}

// CreateStaffHandler adds a staff member. Admin only.
func CreateStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in staff.CreateStaffInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			staffErrStatus(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListStaffHandler lists staff, filtered by ?status= and
// ?include_inactive=. Admin only.
func ListStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := staffRepo.ListFilter{
			Status:          c.Query("status"),
			IncludeInactive: c.Query("include_inactive") == "true",
		}
		members, err := svc.List(c.Request.Context(), f)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load staff", err)
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

// GetStaffHandler returns one staff member. Admin only.
func GetStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			staffErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// UpdateStaffHandler applies a partial update. Admin only.
func UpdateStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in staff.UpdateStaffInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			staffErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteStaffHandler soft-deletes a staff member. Admin only.
func DeleteStaffHandler(svc staff.StaffService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			staffErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
	}
}
