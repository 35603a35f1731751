package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhilesh-av/Salon-akhil-freelance/services/discount"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

func discountErrStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, discount.ErrDiscountNotFound):
		utils.JSONError(c, http.StatusNotFound, "Discount not found", "")
	case errors.Is(err, discount.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "Service not found", "")
	case errors.Is(err, discount.ErrWindowOverlap):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, discount.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		utils.JSONInternalError(c, "Discount operation failed", err)
	}
}

// CreateDiscountHandler creates a discount window. Admin only.
func CreateDiscountHandler(svc discount.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in discount.CreateDiscountInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			discountErrStatus(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListDiscountsHandler lists discounts, filtered by ?service_id= and
// ?is_active=. Admin only.
func ListDiscountsHandler(svc discount.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var isActive *bool
		switch c.Query("is_active") {
		case "true":
			v := true
			isActive = &v
		case "false":
			v := false
			isActive = &v
		}

		discounts, err := svc.List(c.Request.Context(), c.Query("service_id"), isActive)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load discounts", err)
			return
		}
		c.JSON(http.StatusOK, discounts)
	}
}

// GetDiscountHandler returns one discount. Admin only.
func GetDiscountHandler(svc discount.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			discountErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// UpdateDiscountHandler applies a partial update. Admin only.
func UpdateDiscountHandler(svc discount.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in discount.UpdateDiscountInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			discountErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteDiscountHandler disables a discount. Admin only.
func DeleteDiscountHandler(svc discount.DiscountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			discountErrStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount disabled"})
	}
}
