package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akhilesh-av/Salon-akhil-freelance/services/catalog"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// ListPublicServicesHandler returns active services with today's
// discounts folded in. No authentication required.
func ListPublicServicesHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		today := time.Now().Format(utils.DateLayout)
		views, err := svc.ListActiveViews(c.Request.Context(), today)
		if err != nil {
			utils.JSONInternalError(c, "Failed to load services", err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// GetPublicServiceHandler returns one service with today's discount.
func GetPublicServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		today := time.Now().Format(utils.DateLayout)
		view, err := svc.GetView(c.Request.Context(), c.Param("id"), today)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Service not found", "")
				return
			}
			utils.JSONInternalError(c, "Failed to load service", err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// CreateServiceHandler creates a catalog service. Admin only.
func CreateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.CreateServiceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, catalog.ErrInvalidInput) {
				utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
				return
			}
			utils.JSONInternalError(c, "Failed to create service", err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListServicesHandler lists all services, optionally filtered by
// ?status=. Admin only.
func ListServicesHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := svc.List(c.Request.Context(), c.Query("status"))
		if err != nil {
			utils.JSONInternalError(c, "Failed to load services", err)
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// GetServiceHandler returns one raw service record. Admin only.
func GetServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		service, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Service not found", "")
				return
			}
			utils.JSONInternalError(c, "Failed to load service", err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

// UpdateServiceHandler applies a partial update. Admin only.
func UpdateServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.UpdateServiceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrServiceNotFound):
				utils.JSONError(c, http.StatusNotFound, "Service not found", "")
			case errors.Is(err, catalog.ErrInvalidInput):
				utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			default:
				utils.JSONInternalError(c, "Failed to update service", err)
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteServiceHandler removes a service, or deactivates it when it
// still has live bookings. Admin only.
func DeleteServiceHandler(svc catalog.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Service not found", "")
				return
			}
			utils.JSONInternalError(c, "Failed to delete service", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
