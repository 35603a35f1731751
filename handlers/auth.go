package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhilesh-av/Salon-akhil-freelance/middleware"
	"github.com/akhilesh-av/Salon-akhil-freelance/services/auth"
	"github.com/akhilesh-av/Salon-akhil-freelance/utils"
)

// RegisterHandler handles customer self-registration.
func RegisterHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in auth.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		result, err := svc.RegisterCustomer(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				utils.JSONError(c, http.StatusConflict, "Email already registered", "")
				return
			}
			if errors.Is(err, auth.ErrInvalidEmail) {
				utils.JSONError(c, http.StatusBadRequest, "Invalid email address", "")
				return
			}
			utils.JSONInternalError(c, "Registration failed", err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// LoginHandler handles customer login by email.
func LoginHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in auth.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" {
			utils.JSONError(c, http.StatusBadRequest, "Email and password are required", "")
			return
		}

		result, err := svc.LoginCustomer(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
				return
			}
			utils.JSONInternalError(c, "Login failed", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// AdminLoginHandler handles admin login by username.
func AdminLoginHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in auth.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil || in.Username == "" {
			utils.JSONError(c, http.StatusBadRequest, "Username and password are required", "")
			return
		}

		result, err := svc.LoginAdmin(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid username or password", "")
				return
			}
			utils.JSONInternalError(c, "Login failed", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// MeHandler returns the authenticated caller's profile.
func MeHandler(svc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		user, err := svc.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				utils.JSONError(c, http.StatusNotFound, "User not found", "")
				return
			}
			utils.JSONInternalError(c, "Failed to load profile", err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
