package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
	"storefront-be/internal/middleware"
	"storefront-be/internal/service"
)

// statusFor maps the error taxonomy onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...}. Internal failures are logged and the
// message is hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"err", err,
		)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// currentCustomer loads the customer identified by the auth middleware.
// It writes the error response itself when it returns false.
func currentCustomer(c *gin.Context, authService service.AuthService) (*entities.Customer, bool) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	customer, err := authService.GetAuthenticatedCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return customer, true
}
