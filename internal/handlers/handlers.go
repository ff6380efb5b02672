package handlers

import (
	"errors"
	"net/http"

	"cinebook/internal/apperrors"
	"cinebook/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// Response is the uniform envelope: a success flag, a human-readable
// message and either a data payload or an error detail.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, message string, count int, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Count: &count, Data: data})
}

// fail maps an application error to its status code. The underlying cause
// is included as the error detail only for server-side failures; validation
// and credential messages stand alone.
func fail(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.Internal, "Internal server error", err)
	}

	resp := Response{Success: false, Message: appErr.Message}
	if appErr.Err != nil && statusFor(appErr.Kind) >= 500 {
		resp.Error = appErr.Err.Error()
	}

	c.JSON(statusFor(appErr.Kind), resp)
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.Validation:
		return http.StatusBadRequest
	case apperrors.Conflict:
		// Duplicate emails surface as 400, not 409.
		return http.StatusBadRequest
	case apperrors.Unauthorized:
		return http.StatusUnauthorized
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
