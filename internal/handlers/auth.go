package handlers

import (
	"net/http"

	"cinebook/internal/apperrors"
	"cinebook/internal/models"

	"github.com/gin-gonic/gin"
)

// Register - POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, req.Validate(), err)
		return
	}

	resp, err := h.services.Users.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, "User registered successfully", resp)
}

// Login - POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, req.Validate(), err)
		return
	}

	resp, err := h.services.Users.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", resp)
}

// failBind reports an unreadable request body. A body that decoded far
// enough to show which fields are missing gets the field-presence message.
func failBind(c *gin.Context, validateErr *apperrors.Error, bindErr error) {
	if validateErr != nil {
		fail(c, validateErr)
		return
	}
	fail(c, apperrors.Wrap(apperrors.Validation, "Invalid request body", bindErr))
}
