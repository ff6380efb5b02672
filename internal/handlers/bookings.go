package handlers

import (
	"net/http"

	"cinebook/internal/middleware"
	"cinebook/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateBooking - POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "Authorization token required"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBind(c, req.Validate(), err)
		return
	}

	confirmation, err := h.services.Bookings.Create(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, "Booking confirmed successfully", confirmation)
}

// ListMyBookings - GET /api/bookings/my
func (h *Handlers) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "Authorization token required"})
		return
	}

	bookings, err := h.services.Bookings.ListMine(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	respondList(c, "Bookings fetched successfully", len(bookings), bookings)
}
