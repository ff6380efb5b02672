package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports store reachability for the health endpoint.
type HealthChecker interface {
	Available(ctx context.Context) bool
}

// Health - GET /api/health
// Always 200; the database flag tells operators whether the store is up.
func Health(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disconnected"
		if db != nil && db.Available(c.Request.Context()) {
			dbStatus = "connected"
		}

		c.JSON(http.StatusOK, Response{
			Success: true,
			Message: "Server is running",
			Data:    gin.H{"database": dbStatus},
		})
	}
}
