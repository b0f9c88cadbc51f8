package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"user_directory/internal/service" // Record service
	"user_directory/internal/store"   // In-memory store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// DebugStoreHandler exposes the raw in-memory records and the backing file path
func DebugStoreHandler(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"filePath": st.Path(),     // Configured store file
			"users":    st.Snapshot(), // Records exactly as held in memory
		})
	}
}

// DebugEventsHandler returns the most recent user mutations
func DebugEventsHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20 // Default number of events
		if l := c.Query("limit"); l != "" {
			// Accept only limits within 1..100
			if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
				limit = v
			}
		}
		recent, err := svc.Events(c.Request.Context(), limit)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to read user events")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read events"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": recent, "limit": limit})
	}
}
