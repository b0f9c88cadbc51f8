package api

import (
	"net/http" // HTTP status codes
	"strings"  // Connection string check
	"time"     // Uptime and timestamps

	"user_directory/internal/config" // Application configuration

	"github.com/gin-gonic/gin" // Gin web framework
)

// isoMillis matches the millisecond ISO-8601 timestamps the frontend expects
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler reports liveness, environment and uptime in seconds
func HealthHandler(cfg *config.Config, startedAt time.Time) gin.HandlerFunc {
	database := "Disconnected"
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		database = "Connected" // Nothing is dialed; the value only has to be configured
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"environment": cfg.Environment,
			"timestamp":   time.Now().UTC().Format(isoMillis),
			"database":    database,
			"uptime":      time.Since(startedAt).Seconds(), // Monotonic clock
		})
	}
}

// InfoHandler returns static application metadata
func InfoHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app":         cfg.AppName,
			"version":     cfg.AppVersion,
			"environment": cfg.Environment,
			"author":      cfg.AppAuthor,
		})
	}
}
