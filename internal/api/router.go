package api

import (
	"time" // Process start time

	"user_directory/internal/config"     // Application configuration
	"user_directory/internal/middleware" // Custom middleware
	"user_directory/internal/service"    // Record service
	"user_directory/internal/store"      // In-memory store

	"github.com/gin-gonic/gin" // Gin web framework
)

// Dependencies are the collaborators the handlers are built from
type Dependencies struct {
	Config    *config.Config
	Store     *store.Store
	Users     *service.UserService
	StartedAt time.Time
}

// NewRouter wires middleware, API routes and the SPA fallback
func NewRouter(d Dependencies) (*gin.Engine, error) {
	r := gin.New() // Gin router instance
	r.Use(middleware.RequestLoggerMiddleware(), middleware.RecoveryMiddleware())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	api := r.Group("/api")
	api.GET("/health", HealthHandler(d.Config, d.StartedAt)) // Health check endpoint
	api.GET("/info", InfoHandler(d.Config))                  // Application metadata endpoint

	// User routes
	api.GET("/users", ListUsersHandler(d.Users))         // List users endpoint
	api.POST("/users", CreateUserHandler(d.Users))       // Create user endpoint
	api.DELETE("/users/:id", DeleteUserHandler(d.Users)) // Delete user endpoint

	// Diagnostic routes, hidden unless enabled
	debugGroup := api.Group("/debug")
	debugGroup.Use(middleware.DebugOnlyMiddleware(d.Config.ExposeDebug))
	debugGroup.GET("/store", DebugStoreHandler(d.Store))   // Raw in-memory state
	debugGroup.GET("/events", DebugEventsHandler(d.Users)) // Recent mutations

	r.NoRoute(SPAHandler(d.Config.StaticDir)) // Frontend and client-side routes
	return r, nil
}
