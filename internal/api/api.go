// Package api exposes the recipe box over JSON for the single-page front end.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/middleware"
)

// Limiters holds the optional redis rate limiters. Nil limiters are skipped.
type Limiters struct {
	Creation     *middleware.RateLimiter
	Modification *middleware.RateLimiter
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "RecipeBox API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, a *app.App, limiters Limiters) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	NewRecipeHandler(a, limiters).RegisterRoutes(v1)
	NewAuthHandler(a).RegisterRoutes(v1)
	NewProfileHandler(a).RegisterRoutes(v1)
}
