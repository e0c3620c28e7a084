package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/middleware"
	"github.com/pageza/recipebox/internal/service"
)

// respondError maps domain errors onto status codes. Anything unrecognised is
// a store failure: it is attached to the context for logging and answered
// with a generic 500.
func respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		status, message = http.StatusNotFound, "recipe not found"
	case errors.Is(err, service.ErrEmailTaken):
		status, message = http.StatusConflict, "email already registered"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, app.ErrNotSignedIn), errors.Is(err, service.ErrUserNotFound):
		status, message = http.StatusUnauthorized, "sign in required"
	case errors.Is(err, app.ErrForbidden):
		status, message = http.StatusForbidden, "you can only change your own recipes"
	default:
		_ = c.Error(err)
	}
	c.JSON(status, middleware.ErrorResponse{Error: message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{
		Error:   "invalid request",
		Details: ToDetails(err),
	})
}
