package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/middleware"
)

type ProfileHandler struct {
	app *app.App
}

func NewProfileHandler(a *app.App) *ProfileHandler {
	return &ProfileHandler{app: a}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/favorites", h.Favorites)
	router.GET("/profile", middleware.RequireSession(h.app), h.Profile)
}

// Favorites lists the guest's or the account's favorite recipes.
func (h *ProfileHandler) Favorites(c *gin.Context) {
	recipes, err := h.app.Favorites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ProfileHandler) Profile(c *gin.Context) {
	profile, err := h.app.Profile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
