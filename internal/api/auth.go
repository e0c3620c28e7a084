package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/internal/app"
)

type AuthHandler struct {
	app *app.App
}

func NewAuthHandler(a *app.App) *AuthHandler {
	return &AuthHandler{app: a}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
	router.GET("/session", h.Session)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.app.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: user.Public()})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.app.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user.Public()})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.app.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.app.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, SessionResponse{})
		return
	}

	public := user.Public()
	c.JSON(http.StatusOK, SessionResponse{Authenticated: true, User: &public})
}
