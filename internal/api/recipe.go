package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/middleware"
)

type RecipeHandler struct {
	app      *app.App
	limiters Limiters
}

func NewRecipeHandler(a *app.App, limiters Limiters) *RecipeHandler {
	return &RecipeHandler{app: a, limiters: limiters}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	requireSession := middleware.RequireSession(h.app)

	create := []gin.HandlerFunc{requireSession}
	modify := []gin.HandlerFunc{requireSession}
	if h.limiters.Creation != nil {
		create = append(create, h.limiters.Creation.RateLimitMiddleware())
	}
	if h.limiters.Modification != nil {
		modify = append(modify, h.limiters.Modification.PerRecipeRateLimitMiddleware())
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", chain(create, h.CreateRecipe)...)
		recipes.PUT("/:id", chain(modify, h.UpdateRecipe)...)
		recipes.DELETE("/:id", chain(modify, h.DeleteRecipe)...)
		recipes.POST("/:id/favorite", h.ToggleFavorite)
	}
}

// ListRecipes serves ?q= (search term) and ?category= (exact category).
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	term, category := c.Query("q"), c.Query("category")
	recipes, err := h.app.Browse(c.Request.Context(), term, category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecipeListResponse{
		Recipes:    recipes,
		SearchTerm: term,
		Category:   category,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.app.Recipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.app.CreateRecipe(c.Request.Context(), req.Draft())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.app.UpdateRecipe(c.Request.Context(), c.Param("id"), req.Draft())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.app.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleFavorite works for guests and accounts alike.
func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	on, err := h.app.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FavoriteResponse{RecipeID: id, Favorite: on})
}

func chain(middlewares []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(middlewares)+1)
	out = append(out, middlewares...)
	return append(out, handler)
}
