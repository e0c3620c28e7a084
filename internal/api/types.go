package api

import (
	"strings"

	"github.com/pageza/recipebox/internal/model"
)

// RecipeRequest is the authoring form for creating or editing a recipe.
type RecipeRequest struct {
	Title        string           `json:"title" binding:"required,max=200"`
	Description  string           `json:"description" binding:"required"`
	ImageURL     string           `json:"imageUrl" binding:"required,url"`
	PrepTime     int              `json:"prepTime" binding:"required,gt=0"`
	CookTime     int              `json:"cookTime" binding:"required,gt=0"`
	Servings     int              `json:"servings" binding:"required,gt=0"`
	Difficulty   model.Difficulty `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Ingredients  []string         `json:"ingredients" binding:"required,min=1,dive,required"`
	Instructions []string         `json:"instructions" binding:"required,min=1,dive,required"`
	Category     []string         `json:"category" binding:"required,min=1,dive,required"`
	Tags         []string         `json:"tags" binding:"omitempty,dive,required"`
}

// Draft trims the text fields and builds the draft the stores accept.
func (r RecipeRequest) Draft() model.RecipeDraft {
	return model.RecipeDraft{
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		ImageURL:     strings.TrimSpace(r.ImageURL),
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		Ingredients:  trimAll(r.Ingredients),
		Instructions: trimAll(r.Instructions),
		Category:     trimAll(r.Category),
		Tags:         trimAll(r.Tags),
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse wraps the public view of an account.
type UserResponse struct {
	User model.PublicUser `json:"user"`
}

// SessionResponse reports who is browsing. User is null for a guest.
type SessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	User          *model.PublicUser `json:"user"`
}

type FavoriteResponse struct {
	RecipeID string `json:"recipeId"`
	Favorite bool   `json:"favorite"`
}

type RecipeListResponse struct {
	Recipes    []model.Recipe `json:"recipes"`
	SearchTerm string         `json:"searchTerm"`
	Category   string         `json:"category,omitempty"`
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
