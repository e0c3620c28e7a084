package service

import (
	"context"

	"github.com/pageza/recipebox/internal/model"
)

// IRecipeService defines the interface for recipe catalog operations
type IRecipeService interface {
	LoadAll(ctx context.Context) ([]model.Recipe, error)
	FindByID(ctx context.Context, id string) (*model.Recipe, error)
	Insert(ctx context.Context, draft model.RecipeDraft) (*model.Recipe, error)
	Update(ctx context.Context, recipe model.Recipe) (*model.Recipe, error)
	Remove(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, term string) ([]model.Recipe, error)
	FindByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	ListByCreator(ctx context.Context, userID string) ([]model.Recipe, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Recipe, error)
}

// IUserService defines the interface for account and session operations
type IUserService interface {
	Exists(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error)
	LinkCreatedRecipe(ctx context.Context, userID, recipeID string) (bool, error)
	ForgetRecipe(ctx context.Context, recipeID string) error
}

// IFavoriteService defines favorite operations for guests and accounts alike
type IFavoriteService interface {
	Toggle(ctx context.Context, viewer Viewer, recipeID string) (bool, error)
	IsFavorite(ctx context.Context, viewer Viewer, recipeID string) (bool, error)
	List(ctx context.Context, viewer Viewer) ([]string, error)
	MergeGuest(ctx context.Context, userID string, replace bool) error
	ForgetRecipe(ctx context.Context, recipeID string) error
}

var (
	_ IRecipeService   = (*RecipeService)(nil)
	_ IUserService     = (*UserService)(nil)
	_ IFavoriteService = (*FavoriteService)(nil)
)
