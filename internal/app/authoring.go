package app

import (
	"context"

	"github.com/pageza/recipebox/internal/model"
	"github.com/pageza/recipebox/internal/service"
)

// CreateRecipe adds a recipe authored by the signed-in account.
func (a *App) CreateRecipe(ctx context.Context, draft model.RecipeDraft) (*model.Recipe, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.requireUserLocked(ctx)
	if err != nil {
		return nil, err
	}
	draft.CreatedBy = user.ID
	recipe, err := a.recipes.Insert(ctx, draft)
	if err != nil {
		return nil, err
	}
	if _, err := a.users.LinkCreatedRecipe(ctx, user.ID, recipe.ID); err != nil {
		return nil, err
	}
	if err := a.refreshLocked(ctx); err != nil {
		return nil, err
	}

	a.Logger.WithField("recipe_id", recipe.ID).WithField("user_id", user.ID).Info("recipe created")
	return recipe, nil
}

// UpdateRecipe replaces the author-supplied fields of a recipe the signed-in
// account owns. Id, author and creation time are kept.
func (a *App) UpdateRecipe(ctx context.Context, id string, draft model.RecipeDraft) (*model.Recipe, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.ownedLocked(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe := draft.Recipe(existing.ID, existing.CreatedAt)
	recipe.CreatedBy = existing.CreatedBy

	updated, err := a.recipes.Update(ctx, recipe)
	if err != nil {
		return nil, err
	}
	if err := a.refreshLocked(ctx); err != nil {
		return nil, err
	}

	a.Logger.WithField("recipe_id", id).Info("recipe updated")
	return updated, nil
}

// DeleteRecipe removes a recipe the signed-in account owns, along with every
// favorite and authorship link pointing at it.
func (a *App) DeleteRecipe(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.ownedLocked(ctx, id); err != nil {
		return err
	}
	removed, err := a.recipes.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return service.ErrRecipeNotFound
	}
	if err := a.favorites.ForgetRecipe(ctx, id); err != nil {
		return err
	}
	if err := a.refreshLocked(ctx); err != nil {
		return err
	}

	a.Logger.WithField("recipe_id", id).Info("recipe deleted")
	return nil
}

// ownedLocked returns the recipe when the signed-in account authored it.
func (a *App) ownedLocked(ctx context.Context, id string) (*model.Recipe, error) {
	user, err := a.requireUserLocked(ctx)
	if err != nil {
		return nil, err
	}
	recipe, err := a.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, service.ErrRecipeNotFound
	}
	if recipe.CreatedBy != user.ID {
		return nil, ErrForbidden
	}
	return recipe, nil
}
