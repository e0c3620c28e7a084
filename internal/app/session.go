package app

import (
	"context"
	"errors"

	"github.com/pageza/recipebox/internal/model"
	"github.com/pageza/recipebox/internal/service"
)

// Login signs in and folds the guest favorites into the account.
func (a *App) Login(ctx context.Context, email, password string) (*model.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.users.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.Logger.WithField("email", email).Warn("login failed")
		}
		return nil, err
	}
	if err := a.favorites.MergeGuest(ctx, user.ID, false); err != nil {
		return nil, err
	}
	a.Logger.WithField("user_id", user.ID).Info("logged in")
	return a.users.FindByID(ctx, user.ID)
}

// Register creates an account, signs it in and hands it the guest favorites.
func (a *App) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.users.Register(ctx, username, email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			a.Logger.WithField("email", email).Warn("registration rejected: email taken")
		}
		return nil, err
	}
	if err := a.favorites.MergeGuest(ctx, user.ID, true); err != nil {
		return nil, err
	}
	a.Logger.WithField("user_id", user.ID).Info("account registered")
	return a.users.FindByID(ctx, user.ID)
}

// Logout returns the profile to guest mode.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	a.Logger.Info("logged out")
	return nil
}

// CurrentUser returns the signed-in account, or nil for a guest.
func (a *App) CurrentUser(ctx context.Context) (*model.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.users.CurrentSession(ctx)
}

// ToggleFavorite flips recipeID in the current viewer's favorites.
func (a *App) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	recipe, err := a.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return false, err
	}
	if recipe == nil {
		return false, service.ErrRecipeNotFound
	}
	viewer, err := a.viewerLocked(ctx)
	if err != nil {
		return false, err
	}
	on, err := a.favorites.Toggle(ctx, viewer, recipeID)
	if err != nil {
		return false, err
	}

	entry := a.Logger.WithField("recipe_id", recipeID).WithField("user_id", viewer.UserID)
	if on {
		entry.Info("added to favorites")
	} else {
		entry.Info("removed from favorites")
	}
	return on, nil
}

// IsFavorite reports whether the current viewer favorited recipeID.
func (a *App) IsFavorite(ctx context.Context, recipeID string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	viewer, err := a.viewerLocked(ctx)
	if err != nil {
		return false, err
	}
	return a.favorites.IsFavorite(ctx, viewer, recipeID)
}

// Favorites returns the current viewer's favorite recipes in the order they
// were added. Ids of deleted recipes are skipped.
func (a *App) Favorites(ctx context.Context) ([]model.Recipe, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	viewer, err := a.viewerLocked(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := a.favorites.List(ctx, viewer)
	if err != nil {
		return nil, err
	}
	return a.recipes.ListByIDs(ctx, ids)
}

// Profile returns the signed-in account with its recipes.
func (a *App) Profile(ctx context.Context) (*Profile, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.requireUserLocked(ctx)
	if err != nil {
		return nil, err
	}
	created, err := a.recipes.ListByCreator(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	favorites, err := a.recipes.ListByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user.Public(), Created: created, Favorites: favorites}, nil
}

func (a *App) viewerLocked(ctx context.Context) (service.Viewer, error) {
	user, err := a.users.CurrentSession(ctx)
	if err != nil {
		return service.Viewer{}, err
	}
	if user == nil {
		return service.Guest(), nil
	}
	return service.Account(user.ID), nil
}

func (a *App) requireUserLocked(ctx context.Context) (*model.User, error) {
	user, err := a.users.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	return user, nil
}
