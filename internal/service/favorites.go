package service

import (
	"context"
	"errors"
	"slices"

	"github.com/pageza/recipebox/internal/kv"
)

// ErrUserNotFound is returned when a viewer names an account that does not exist.
var ErrUserNotFound = errors.New("user not found")

// Viewer is whoever is browsing: a signed-in account, or a guest when UserID
// is empty.
type Viewer struct {
	UserID string
}

// Guest is the anonymous viewer.
func Guest() Viewer { return Viewer{} }

// Account is the viewer for a signed-in account.
func Account(userID string) Viewer { return Viewer{UserID: userID} }

// Authenticated reports whether the viewer is signed in.
func (v Viewer) Authenticated() bool { return v.UserID != "" }

// FavoriteService keeps favorites for guests under kv.GuestFavoritesKey and
// delegates to UserService for accounts.
type FavoriteService struct {
	store kv.Store
	users *UserService
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(store kv.Store, users *UserService) *FavoriteService {
	return &FavoriteService{store: store, users: users}
}

// Toggle flips recipeID in the viewer's favorites and returns the new state.
func (s *FavoriteService) Toggle(ctx context.Context, viewer Viewer, recipeID string) (bool, error) {
	if viewer.Authenticated() {
		ok, err := s.users.ToggleFavorite(ctx, viewer.UserID, recipeID)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrUserNotFound
		}
		return s.users.IsFavorite(ctx, viewer.UserID, recipeID)
	}

	ids, err := s.guest(ctx)
	if err != nil {
		return false, err
	}
	ids = toggle(ids, recipeID)
	if err := kv.SetJSON(ctx, s.store, kv.GuestFavoritesKey, ids); err != nil {
		return false, err
	}
	return slices.Contains(ids, recipeID), nil
}

// IsFavorite reports whether recipeID is among the viewer's favorites.
func (s *FavoriteService) IsFavorite(ctx context.Context, viewer Viewer, recipeID string) (bool, error) {
	ids, err := s.List(ctx, viewer)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, recipeID), nil
}

// List returns the viewer's favorite ids in the order they were added.
func (s *FavoriteService) List(ctx context.Context, viewer Viewer) ([]string, error) {
	if viewer.Authenticated() {
		return s.users.FavoriteIDs(ctx, viewer.UserID)
	}
	return s.guest(ctx)
}

// MergeGuest moves the guest favorites into the account and clears the guest
// list. With replace set the guest list becomes the account's whole list.
func (s *FavoriteService) MergeGuest(ctx context.Context, userID string, replace bool) error {
	ids, err := s.guest(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 && !replace {
		return nil
	}
	ok, err := s.users.MergeFavorites(ctx, userID, ids, replace)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return s.store.Delete(ctx, kv.GuestFavoritesKey)
}

// ForgetRecipe drops recipeID from the guest list and every account.
func (s *FavoriteService) ForgetRecipe(ctx context.Context, recipeID string) error {
	ids, err := s.guest(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, recipeID) {
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == recipeID })
		if err := kv.SetJSON(ctx, s.store, kv.GuestFavoritesKey, ids); err != nil {
			return err
		}
	}
	return s.users.ForgetRecipe(ctx, recipeID)
}

func (s *FavoriteService) guest(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := kv.GetJSON(ctx, s.store, kv.GuestFavoritesKey, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
