// Package app is the session layer between the HTTP handlers and the stores.
// It caches the catalog, keeps the current search term and its filtered view,
// and routes favorites to the guest list or the signed-in account.
package app

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pageza/recipebox/internal/model"
	"github.com/pageza/recipebox/internal/service"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrForbidden   = errors.New("recipe belongs to another user")
)

// Profile is the signed-in account with the recipes it authored and favorited.
type Profile struct {
	User      model.PublicUser `json:"user"`
	Created   []model.Recipe   `json:"createdRecipes"`
	Favorites []model.Recipe   `json:"favoriteRecipes"`
}

// App serializes every store call behind one mutex, so concurrent requests
// see the profile the way a single browser tab would.
type App struct {
	mu sync.Mutex

	recipes   service.IRecipeService
	users     service.IUserService
	favorites service.IFavoriteService
	Logger    *logrus.Logger

	catalog  []model.Recipe
	filtered []model.Recipe
	term     string
}

// New creates an App. Call Load before serving.
func New(recipes service.IRecipeService, users service.IUserService, favorites service.IFavoriteService, logger *logrus.Logger) *App {
	return &App{
		recipes:   recipes,
		users:     users,
		favorites: favorites,
		Logger:    logger,
	}
}

// Load reads the catalog, seeding it on first use.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refreshLocked(ctx)
}

// Refresh re-reads the catalog and recomputes the filtered view.
func (a *App) Refresh(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refreshLocked(ctx)
}

// Recipes returns the cached catalog.
func (a *App) Recipes() []model.Recipe {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.catalog)
}

// Filtered returns the catalog narrowed by the current search term.
func (a *App) Filtered() []model.Recipe {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.filtered)
}

func (a *App) SearchTerm() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.term
}

// SetSearchTerm stores term and recomputes the filtered view.
func (a *App) SetSearchTerm(ctx context.Context, term string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.term = term
	return a.filterLocked(ctx)
}

// Browse sets the search term and returns the filtered view, narrowed further
// to category when one is given.
func (a *App) Browse(ctx context.Context, term, category string) ([]model.Recipe, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.term = term
	if err := a.filterLocked(ctx); err != nil {
		return nil, err
	}
	if category == "" {
		return slices.Clone(a.filtered), nil
	}
	result := make([]model.Recipe, 0, len(a.filtered))
	for _, r := range a.filtered {
		if r.HasCategory(category) {
			result = append(result, r)
		}
	}
	return result, nil
}

// Recipe returns one recipe, or nil when there is none.
func (a *App) Recipe(ctx context.Context, id string) (*model.Recipe, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.recipes.FindByID(ctx, id)
}

func (a *App) refreshLocked(ctx context.Context) error {
	catalog, err := a.recipes.LoadAll(ctx)
	if err != nil {
		return err
	}
	a.catalog = catalog
	return a.filterLocked(ctx)
}

func (a *App) filterLocked(ctx context.Context) error {
	filtered, err := a.recipes.Search(ctx, a.term)
	if err != nil {
		return err
	}
	a.filtered = filtered
	return nil
}
