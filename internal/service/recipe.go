package service

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/model"
)

// ErrRecipeNotFound is returned by Update when no recipe carries the given id.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe catalog operations. The catalog is held as a
// single JSON array under kv.RecipesKey and rewritten on every mutation.
type RecipeService struct {
	store kv.Store
	now   func() time.Time
	newID func() string
	rng   *rand.Rand
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store kv.Store, opts ...Option) *RecipeService {
	o := buildOptions(opts)
	return &RecipeService{
		store: store,
		now:   o.now,
		newID: o.newID,
		rng:   o.rng(),
	}
}

// LoadAll returns the whole catalog, newest first. A store that has never
// held a catalog is seeded with the sample recipes; an empty catalog stays
// empty.
func (s *RecipeService) LoadAll(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	found, err := kv.GetJSON(ctx, s.store, kv.RecipesKey, &recipes)
	if err != nil {
		return nil, err
	}
	if found {
		if recipes == nil {
			recipes = []model.Recipe{}
		}
		return recipes, nil
	}

	seeded := SeedCatalog(s.rng)
	if err := s.save(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// FindByID returns the recipe with the given id, or nil when there is none.
func (s *RecipeService) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			return &recipes[i], nil
		}
	}
	return nil, nil
}

// Insert stores a new recipe at the front of the catalog
func (s *RecipeService) Insert(ctx context.Context, draft model.RecipeDraft) (*model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	recipe := draft.Recipe(s.newID(), s.now())
	updated := make([]model.Recipe, 0, len(recipes)+1)
	updated = append(updated, recipe)
	updated = append(updated, recipes...)
	if err := s.save(ctx, updated); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update replaces the recipe whose id matches recipe.ID, keeping its position.
// When no recipe matches, the catalog is left alone and the given record is
// returned together with ErrRecipeNotFound.
func (s *RecipeService) Update(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(recipes, func(r model.Recipe) bool { return r.ID == recipe.ID })
	if idx < 0 {
		return &recipe, ErrRecipeNotFound
	}
	recipes[idx] = recipe
	if err := s.save(ctx, recipes); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Remove deletes the recipe with the given id and reports whether it existed.
func (s *RecipeService) Remove(ctx context.Context, id string) (bool, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return false, err
	}

	kept := slices.DeleteFunc(slices.Clone(recipes), func(r model.Recipe) bool { return r.ID == id })
	if len(kept) == len(recipes) {
		return false, nil
	}
	if err := s.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Search matches term against title and description as a substring, and
// against category and tag entries as a whole word, all ignoring case. A
// blank term returns the full catalog.
func (s *RecipeService) Search(ctx context.Context, term string) ([]model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return recipes, nil
	}
	needle := strings.ToLower(term)
	return filter(recipes, func(r model.Recipe) bool {
		return strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) ||
			r.HasCategory(term) ||
			r.HasTag(term)
	}), nil
}

// FindByCategory returns recipes listing category, ignoring case.
func (s *RecipeService) FindByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(recipes, func(r model.Recipe) bool { return r.HasCategory(category) }), nil
}

// ListByCreator returns the recipes authored by userID.
func (s *RecipeService) ListByCreator(ctx context.Context, userID string) ([]model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter(recipes, func(r model.Recipe) bool { return userID != "" && r.CreatedBy == userID }), nil
}

// ListByIDs resolves ids in the order given, skipping unknown ones.
func (s *RecipeService) ListByIDs(ctx context.Context, ids []string) ([]model.Recipe, error) {
	recipes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	result := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			result = append(result, r)
		}
	}
	return result, nil
}

// Reset drops the stored catalog so the next read seeds it again.
func (s *RecipeService) Reset(ctx context.Context) error {
	return s.store.Delete(ctx, kv.RecipesKey)
}

func (s *RecipeService) save(ctx context.Context, recipes []model.Recipe) error {
	return kv.SetJSON(ctx, s.store, kv.RecipesKey, recipes)
}

func filter(recipes []model.Recipe, keep func(model.Recipe) bool) []model.Recipe {
	result := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
