package app_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/logging"
	"github.com/pageza/recipebox/internal/model"
	"github.com/pageza/recipebox/internal/service"
)

func newApp(t *testing.T) (*app.App, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	n := 0
	opts := []service.Option{
		service.WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }),
		service.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		service.WithSeedRandom(1),
		service.WithPasswordScheme(service.PasswordPlain),
	}
	recipes := service.NewRecipeService(store, opts...)
	users := service.NewUserService(store, opts...)
	favorites := service.NewFavoriteService(store, users)

	a := app.New(recipes, users, favorites, logging.Discard())
	require.NoError(t, a.Load(context.Background()))
	return a, store
}

func sampleDraft(title string) model.RecipeDraft {
	return model.RecipeDraft{
		Title:        title,
		Description:  "Test dish",
		ImageURL:     "https://example.com/x.jpg",
		PrepTime:     5,
		CookTime:     10,
		Servings:     2,
		Difficulty:   model.Medium,
		Ingredients:  []string{"egg"},
		Instructions: []string{"cook"},
		Category:     []string{"Breakfast"},
	}
}

func TestApp_LoadAndSearch(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	assert.Len(t, a.Recipes(), 50)
	assert.Len(t, a.Filtered(), 50)
	assert.Empty(t, a.SearchTerm())

	require.NoError(t, a.SetSearchTerm(ctx, "tiramisu"))
	assert.Equal(t, "tiramisu", a.SearchTerm())
	require.Len(t, a.Filtered(), 1)
	assert.Equal(t, "9", a.Filtered()[0].ID)

	require.NoError(t, a.SetSearchTerm(ctx, ""))
	assert.Len(t, a.Filtered(), 50)
}

func TestApp_Browse(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	italian, err := a.Browse(ctx, "", "Italian")
	require.NoError(t, err)
	require.NotEmpty(t, italian)
	for _, r := range italian {
		assert.True(t, r.HasCategory("italian"))
	}

	desserts, err := a.Browse(ctx, "tiramisu", "Dessert")
	require.NoError(t, err)
	assert.Len(t, desserts, 1)

	none, err := a.Browse(ctx, "tiramisu", "Mexican")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestApp_CreateRecipeRequiresSession(t *testing.T) {
	a, _ := newApp(t)

	_, err := a.CreateRecipe(context.Background(), sampleDraft("Omelette"))
	assert.ErrorIs(t, err, app.ErrNotSignedIn)
	assert.Len(t, a.Recipes(), 50)
}

func TestApp_CreateRecipe(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "pat", "pat@example.com", "secret1")
	require.NoError(t, err)

	recipe, err := a.CreateRecipe(ctx, sampleDraft("Omelette"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, recipe.CreatedBy)

	recipes := a.Recipes()
	require.Len(t, recipes, 51)
	assert.Equal(t, recipe.ID, recipes[0].ID)

	current, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{recipe.ID}, current.CreatedRecipes)

	profile, err := a.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pat", profile.User.Username)
	require.Len(t, profile.Created, 1)
	assert.Equal(t, recipe.ID, profile.Created[0].ID)
	assert.Empty(t, profile.Favorites)
}

func TestApp_UpdateAndDeleteRequireOwnership(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "quinn", "quinn@example.com", "secret1")
	require.NoError(t, err)
	recipe, err := a.CreateRecipe(ctx, sampleDraft("Pancakes"))
	require.NoError(t, err)

	_, err = a.UpdateRecipe(ctx, "1", sampleDraft("Hijacked"))
	assert.ErrorIs(t, err, app.ErrForbidden)
	assert.ErrorIs(t, a.DeleteRecipe(ctx, "1"), app.ErrForbidden)

	_, err = a.UpdateRecipe(ctx, "missing", sampleDraft("Nope"))
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	edit := sampleDraft("Fluffy Pancakes")
	updated, err := a.UpdateRecipe(ctx, recipe.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, updated.ID)
	assert.Equal(t, recipe.CreatedAt, updated.CreatedAt)
	assert.Equal(t, recipe.CreatedBy, updated.CreatedBy)
	assert.Equal(t, "Fluffy Pancakes", a.Recipes()[0].Title)

	require.NoError(t, a.Logout(ctx))
	_, err = a.UpdateRecipe(ctx, recipe.ID, edit)
	assert.ErrorIs(t, err, app.ErrNotSignedIn)
}

func TestApp_DeleteCascadesFavorites(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ray", "ray@example.com", "secret1")
	require.NoError(t, err)
	recipe, err := a.CreateRecipe(ctx, sampleDraft("Waffles"))
	require.NoError(t, err)

	on, err := a.ToggleFavorite(ctx, recipe.ID)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, a.DeleteRecipe(ctx, recipe.ID))

	current, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, current.Favorites)
	assert.Empty(t, current.CreatedRecipes)
	assert.Len(t, a.Recipes(), 50)
}

func TestApp_GuestFavoritesMergeOnLogin(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "sam", "sam@example.com", "secret1")
	require.NoError(t, err)
	_, err = a.ToggleFavorite(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx))

	// browsing as a guest
	for _, id := range []string{"2", "1"} {
		on, err := a.ToggleFavorite(ctx, id)
		require.NoError(t, err)
		assert.True(t, on)
	}
	fav, err := a.IsFavorite(ctx, "2")
	require.NoError(t, err)
	assert.True(t, fav)

	loggedIn, err := a.Login(ctx, "SAM@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, []string{"1", "2"}, loggedIn.Favorites)

	favorites, err := a.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "1", favorites[0].ID)
	assert.Equal(t, "2", favorites[1].ID)

	// the guest list was consumed by the merge
	require.NoError(t, a.Logout(ctx))
	guest, err := a.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, guest)
}

func TestApp_GuestFavoritesCarryIntoNewAccount(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	_, err := a.ToggleFavorite(ctx, "3")
	require.NoError(t, err)

	user, err := a.Register(ctx, "tess", "tess@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, user.Favorites)
}

func TestApp_ToggleFavoriteUnknownRecipe(t *testing.T) {
	a, _ := newApp(t)

	_, err := a.ToggleFavorite(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestApp_LoginFailure(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	user, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	_, err = a.Profile(ctx)
	assert.ErrorIs(t, err, app.ErrNotSignedIn)
}

func TestApp_RegisterDuplicate(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "uma", "uma@example.com", "secret1")
	require.NoError(t, err)
	_, err = a.Register(ctx, "uma2", "UMA@example.com", "secret2")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}
