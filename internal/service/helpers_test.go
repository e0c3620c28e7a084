package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/model"
	"github.com/pageza/recipebox/internal/service"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testOptions(prefix string) []service.Option {
	return []service.Option{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithIDGenerator(sequentialIDs(prefix)),
		service.WithSeedRandom(42),
		service.WithPasswordScheme(service.PasswordPlain),
	}
}

type fixture struct {
	store     *kv.MemoryStore
	recipes   *service.RecipeService
	users     *service.UserService
	favorites *service.FavoriteService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	users := service.NewUserService(store, testOptions("user")...)
	return fixture{
		store:     store,
		recipes:   service.NewRecipeService(store, testOptions("recipe")...),
		users:     users,
		favorites: service.NewFavoriteService(store, users),
	}
}

// emptyCatalog stores an empty recipe list so tests start without seed data.
func emptyCatalog(t *testing.T, store kv.Store) {
	t.Helper()
	require.NoError(t, kv.SetJSON(context.Background(), store, kv.RecipesKey, []model.Recipe{}))
}

func draft(title string) model.RecipeDraft {
	return model.RecipeDraft{
		Title:        title,
		Description:  "A " + title + " for weeknights",
		ImageURL:     "https://example.com/" + title + ".jpg",
		PrepTime:     10,
		CookTime:     20,
		Servings:     4,
		Difficulty:   model.Easy,
		Ingredients:  []string{"salt", "water"},
		Instructions: []string{"Mix", "Cook"},
		Category:     []string{"Italian"},
		Tags:         []string{"quick"},
	}
}
