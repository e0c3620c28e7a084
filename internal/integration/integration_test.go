package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/config"
	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/database"
	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/logging"
	"github.com/pageza/recipebox/internal/model"
	"github.com/pageza/recipebox/internal/server"
	"github.com/pageza/recipebox/internal/service"
)

// instance is one running process: a store handle plus the HTTP handler.
type instance struct {
	store   kv.Store
	handler http.Handler
}

func boot(t *testing.T, cfg *config.Config) *instance {
	t.Helper()
	ctx := context.Background()
	logger := logging.Discard()

	store, err := database.OpenStore(ctx, cfg, logger)
	require.NoError(t, err)

	opts := service.ConfigOptions(cfg)
	users := service.NewUserService(store, opts...)
	a := app.New(service.NewRecipeService(store, opts...), users, service.NewFavoriteService(store, users), logger)
	require.NoError(t, a.Load(ctx))

	return &instance{store: store, handler: server.New(cfg, a, logger, nil).Handler()}
}

func (in *instance) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	in.handler.ServeHTTP(w, req)
	return w
}

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:            config.Test,
		ServerHost:     "localhost",
		ServerPort:     "0",
		CORSOrigins:    []string{"http://localhost:5173"},
		StoreBackend:   config.BackendSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "recipebox.db"),
		PasswordScheme: string(service.PasswordBcrypt),
		SeedRandom:     2024,
	}
}

func TestStatePersistsAcrossRestarts(t *testing.T) {
	cfg := sqliteConfig(t)

	first := boot(t, cfg)
	w := first.do(t, http.MethodPost, "/api/v1/recipes/7/favorite", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = first.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "wren",
		"email":    "wren@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = first.do(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":        "Lemon Risotto",
		"description":  "Bright and creamy",
		"imageUrl":     "https://example.com/risotto.jpg",
		"prepTime":     10,
		"cookTime":     30,
		"servings":     4,
		"difficulty":   "Medium",
		"ingredients":  []string{"arborio rice", "lemon", "stock"},
		"instructions": []string{"Toast rice", "Add stock gradually", "Finish with lemon"},
		"category":     []string{"Italian"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Recipe model.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NoError(t, first.store.Close())

	second := boot(t, cfg)
	defer second.store.Close()

	w = second.do(t, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Authenticated bool              `json:"authenticated"`
		User          *model.PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.True(t, session.Authenticated)
	assert.Equal(t, "wren", session.User.Username)
	assert.Equal(t, []string{"7"}, session.User.Favorites, "guest favorite should move into the new account")
	assert.Equal(t, []string{created.Recipe.ID}, session.User.CreatedRecipes)

	w = second.do(t, http.MethodGet, "/api/v1/recipes?category=Italian&q=risotto", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 1)
	assert.Equal(t, created.Recipe.ID, list.Recipes[0].ID)

	// passwords were stored hashed
	var users []model.User
	_, err := kv.GetJSON(context.Background(), second.store, kv.UsersKey, &users)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEqual(t, "secret1", users[0].Password)
}

func TestSeedIsStableAcrossRestarts(t *testing.T) {
	cfg := sqliteConfig(t)

	first := boot(t, cfg)
	w := first.do(t, http.MethodGet, "/api/v1/recipes/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var before model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
	require.NoError(t, first.store.Close())

	// a different seed must not regenerate a catalog that already exists
	cfg.SeedRandom = 1
	second := boot(t, cfg)
	defer second.store.Close()

	w = second.do(t, http.MethodGet, "/api/v1/recipes/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Equal(t, before, after)
}

func TestDeleteCascadesThroughAPI(t *testing.T) {
	in := boot(t, sqliteConfig(t))
	defer in.store.Close()

	w := in.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "xena",
		"email":    "xena@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = in.do(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":        "Flatbread",
		"description":  "Two ingredients",
		"imageUrl":     "https://example.com/flatbread.jpg",
		"prepTime":     5,
		"cookTime":     5,
		"servings":     2,
		"difficulty":   "Easy",
		"ingredients":  []string{"flour", "yogurt"},
		"instructions": []string{"Mix", "Griddle"},
		"category":     []string{"Bread"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Recipe model.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Recipe.ID

	w = in.do(t, http.MethodPost, "/api/v1/recipes/"+id+"/favorite", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = in.do(t, http.MethodDelete, "/api/v1/recipes/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = in.do(t, http.MethodGet, "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	assert.Empty(t, favorites.Recipes)

	w = in.do(t, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile app.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Empty(t, profile.User.CreatedRecipes)
	assert.Empty(t, profile.User.Favorites)
}
