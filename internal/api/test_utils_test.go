package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/logging"
	"github.com/pageza/recipebox/internal/middleware"
	"github.com/pageza/recipebox/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	InitValidation()
}

// MockStore is a kv.Store whose calls are scripted per test.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

func newTestApp(store kv.Store) *app.App {
	opts := []service.Option{
		service.WithSeedRandom(3),
		service.WithPasswordScheme(service.PasswordPlain),
	}
	users := service.NewUserService(store, opts...)
	return app.New(
		service.NewRecipeService(store, opts...),
		users,
		service.NewFavoriteService(store, users),
		logging.Discard(),
	)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	a := newTestApp(kv.NewMemoryStore())
	require.NoError(t, a.Load(context.Background()))

	router := gin.New()
	router.Use(middleware.ErrorHandler(logging.Discard()))
	RegisterRoutes(router, a, Limiters{})
	return router, a
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func registerTestUser(t *testing.T, router http.Handler, email string) UserResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Username: "tester",
		Email:    email,
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp UserResponse
	decode(t, w, &resp)
	return resp
}

func validRecipe() map[string]interface{} {
	return map[string]interface{}{
		"title":        "Test Recipe",
		"description":  "Test Description",
		"imageUrl":     "https://example.com/image.jpg",
		"prepTime":     10,
		"cookTime":     20,
		"servings":     4,
		"difficulty":   "Easy",
		"ingredients":  []string{"ingredient1", "ingredient2"},
		"instructions": []string{"step1", "step2"},
		"category":     []string{"Test Category"},
		"tags":         []string{"quick", "healthy"},
	}
}
