package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipebox/internal/logging"
	"github.com/pageza/recipebox/internal/testhelpers"
)

func limitedRouter(rl *RateLimiter, perRecipe bool) *gin.Engine {
	router := gin.New()
	setUser := func(c *gin.Context) { c.Set("user_id", "u1") }
	limit := rl.RateLimitMiddleware()
	if perRecipe {
		limit = rl.PerRecipeRateLimitMiddleware()
	}
	router.PUT("/recipes/:id", setUser, limit, func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	client := testhelpers.StartRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Hour, Limit: 2, KeyPrefix: "test:create"}, logging.Discard())
	start := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	rl.now = func() time.Time { return start }
	router := limitedRouter(rl, false)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/recipes/1", nil))
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// the next window starts fresh
	rl.now = func() time.Time { return start.Add(time.Hour) }
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/recipes/1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_PerRecipe(t *testing.T) {
	client := testhelpers.StartRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Hour, Limit: 1, KeyPrefix: "test:modify"}, logging.Discard())
	router := limitedRouter(rl, true)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/recipes/a", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/recipes/a", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/recipes/b", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	rl := NewRecipeCreationRateLimiter(client, logging.Discard())
	router := limitedRouter(rl, false)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/recipes/1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimiter_RequiresUser(t *testing.T) {
	rl := NewRecipeModificationRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), logging.Discard())
	router := gin.New()
	router.DELETE("/recipes/:id", rl.PerRecipeRateLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/recipes/1", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
