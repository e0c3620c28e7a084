package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter counts requests per key in fixed Redis windows.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	logger *logrus.Logger
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig, logger *logrus.Logger) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// NewRecipeCreationRateLimiter allows 5 new recipes per user per hour.
func NewRecipeCreationRateLimiter(redisClient *redis.Client, logger *logrus.Logger) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     5,
		KeyPrefix: "rate_limit:recipe_creation",
	}, logger)
}

// NewRecipeModificationRateLimiter allows 10 edits or deletes per recipe per
// user per hour.
func NewRecipeModificationRateLimiter(redisClient *redis.Client, logger *logrus.Logger) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     10,
		KeyPrefix: "rate_limit:recipe_modification",
	}, logger)
}

// IsAllowed counts one request for key.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, key string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.TxPipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// RateLimitMiddleware limits requests per signed-in user.
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return rl.middleware("requests", func(c *gin.Context, userID string) string {
		return userID
	})
}

// PerRecipeRateLimitMiddleware limits requests per user and recipe id.
func (rl *RateLimiter) PerRecipeRateLimitMiddleware() gin.HandlerFunc {
	return rl.middleware("modifications per recipe", func(c *gin.Context, userID string) string {
		return userID + ":" + c.Param("id")
	})
}

func (rl *RateLimiter) middleware(noun string, keyFor func(*gin.Context, string) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			c.Abort()
			return
		}

		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), keyFor(c, userID))
		if err != nil {
			// a redis outage must not block authoring
			rl.logger.WithError(err).WithField("prefix", rl.config.KeyPrefix).Warn("rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d %s per %v", rl.config.Limit, noun, rl.config.Window),
				"retry_after": int(resetTime.Sub(rl.now()).Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
