package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/recipebox/config"
	"github.com/pageza/recipebox/internal/api"
	"github.com/pageza/recipebox/internal/app"
	"github.com/pageza/recipebox/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *logrus.Logger
}

// New builds the router for a. A nil redis client disables rate limiting.
func New(cfg *config.Config, a *app.App, logger *logrus.Logger, redisClient *redis.Client) *Server {
	if cfg.Env != config.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	api.InitValidation()

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	var limiters api.Limiters
	if redisClient != nil {
		limiters.Creation = middleware.NewRecipeCreationRateLimiter(redisClient, logger)
		limiters.Modification = middleware.NewRecipeModificationRateLimiter(redisClient, logger)
	} else {
		logger.Warn("redis not configured, recipe rate limiting disabled")
	}
	api.RegisterRoutes(router, a, limiters)

	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
