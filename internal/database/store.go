package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pageza/recipebox/config"
	"github.com/pageza/recipebox/internal/kv"
)

// OpenStore connects the key-value backend named by cfg.StoreBackend.
func OpenStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (kv.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Warn("using in-memory store, data is lost on exit")
		return kv.NewMemoryStore(), nil

	case config.BackendSQLite:
		db, err := OpenSQLite(cfg, log)
		if err != nil {
			return nil, err
		}
		return kv.NewGormStore(db)

	case config.BackendPostgres:
		db, err := OpenPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return kv.NewGormStore(db)

	case config.BackendRedis:
		client, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return kv.NewRedisStore(client, cfg.KVPrefix), nil

	case config.BackendS3:
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		if err := s3cfg.HeadBucket(ctx); err != nil {
			return nil, fmt.Errorf("bucket %s is not reachable: %w", s3cfg.BucketName, err)
		}
		log.WithField("bucket", s3cfg.BucketName).Info("using s3 store")
		return kv.NewS3Store(s3cfg.Client, s3cfg.BucketName, s3cfg.Prefix), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
