package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/recipebox/config"
)

// New opens a PostgreSQL connection pool through lib/pq and checks it.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	// Log connection target (without password)
	log.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"port": cfg.DBPort,
		"user": cfg.DBUser,
	}).Info("connecting to database")

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Info("successfully connected to database")
	return db, nil
}

// OpenPostgres wraps a lib/pq pool in gorm.
func OpenPostgres(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	sqlDB, err := New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(cfg))
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error initializing gorm: %w", err)
	}
	return db, nil
}

// OpenSQLite opens the SQLite file at cfg.SQLitePath.
func OpenSQLite(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database %s: %w", cfg.SQLitePath, err)
	}
	// SQLite allows a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.WithField("path", cfg.SQLitePath).Info("opened sqlite database")
	return db, nil
}

func gormConfig(cfg *config.Config) *gorm.Config {
	level := logger.Warn
	if cfg.Env == config.Development && cfg.LogLevel == "debug" {
		level = logger.Info
	}
	return &gorm.Config{Logger: logger.Default.LogMode(level)}
}
