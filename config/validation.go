package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the settings the selected backend needs and reports
// every problem at once. Each problem is a ValidationError.
func ValidateConfig(cfg *Config) error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		add("SERVER_PORT", "must be numeric")
	}

	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for the sqlite backend")
		}
	case BackendPostgres:
		if cfg.DBHost == "" {
			add("DB_HOST", "is required for the postgres backend")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "is required for the postgres backend")
		}
		if cfg.DBUser == "" {
			add("DB_USER", "is required for the postgres backend")
		}
		if cfg.DBPassword == "" {
			add("DB_PASSWORD", "db_password secret or DB_PASSWORD is required for the postgres backend")
		}
	case BackendRedis:
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			add("REDIS_URL", "REDIS_URL or REDIS_HOST is required for the redis backend")
		}
	case BackendS3:
		if cfg.S3Bucket == "" {
			add("S3_BUCKET_NAME", "is required for the s3 backend")
		}
	default:
		add("STORE_BACKEND", fmt.Sprintf("unknown backend %q", cfg.StoreBackend))
	}

	switch cfg.PasswordScheme {
	case "bcrypt", "plain":
	default:
		add("PASSWORD_SCHEME", "must be bcrypt or plain")
	}

	if cfg.Env == Production && cfg.PasswordScheme == "plain" {
		add("PASSWORD_SCHEME", "plain passwords are not allowed in production")
	}

	return errors.Join(errs...)
}
