package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends understood by database.OpenStore.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Which key-value backend holds the recipes, users and session
	StoreBackend string
	KVPrefix     string

	// SQLite configuration
	SQLitePath string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// S3 configuration
	S3Bucket  string
	AWSRegion string

	// PasswordScheme is "bcrypt" or "plain".
	PasswordScheme string
	// SeedRandom seeds generation of the sample catalog; 0 means time-based.
	SeedRandom int64

	LogLevel string
}

// LoadConfig builds a Config from the environment, an optional .env file and
// Docker secrets, then validates it.
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		Env:            env,
		ServerPort:     getenv("SERVER_PORT", "8080"),
		ServerHost:     getenv("SERVER_HOST", "localhost"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:5173")),
		StoreBackend:   strings.ToLower(getenv("STORE_BACKEND", BackendSQLite)),
		KVPrefix:       os.Getenv("KV_PREFIX"),
		SQLitePath:     getenv("SQLITE_PATH", "recipebox.db"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         secretOrEnv("db_user", "DB_USER"),
		DBPassword:     secretOrEnv("db_password", "DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "recipebox"),
		DBSSLMode:      getenv("DB_SSL_MODE", "disable"),
		RedisHost:      getenv("REDIS_HOST", "localhost"),
		RedisPort:      getenv("REDIS_PORT", "6379"),
		RedisPassword:  secretOrEnv("redis_password", "REDIS_PASSWORD"),
		RedisURL:       os.Getenv("REDIS_URL"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		PasswordScheme: strings.ToLower(getenv("PASSWORD_SCHEME", "bcrypt")),
		LogLevel:       getenv("LOG_LEVEL", defaultLogLevel(env)),
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	seed, err := intEnv("SEED_RANDOM", 0)
	if err != nil {
		return nil, err
	}
	cfg.SeedRandom = int64(seed)

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func defaultLogLevel(env Environment) string {
	if env == Development {
		return "debug"
	}
	return "info"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// secretOrEnv prefers the environment variable and falls back to the Docker
// secret file of the same purpose.
func secretOrEnv(secret, envKey string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return readSecret(secret)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
