// Package config loads service configuration from the environment.
package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Notify   NotifyConfig
	App      AppConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// AuthConfig holds bearer token verification settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// NotifyConfig holds the notification queue settings
type NotifyConfig struct {
	RedisAddr     string
	RedisPassword string
	Queue         string
	Concurrency   int
	MaxRetry      int
	Enabled       bool
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Currency       string
	TxIsolation    string
	IdempotencyTTL time.Duration
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load loads configuration from environment variables with sensible defaults.
// A .env file in the working directory, when present, is applied first without
// overriding variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "homebid"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", ""),
		},
		Notify: NotifyConfig{
			Enabled:       getEnvAsBool("NOTIFY_ENABLED", false),
			RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			Queue:         getEnv("NOTIFY_QUEUE", "notifications"),
			Concurrency:   getEnvAsInt("NOTIFY_CONCURRENCY", 5),
			MaxRetry:      getEnvAsInt("NOTIFY_MAX_RETRY", 5),
		},
		App: AppConfig{
			Currency:       strings.ToUpper(getEnv("CURRENCY", "USD")),
			TxIsolation:    getEnv("DB_TX_ISOLATION", "read_committed"),
			IdempotencyTTL: getEnvAsDuration("IDEMPOTENCY_TTL", "24h"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if len(c.App.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code, got %q", c.App.Currency)
	}
	if _, err := c.App.Isolation(); err != nil {
		return err
	}
	if c.App.IdempotencyTTL <= 0 {
		return fmt.Errorf("idempotency ttl must be positive")
	}

	if c.Notify.Enabled {
		if c.Notify.RedisAddr == "" {
			return fmt.Errorf("redis address is required when notifications are enabled")
		}
		if c.Notify.Queue == "" {
			return fmt.Errorf("notification queue cannot be empty")
		}
		if c.Notify.Concurrency < 1 {
			return fmt.Errorf("notification concurrency must be at least 1")
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// Isolation maps the configured transaction isolation name to a database/sql level.
// Serializable is accepted, but row locks already serialize the status guards
// under read committed.
func (c *AppConfig) Isolation() (sql.IsolationLevel, error) {
	switch strings.ToLower(c.TxIsolation) {
	case "read_committed", "":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("invalid transaction isolation: %s", c.TxIsolation)
	}
}

// Validate checks the token settings. It is separate from Config.Validate because
// only the API process verifies tokens.
func (a *AuthConfig) Validate() error {
	if a.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(a.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
