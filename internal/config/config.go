package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Fixture sources understood by LoadConfig.
const (
	FixtureSourceStatic = "static"
	FixtureSourceMySQL  = "mysql"
)

// Config holds all configuration for our application
type Config struct {
	Port          string
	Origin        string
	Environment   string
	SessionSecret string
	SessionTTL    time.Duration
	RefreshDelay  time.Duration
	FixtureSource string
	Database      DatabaseConfig
	Logging       LoggingConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoggingConfig controls the slog handler and the optional rotating log file.
type LoggingConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "health_portal"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	sessionTTLMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}

	refreshDelayMs, err := strconv.Atoi(getEnv("REFRESH_DELAY_MS", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_DELAY_MS: %w", err)
	}

	logMaxSize, err := strconv.Atoi(getEnv("LOG_MAX_SIZE_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB: %w", err)
	}

	logMaxBackups, err := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_BACKUPS: %w", err)
	}

	logMaxAge, err := strconv.Atoi(getEnv("LOG_MAX_AGE_DAYS", "28"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_AGE_DAYS: %w", err)
	}

	fixtureSource := strings.ToLower(getEnv("FIXTURE_SOURCE", FixtureSourceStatic))
	if fixtureSource != FixtureSourceStatic && fixtureSource != FixtureSourceMySQL {
		return nil, fmt.Errorf("invalid FIXTURE_SOURCE %q: want %q or %q", fixtureSource, FixtureSourceStatic, FixtureSourceMySQL)
	}

	return &Config{
		Port:          getEnv("PORT", "3001"),
		Origin:        getEnv("ORIGIN", "http://localhost:5173"),
		Environment:   getEnv("APP_ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", "default_session_secret"),
		SessionTTL:    time.Duration(sessionTTLMinutes) * time.Minute,
		RefreshDelay:  time.Duration(refreshDelayMs) * time.Millisecond,
		FixtureSource: fixtureSource,
		Database:      dbConfig,
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAgeDays: logMaxAge,
		},
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
