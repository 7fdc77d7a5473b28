package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database
	Database DatabaseConfig

	// External API
	APIFootball APIFootballConfig

	// Logging
	LogLevel  string
	LogFormat string

	// Monitoring
	MetricsEnabled bool
}

// DatabaseConfig holds PostgreSQL configuration.
// The URL is optional: only commands that persist selections need it.
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// APIFootballConfig holds API-Sports football API configuration.
type APIFootballConfig struct {
	APIKey  string
	BaseURL string
	Host    string // x-rapidapi-host header value

	// RequestDelay is the fixed pause between consecutive player fetches.
	RequestDelay time.Duration

	// RateLimit is the upstream requests-per-minute budget enforced by the
	// HTTP client, separate from RequestDelay pacing. 0 disables it.
	RateLimit int

	// Leagues are the league ids whose squads feed the id fetcher.
	// 39 = Premier League, 140 = La Liga.
	Leagues []int
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// External API
		APIFootball: APIFootballConfig{
			APIKey:       getEnv("APIFOOTBALL_API_KEY", ""),
			BaseURL:      getEnv("APIFOOTBALL_BASE_URL", "https://v3.football.api-sports.io"),
			Host:         getEnv("APIFOOTBALL_HOST", "v3.football.api-sports.io"),
			RequestDelay: getEnvAsDuration("APIFOOTBALL_REQUEST_DELAY", "200ms"),
			RateLimit:    getEnvAsInt("APIFOOTBALL_RATE_LIMIT", 300),
			Leagues:      getEnvAsIntSlice("APIFOOTBALL_LEAGUES", []int{39, 140}),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		// Monitoring
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.APIFootball.APIKey == "" {
		return fmt.Errorf("APIFOOTBALL_API_KEY is required")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.APIFootball.RequestDelay < 0 {
		return fmt.Errorf("APIFOOTBALL_REQUEST_DELAY must not be negative")
	}

	if len(c.APIFootball.Leagues) == 0 {
		return fmt.Errorf("APIFOOTBALL_LEAGUES must list at least one league id")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

// getEnvAsIntSlice parses a comma-separated list of ints, e.g. "39,140".
func getEnvAsIntSlice(key string, defaultValue []int) []int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return defaultValue
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return defaultValue
	}
	return values
}
