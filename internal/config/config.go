// Package config loads the server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	// Server
	Port string

	// Storage
	StoreDriver string
	DatabaseDSN string

	// Lot snapshot cache; empty RedisURL disables it
	RedisURL    string
	LotCacheTTL time.Duration

	// Auction clock
	AutoExtendTriggerMinutes  int
	AutoExtendDurationMinutes int

	// Concurrency
	LockWaitTimeout time.Duration

	// Eligibility
	MinBidderRating float64

	// Logging and monitoring
	LogLevel      string
	EnableMetrics bool
}

func LoadConfig() *Config {
	return &Config{
		Port: fmt.Sprintf(":%s", getEnv("PORT", "8080")),

		StoreDriver: getEnv("STORE_DRIVER", StoreMemory),
		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		RedisURL:    getEnv("REDIS_URL", ""),
		LotCacheTTL: getEnvAsDuration("LOT_CACHE_TTL", "30s"),

		AutoExtendTriggerMinutes:  getEnvAsInt("AUTO_EXTEND_TRIGGER_MINUTES", 5),
		AutoExtendDurationMinutes: getEnvAsInt("AUTO_EXTEND_DURATION_MINUTES", 10),

		LockWaitTimeout: getEnvAsDuration("LOCK_WAIT_TIMEOUT", "2s"),

		MinBidderRating: getEnvAsFloat("MIN_BIDDER_RATING", 0.8),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.StoreDriver)
	}
	if c.AutoExtendTriggerMinutes < 0 || c.AutoExtendDurationMinutes < 0 {
		return fmt.Errorf("config: auto-extend minutes must not be negative")
	}
	if c.MinBidderRating < 0 || c.MinBidderRating > 1 {
		return fmt.Errorf("config: MIN_BIDDER_RATING must be within [0,1], got %v", c.MinBidderRating)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
