package config

import (
	"os"
	"time"
)

// Config holds process configuration from environment variables.
type Config struct {
	Port            string
	DBPath          string
	HouseholdPath   string
	TickInterval    time.Duration
	LogLevel        string
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubscriber string
}

// Load reads configuration from CHORENET_* environment variables, applying
// defaults for everything optional.
func Load() Config {
	return Config{
		Port:            getEnv("CHORENET_PORT", "8080"),
		DBPath:          getEnv("CHORENET_DB_PATH", "chorenet.db"),
		HouseholdPath:   getEnv("CHORENET_HOUSEHOLD", "household.yaml"),
		TickInterval:    getEnvDuration("CHORENET_TICK_INTERVAL", 60*time.Second),
		LogLevel:        getEnv("CHORENET_LOG_LEVEL", "info"),
		VAPIDPublicKey:  getEnv("CHORENET_VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey: getEnv("CHORENET_VAPID_PRIVATE_KEY", ""),
		VAPIDSubscriber: getEnv("CHORENET_VAPID_SUBSCRIBER", "mailto:noreply@chorenet.local"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
