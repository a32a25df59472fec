package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// StorePath is the JSON file backing the durable user/booking store.
	StorePath string

	// Session state backend: "memory" or "redis".
	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// Simulated delays. The search delay stands in for the network round
	// trip, the payment delay for gateway processing.
	SearchDelay  time.Duration
	PaymentDelay time.Duration

	FlightData FlightDataConfig
}

// FlightDataConfig configures the external flight-data API client used by
// the proxy binary.
type FlightDataConfig struct {
	BaseURL string
	APIKey  string
	Port    string
	Timeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		StorePath: getEnv("STORE_PATH", "data/skyways.json"),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 30*time.Minute),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		SearchDelay:  getEnvDuration("SEARCH_DELAY", 1500*time.Millisecond),
		PaymentDelay: getEnvDuration("PAYMENT_DELAY", 3*time.Second),

		FlightData: FlightDataConfig{
			BaseURL: getEnv("AVIATIONSTACK_URL", "http://api.aviationstack.com/v1"),
			APIKey:  getEnv("AVIATIONSTACK_API_KEY", ""),
			Port:    getEnv("PROXY_PORT", "3001"),
			Timeout: getEnvDuration("AVIATIONSTACK_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
