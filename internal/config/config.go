package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all httpkit runtime configuration
type Config struct {
	Client ClientConfig
	Logger LoggerConfig
}

// ClientConfig holds defaults applied to client sends
type ClientConfig struct {
	ReadTimeout     time.Duration // default read timeout when a request sets none
	RateLimitRPS    float64       // sustained client-side send rate
	RateLimitBurst  int           // max burst admitted by the rate limiter
	RequestIDHeader string        // header carrying the generated invocation id
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	readTimeoutSecs := getEnvAsFloat("HTTP_READ_TIMEOUT", 30)

	cfg := &Config{
		Client: ClientConfig{
			ReadTimeout:     time.Duration(readTimeoutSecs * float64(time.Second)),
			RateLimitRPS:    getEnvAsFloat("HTTP_RATE_LIMIT_RPS", 50),
			RateLimitBurst:  getEnvAsInt("HTTP_RATE_LIMIT_BURST", 10),
			RequestIDHeader: getEnv("HTTP_REQUEST_ID_HEADER", "X-Request-Id"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields
	if cfg.Client.ReadTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_READ_TIMEOUT must be positive")
	}
	if cfg.Client.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("HTTP_RATE_LIMIT_RPS must be positive")
	}
	if cfg.Client.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("HTTP_RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

// Helper functions

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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
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
