package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort      string
	LogSQL          bool
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		LogSQL:          getEnvBool("LOG_SQL", false),
		MaxBodyBytes:    getEnvInt64("MAX_BODY_BYTES", 1<<20), // 1 MiB
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if parsed, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return parsed
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if parsed, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && parsed > 0 {
		return parsed
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if parsed, err := time.ParseDuration(os.Getenv(key)); err == nil && parsed > 0 {
		return parsed
	}
	return defaultValue
}
