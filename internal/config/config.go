package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/member-directory-go/internal/constants"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Batch    BatchConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port int
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type BatchConfig struct {
	ChunkSize       int
	InterChunkDelay time.Duration
	MaxRangeSize    int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("MEMBER_BASE_URL", "https://directory.lmsamaj.org"),
			Timeout: time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", int(constants.ScraperConfig.Timeout.Seconds()))) * time.Second,
		},
		Batch: BatchConfig{
			ChunkSize:       getEnvInt("BATCH_CHUNK_SIZE", constants.BatchConfig.DefaultChunkSize),
			InterChunkDelay: time.Duration(getEnvInt("BATCH_CHUNK_DELAY_MS", int(constants.BatchConfig.DefaultInterChunkDelay.Milliseconds()))) * time.Millisecond,
			MaxRangeSize:    getEnvInt("BATCH_MAX_RANGE_SIZE", constants.BatchConfig.MaxRangeSize),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("MEMBER_BASE_URL is required")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive")
	}
	if c.Batch.ChunkSize < 1 {
		return fmt.Errorf("BATCH_CHUNK_SIZE must be at least 1")
	}
	if c.Batch.MaxRangeSize < 1 {
		return fmt.Errorf("BATCH_MAX_RANGE_SIZE must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
