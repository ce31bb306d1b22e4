package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"veritext/internal/detect"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env      Environment
	LogLevel string
}

type ServerConfig struct {
	Port                   int
	ReadTimeoutSeconds     int
	WriteTimeoutSeconds    int
	ShutdownTimeoutSeconds int
}

type IngestConfig struct {
	MaxUploadBytes int64
	LanguageGuard  bool
}

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Ingest   IngestConfig
	Detector detect.Params
}

// Load reads an optional .env file, then the environment, and validates the
// result. Detector calibration overrides ride along under DETECT_* keys.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("VERITEXT_ENV", "development"))

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			LogLevel: getLogLevel(env),
		},
		Server: ServerConfig{
			Port:                   getEnvInt("VERITEXT_PORT", 8080),
			ReadTimeoutSeconds:     getEnvInt("VERITEXT_READ_TIMEOUT_SECONDS", 15),
			WriteTimeoutSeconds:    getEnvInt("VERITEXT_WRITE_TIMEOUT_SECONDS", 30),
			ShutdownTimeoutSeconds: getEnvInt("VERITEXT_SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		Ingest: IngestConfig{
			MaxUploadBytes: getEnvInt64("VERITEXT_MAX_UPLOAD_BYTES", 10<<20),
			LanguageGuard:  getEnvBool("VERITEXT_LANGUAGE_GUARD", true),
		},
		Detector: detect.ParamsFromEnv(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("VERITEXT_PORT out of range: %d", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.Server.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("VERITEXT_SHUTDOWN_TIMEOUT_SECONDS must not be negative")
	}
	if c.Ingest.MaxUploadBytes <= 0 {
		return fmt.Errorf("VERITEXT_MAX_UPLOAD_BYTES must be positive: %d", c.Ingest.MaxUploadBytes)
	}
	return nil
}

func parseEnvironment(raw string) Environment {
	env := Environment(strings.ToLower(raw))
	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("VERITEXT_LOG_LEVEL", "info")
	}
	return getEnv("VERITEXT_LOG_LEVEL", "debug")
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

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if raw == "" {
		return defaultValue
	}
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}
