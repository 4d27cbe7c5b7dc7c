package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName       = "MiniBank"
	defaultAppEnv        = "development"
	defaultPort          = "3000"
	defaultLogLevel      = "info"
	defaultUsersFile     = "data/users.json"
	defaultJSONBinURL    = "https://api.jsonbin.io/v3"
	defaultStoreTimeout  = 10 * time.Second
	defaultSessionTTL    = time.Hour
	defaultShutdownDelay = 10 * time.Second

	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
)

// Supported document store backends.
const (
	BackendJSONBin  = "jsonbin"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	StoreBackend   string
	JSONBinURL     string
	JSONBinKey     string
	JSONBinBinID   string
	UsersFile      string
	DatabaseURL    string
	RedisURL       string
	NATSURL        string
	StoreTimeout   time.Duration
	SessionTTL     time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", BackendFile)),
		JSONBinURL:     getEnv("JSONBIN_URL", defaultJSONBinURL),
		JSONBinKey:     os.Getenv("JSONBIN_API_KEY"),
		JSONBinBinID:   os.Getenv("JSONBIN_BIN_ID"),
		UsersFile:      getEnv("USERS_FILE", defaultUsersFile),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		NATSURL:        os.Getenv("NATS_URL"),
		StoreTimeout:   defaultStoreTimeout,
		SessionTTL:     defaultSessionTTL,
		ShutdownPeriod: defaultShutdownDelay,
	}

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
		}
		cfg.StoreTimeout = d
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	switch cfg.StoreBackend {
	case BackendJSONBin:
		if cfg.JSONBinKey == "" {
			return Config{}, fmt.Errorf("JSONBIN_API_KEY must be set when STORE_BACKEND=%s", BackendJSONBin)
		}
		if cfg.JSONBinBinID == "" {
			return Config{}, fmt.Errorf("JSONBIN_BIN_ID must be set when STORE_BACKEND=%s", BackendJSONBin)
		}
	case BackendFile:
		if cfg.UsersFile == "" {
			return Config{}, fmt.Errorf("USERS_FILE must not be empty when STORE_BACKEND=%s", BackendFile)
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when STORE_BACKEND=%s", BackendPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
