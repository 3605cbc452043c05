package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the client.
type Config struct {
	AppName     string
	Environment string
	API         APIConfig
	Store       StoreConfig
	Logger      LoggerConfig
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type StoreConfig struct {
	Path    string
	Bucket  string
	Persist bool
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the client works against a local backend
// out of the box.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "nutritrack"),
		Environment: getString("APP_ENV", "development"),
		API: APIConfig{
			BaseURL:        getString("NUTRITRACK_API_URL", "http://localhost:5000/api"),
			RequestTimeout: getDuration("NUTRITRACK_REQUEST_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Path:    getString("NUTRITRACK_SESSION_PATH", defaultSessionPath()),
			Bucket:  getString("NUTRITRACK_SESSION_BUCKET", "session"),
			Persist: getBool("NUTRITRACK_SESSION_PERSIST", true),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "warn"),
			Encoding: getString("LOG_ENCODING", "console"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.nutritrack/session.db"
	}
	return filepath.Join(home, ".nutritrack", "session.db")
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
