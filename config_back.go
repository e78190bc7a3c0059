//go:build !wasm

package jobly

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig reads JOBLY_* variables after loading the given .env files.
// Missing files are ignored; variables already set in the environment win.
func LoadConfig(files ...string) Config {
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	cfg := Config{
		APIBaseURL: getEnv("JOBLY_API_BASE_URL", DefaultAPIBaseURL),
		LogLevel:   getEnv("JOBLY_LOG_LEVEL", "info"),
		LogFormat:  getEnv("JOBLY_LOG_FORMAT", "console"),
	}
	if d, err := time.ParseDuration(os.Getenv("JOBLY_TIMEOUT")); err == nil {
		cfg.Timeout = d
	}
	return cfg.withDefaults()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
