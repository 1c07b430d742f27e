package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PlaceholderRemoteURL is the sentinel shipped in example configs. It means
// "not configured" and triggers fallback to the local provider.
const PlaceholderRemoteURL = "PASTE_YOUR_URL_TO_GOOGLE_SHEETS_HERE"

const (
	// DefaultTimeLimit is the per-question countdown budget.
	DefaultTimeLimit = 40 * time.Second

	// DefaultLocalPath is the bundled questions file.
	DefaultLocalPath = "questions.json"

	// DefaultTestSize is the preset size for timed tests and mock exams.
	DefaultTestSize = 20
)

// Config carries everything resolved from the environment.
type Config struct {
	// RemoteURL is the published spreadsheet export URL. Empty when unset
	// or left at the placeholder sentinel.
	RemoteURL string

	// LocalPath is the local questions file (JSON or CSV).
	LocalPath string

	// DBPath overrides the question cache location. Empty means the
	// default XDG path.
	DBPath string

	// TimeLimit is the per-question countdown.
	TimeLimit time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment. Every field has a working default; Load never fails.
func Load() Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		RemoteURL: os.Getenv("PREPDECK_SHEET_URL"),
		LocalPath: envOr("PREPDECK_QUESTIONS", DefaultLocalPath),
		DBPath:    os.Getenv("PREPDECK_DB"),
		TimeLimit: DefaultTimeLimit,
	}

	if cfg.RemoteURL == PlaceholderRemoteURL {
		cfg.RemoteURL = ""
	}

	if v := os.Getenv("PREPDECK_TIME_LIMIT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeLimit = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
