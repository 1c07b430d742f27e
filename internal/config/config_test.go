package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PREPDECK_SHEET_URL", "")
	t.Setenv("PREPDECK_QUESTIONS", "")
	t.Setenv("PREPDECK_DB", "")
	t.Setenv("PREPDECK_TIME_LIMIT", "")

	cfg := Load()
	if cfg.RemoteURL != "" {
		t.Errorf("RemoteURL = %q", cfg.RemoteURL)
	}
	if cfg.LocalPath != DefaultLocalPath {
		t.Errorf("LocalPath = %q", cfg.LocalPath)
	}
	if cfg.TimeLimit != DefaultTimeLimit {
		t.Errorf("TimeLimit = %v", cfg.TimeLimit)
	}
}

func TestLoadPlaceholderURLTreatedAsUnset(t *testing.T) {
	t.Setenv("PREPDECK_SHEET_URL", PlaceholderRemoteURL)

	cfg := Load()
	if cfg.RemoteURL != "" {
		t.Errorf("placeholder URL not cleared: %q", cfg.RemoteURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PREPDECK_SHEET_URL", "https://example.com/export.csv")
	t.Setenv("PREPDECK_QUESTIONS", "custom.json")
	t.Setenv("PREPDECK_DB", "/tmp/x.db")
	t.Setenv("PREPDECK_TIME_LIMIT", "25")

	cfg := Load()
	if cfg.RemoteURL != "https://example.com/export.csv" {
		t.Errorf("RemoteURL = %q", cfg.RemoteURL)
	}
	if cfg.LocalPath != "custom.json" {
		t.Errorf("LocalPath = %q", cfg.LocalPath)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TimeLimit != 25*time.Second {
		t.Errorf("TimeLimit = %v", cfg.TimeLimit)
	}
}

func TestLoadRejectsBadTimeLimit(t *testing.T) {
	for _, v := range []string{"0", "-5", "soon"} {
		t.Setenv("PREPDECK_TIME_LIMIT", v)
		if cfg := Load(); cfg.TimeLimit != DefaultTimeLimit {
			t.Errorf("TimeLimit = %v for %q", cfg.TimeLimit, v)
		}
	}
}
