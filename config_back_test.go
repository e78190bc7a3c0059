//go:build !wasm

package jobly_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/tinywasm/jobly"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JOBLY_API_BASE_URL", "https://jobly.example.com")
	t.Setenv("JOBLY_TIMEOUT", "3s")
	os.Unsetenv("JOBLY_LOG_FORMAT")
	t.Cleanup(func() { os.Unsetenv("JOBLY_LOG_FORMAT") })

	env := filepath.Join(t.TempDir(), ".env")
	content := "JOBLY_LOG_FORMAT=json\nJOBLY_API_BASE_URL=http://ignored\n"
	if err := os.WriteFile(env, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := jobly.LoadConfig(env, filepath.Join(t.TempDir(), "missing.env"))
	if cfg.APIBaseURL != "https://jobly.example.com" {
		t.Errorf("expected environment to win, got '%s'", cfg.APIBaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.Timeout)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected log format from .env, got '%s'", cfg.LogFormat)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JOBLY_API_BASE_URL", "")
	t.Setenv("JOBLY_TIMEOUT", "")

	cfg := jobly.LoadConfig()
	if cfg.APIBaseURL != jobly.DefaultAPIBaseURL {
		t.Errorf("expected default base URL, got '%s'", cfg.APIBaseURL)
	}
	if cfg.Timeout != jobly.DefaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.Timeout)
	}
}

func TestLoggingSkipsPasswords(t *testing.T) {
	var buf bytes.Buffer
	jobly.SetLogger(jobly.NewLogger(&buf, jobly.Config{LogLevel: "debug", LogFormat: "json"}))
	t.Cleanup(func() { jobly.SetLogger(zerolog.Nop()) })

	f := jobly.NewProfileForm(jane, &fakeAPI{saveUser: jane}, nil)
	f.HandleChange(jobly.FieldPassword, "hunter22")
	f.HandleSubmit(context.Background())

	out := buf.String()
	if !strings.Contains(out, `"form":"profile"`) {
		t.Errorf("expected profile form events, got %s", out)
	}
	if strings.Contains(out, "hunter22") {
		t.Errorf("password leaked into the log")
	}
}
