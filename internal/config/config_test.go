package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("RTT_USERNAME", "")
	t.Setenv("RTT_PASSWORD", "")
	t.Setenv("USE_MOCK_DATA", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":3000" {
		t.Errorf("expected default listen address, got %q", cfg.Server.Listen)
	}
	if cfg.RTT.HasCredentials() {
		t.Error("expected no credentials")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stationboard.yaml")
	data := []byte(`
server:
  listen: ":8080"
rtt:
  timeout: 10s
  use_mock_data: true
watch:
  interval: 2m
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("USE_MOCK_DATA", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Server.Listen)
	}
	if cfg.RTT.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.RTT.Timeout)
	}
	if !cfg.RTT.UseMockData {
		t.Error("expected mock data from file")
	}
	if cfg.Watch.Interval != 2*time.Minute {
		t.Errorf("expected 2m interval, got %s", cfg.Watch.Interval)
	}
	// Untouched sections keep their defaults.
	if cfg.Suggestions.Table != "Stations" {
		t.Errorf("expected default table, got %q", cfg.Suggestions.Table)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Run("secrets and mock switch", func(t *testing.T) {
		cfg := Default()
		cfg.ApplyEnv(envFrom(map[string]string{
			"RTT_USERNAME":      "rttuser",
			"RTT_PASSWORD":      "rttpass",
			"USE_MOCK_DATA":     "true",
			"SUPABASE_URL":      "postgres://db.example.com:5432/postgres",
			"SUPABASE_ANON_KEY": "anon",
		}))
		if !cfg.RTT.HasCredentials() {
			t.Error("expected credentials")
		}
		if !cfg.RTT.UseMockData {
			t.Error("expected mock data enabled")
		}
		if !cfg.Suggestions.Configured() {
			t.Error("expected suggestions store configured")
		}
	})

	t.Run("half credentials are not credentials", func(t *testing.T) {
		cfg := Default()
		cfg.ApplyEnv(envFrom(map[string]string{"RTT_USERNAME": "rttuser"}))
		if cfg.RTT.HasCredentials() {
			t.Error("expected missing password to disable live lookups")
		}
	})

	t.Run("mock switch only accepts true", func(t *testing.T) {
		for _, v := range []string{"yes", "1", "TRUE", "maybe", "false"} {
			cfg := Default()
			cfg.RTT.UseMockData = true
			cfg.ApplyEnv(envFrom(map[string]string{"USE_MOCK_DATA": v}))
			if cfg.RTT.UseMockData {
				t.Errorf("USE_MOCK_DATA=%q enabled mock data", v)
			}
		}
	})

	t.Run("unset mock switch keeps file value", func(t *testing.T) {
		cfg := Default()
		cfg.RTT.UseMockData = true
		cfg.ApplyEnv(envFrom(map[string]string{}))
		if !cfg.RTT.UseMockData {
			t.Error("expected file value to be kept")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty listen":      func(c *Config) { c.Server.Listen = "" },
		"negative timeout":  func(c *Config) { c.Server.ReadTimeout = -time.Second },
		"bad base url":      func(c *Config) { c.RTT.BaseURL = "not a url" },
		"zero rtt timeout":  func(c *Config) { c.RTT.Timeout = 0 },
		"empty table":       func(c *Config) { c.Suggestions.Table = "" },
		"short interval":    func(c *Config) { c.Watch.Interval = time.Second },
		"bad board address": func(c *Config) { c.Watch.BoardURL = "" },
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
