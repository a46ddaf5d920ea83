package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Listen       string        `yaml:"listen"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RTTConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	UseMockData bool          `yaml:"use_mock_data"`

	// Credentials only ever come from the environment.
	Username string `yaml:"-"`
	Password string `yaml:"-"`
}

// HasCredentials reports whether live RTT lookups are possible.
func (r RTTConfig) HasCredentials() bool {
	return r.Username != "" && r.Password != ""
}

type SuggestionsConfig struct {
	Table string `yaml:"table"`

	URL string `yaml:"-"`
	Key string `yaml:"-"`
}

// Configured reports whether the station database can be reached.
func (s SuggestionsConfig) Configured() bool {
	return s.URL != "" && s.Key != ""
}

type WatchConfig struct {
	BoardURL string        `yaml:"board_url"`
	Interval time.Duration `yaml:"interval"`

	PushoverToken string `yaml:"-"`
	PushoverUser  string `yaml:"-"`
}

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	RTT         RTTConfig         `yaml:"rtt"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Watch       WatchConfig       `yaml:"watch"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:       ":3000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,

			AllowedOrigins: []string{"*"},
		},
		RTT: RTTConfig{
			BaseURL: "https://api.rtt.io/api/v1",
			Timeout: 30 * time.Second,
		},
		Suggestions: SuggestionsConfig{
			Table: "Stations",
		},
		Watch: WatchConfig{
			BoardURL: "http://localhost:3000",
			Interval: time.Minute,
		},
	}
}

// Load reads the config file at path over the defaults, applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays secrets and the mock data switch from the environment.
// When USE_MOCK_DATA is set, only the exact value "true" enables mock data.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	c.RTT.Username = get("RTT_USERNAME")
	c.RTT.Password = get("RTT_PASSWORD")
	c.Suggestions.URL = get("SUPABASE_URL")
	c.Suggestions.Key = get("SUPABASE_ANON_KEY")
	c.Watch.PushoverToken = get("PUSHOVER_TOKEN")
	c.Watch.PushoverUser = get("PUSHOVER_USER")

	if v := get("USE_MOCK_DATA"); v != "" {
		c.RTT.UseMockData = v == "true"
	}
}

func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server: listen is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server: timeouts must not be negative")
	}

	if _, err := url.ParseRequestURI(c.RTT.BaseURL); err != nil {
		return fmt.Errorf("rtt: invalid base_url %q: %w", c.RTT.BaseURL, err)
	}
	if c.RTT.Timeout <= 0 {
		return fmt.Errorf("rtt: timeout must be positive")
	}

	if c.Suggestions.Table == "" {
		return fmt.Errorf("suggestions: table is required")
	}

	if _, err := url.ParseRequestURI(c.Watch.BoardURL); err != nil {
		return fmt.Errorf("watch: invalid board_url %q: %w", c.Watch.BoardURL, err)
	}
	if c.Watch.Interval < 5*time.Second {
		return fmt.Errorf("watch: interval must be at least 5s")
	}

	return nil
}
