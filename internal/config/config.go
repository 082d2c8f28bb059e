package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds everything the server needs at startup. Values come from a
// YAML file when CONFIG_FILE points at one, with environment variables
// taking precedence over both the file and the defaults.
type Config struct {
	Port           string        `yaml:"port"`
	DatabaseURL    string        `yaml:"database_url"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	ResetTokenTTL  time.Duration `yaml:"reset_token_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins"`

	// CookieSecure toggles the Secure flag on the session cookie; leave
	// false for local HTTP development.
	CookieSecure bool `yaml:"cookie_secure"`
}

var ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required")

func defaults() Config {
	return Config{
		Port:          "5050",
		SessionTTL:    6 * time.Hour,
		ResetTokenTTL: 15 * time.Minute,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
	}
}

// Load builds the runtime configuration: defaults, then the optional YAML
// file, then environment overrides.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.SessionTTL = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v == "true" || v == "1"
	}

	return cfg, nil
}

// Validate checks the parts of the config the server cannot run without.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
