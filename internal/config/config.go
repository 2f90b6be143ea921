// Package config loads application configuration from command-line flags, environment variables and a .env file.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	domainerrors "github.com/cubhub/cubhub-web/internal/errors"
	"github.com/cubhub/cubhub-web/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Storage   StorageConfig
	Server    ServerConfig
	Upstream  UpstreamConfig
	Display   DisplayConfig
	Visitor   VisitorConfig
	RateLimit RateLimitConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `env:"ENV" validate:"required,oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
}

// StorageConfig holds local state paths. The data directory keeps the
// preferences database, the edit-session store and the visitor token key.
type StorageConfig struct {
	DataPath string `env:"DATA_PATH" validate:"required"`
}

// PreferencesDB is the SQLite file for per-visitor preferences.
func (s StorageConfig) PreferencesDB() string {
	return filepath.Join(s.DataPath, "preferences.db")
}

// SessionsDir is the Badger directory for editor sessions.
func (s StorageConfig) SessionsDir() string {
	return filepath.Join(s.DataPath, "sessions")
}

// VisitorKeyFile holds the hex-encoded visitor token key.
func (s StorageConfig) VisitorKeyFile() string {
	return filepath.Join(s.DataPath, "visitor.key")
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port               string        `env:"SERVER_PORT" validate:"required,numeric"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout        time.Duration `env:"SERVER_IDLE_TIMEOUT" validate:"gt=0"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS"`
}

// UpstreamConfig locates the listing, sitter and blog services.
type UpstreamConfig struct {
	BaseURL      string        `env:"UPSTREAM_BASE_URL" validate:"required,http_url"`
	ListingsPath string        `env:"UPSTREAM_LISTINGS_PATH" validate:"required,startswith=/"`
	SubmitPath   string        `env:"UPSTREAM_SUBMIT_PATH" validate:"required,startswith=/"`
	SittersPath  string        `env:"UPSTREAM_SITTERS_PATH" validate:"required,startswith=/"`
	BlogPath     string        `env:"UPSTREAM_BLOG_PATH" validate:"required,startswith=/"`
	ManagePath   string        `env:"UPSTREAM_MANAGE_PATH" validate:"required,startswith=/"`
	Timeout      time.Duration `env:"UPSTREAM_TIMEOUT" validate:"gt=0"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	// Timezone used for datetime-local publish dates.
	Timezone string `env:"DISPLAY_TIMEZONE" validate:"required"`
	Location *time.Location
	// TaxonomyFile optionally replaces the embedded category table.
	TaxonomyFile string `env:"TAXONOMY_FILE"`
	// TemplateDir, when set, serves templates from disk and reloads them on change.
	TemplateDir string `env:"TEMPLATE_DIR"`
}

// VisitorConfig holds per-visitor state lifetimes.
type VisitorConfig struct {
	TokenTTL   time.Duration `env:"VISITOR_TOKEN_TTL" validate:"gt=0"`
	SessionTTL time.Duration `env:"EDIT_SESSION_TTL" validate:"gt=0"`
}

// RateLimitConfig limits form submissions per client.
type RateLimitConfig struct {
	PerMinute int `env:"SUBMIT_RATE_PER_MINUTE" validate:"gt=0"`
	Burst     int `env:"SUBMIT_BURST" validate:"gt=0"`
}

// Load reads configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("cubhub-web", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := fs.String("data-path", "", "Directory for local state (default: ~/CubHub/data)")
	port := fs.String("port", "", "Server port (default: 8080)")
	readTimeout := fs.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := fs.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	upstreamURL := fs.String("upstream-url", "", "Base URL of the listing, sitter and blog services")
	upstreamTimeout := fs.String("upstream-timeout", "", "Upstream request timeout (default: 30s)")
	timezone := fs.String("timezone", "", "Display timezone (default: Europe/London)")
	taxonomyFile := fs.String("taxonomy-file", "", "YAML file overriding the category table")
	templateDir := fs.String("template-dir", "", "Serve templates from this directory and reload on change")
	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Missing .env is fine. godotenv never overrides variables already set.
	_ = godotenv.Load(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getConfigValue(*logLevel, "LOG_LEVEL", "info")),
		},
		Storage: StorageConfig{
			DataPath: getConfigValue(*dataPath, "DATA_PATH", ""),
		},
		Server: ServerConfig{
			Port:               getConfigValue(*port, "SERVER_PORT", "8080"),
			CORSAllowedOrigins: getListConfigValue("", "CORS_ALLOWED_ORIGINS"),
		},
		Upstream: UpstreamConfig{
			BaseURL:      strings.TrimRight(getConfigValue(*upstreamURL, "UPSTREAM_BASE_URL", ""), "/"),
			ListingsPath: getConfigValue("", "UPSTREAM_LISTINGS_PATH", "/.netlify/functions/get_listings"),
			SubmitPath:   getConfigValue("", "UPSTREAM_SUBMIT_PATH", "/.netlify/functions/submit_listing"),
			SittersPath:  getConfigValue("", "UPSTREAM_SITTERS_PATH", "/.netlify/functions/platform/sitters"),
			BlogPath:     getConfigValue("", "UPSTREAM_BLOG_PATH", "/.netlify/functions/get_blog_posts"),
			ManagePath:   getConfigValue("", "UPSTREAM_MANAGE_PATH", "/.netlify/functions/manage_blog_posts"),
		},
		Display: DisplayConfig{
			Timezone:     getConfigValue(*timezone, "DISPLAY_TIMEZONE", "Europe/London"),
			TaxonomyFile: getConfigValue(*taxonomyFile, "TAXONOMY_FILE", ""),
			TemplateDir:  getConfigValue(*templateDir, "TEMPLATE_DIR", ""),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getIntConfigValue("", "SUBMIT_RATE_PER_MINUTE", 20),
			Burst:     getIntConfigValue("", "SUBMIT_BURST", 5),
		},
	}

	durations := []struct {
		flagValue, envKey, def string
		dst                    *time.Duration
	}{
		{*readTimeout, "SERVER_READ_TIMEOUT", "15s", &cfg.Server.ReadTimeout},
		{*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s", &cfg.Server.WriteTimeout},
		{*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s", &cfg.Server.IdleTimeout},
		{*upstreamTimeout, "UPSTREAM_TIMEOUT", "30s", &cfg.Upstream.Timeout},
		{"", "VISITOR_TOKEN_TTL", "8760h", &cfg.Visitor.TokenTTL},
		{"", "EDIT_SESSION_TTL", "2h", &cfg.Visitor.SessionTTL},
	}
	for _, d := range durations {
		raw := getConfigValue(d.flagValue, d.envKey, d.def)
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, domainerrors.Wrapf(err, domainerrors.CodeConfig, "invalid %s %q", d.envKey, raw)
		}
		*d.dst = parsed
	}

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}
	if cfg.Display.TaxonomyFile != "" {
		expanded, err := expandPath(cfg.Display.TaxonomyFile, "")
		if err != nil {
			return nil, fmt.Errorf("invalid taxonomy file: %w", err)
		}
		cfg.Display.TaxonomyFile = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks struct constraints and resolves the display timezone.
func (c *Config) Validate() error {
	if err := validation.New().Validate(c); err != nil {
		return err
	}

	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeConfig, "unknown timezone %q", c.Display.Timezone)
	}
	c.Display.Location = loc
	return nil
}

// expandPath expands ~ and makes the path absolute. Empty path yields defaultPath.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = abs
	}
	return filepath.Clean(path), nil
}

func (c *Config) expandDataPath() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	expanded, err := expandPath(c.Storage.DataPath, filepath.Join(home, "CubHub", "data"))
	if err != nil {
		return err
	}
	c.Storage.DataPath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
// Unparseable values fall back to the default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue
	}
	return n
}

// getListConfigValue splits a comma-separated value, dropping blanks.
func getListConfigValue(flagValue, envKey string) []string {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
