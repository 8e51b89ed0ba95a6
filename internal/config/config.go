// Package config loads runtime settings from the environment and an optional
// YAML demo plan.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
	"github.com/msomdec/practice-demos/internal/service"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the program reads at startup.
type Config struct {
	Port         string
	DatabasePath string
	APIBaseURL   string
	HTTPTimeout  time.Duration
	ShareSecret  string
	ShareTTL     time.Duration
	AdminKeyHash string
	LogLevel     slog.Level
	Plan         service.Plan
}

// planFile is the YAML layout of PRACTICE_CONFIG.
type planFile struct {
	APIBaseURL string   `yaml:"api_base_url"`
	Demos      []string `yaml:"demos"`
	Async      struct {
		PromiseDelay string `yaml:"promise_delay"`
		AwaitDelay   string `yaml:"await_delay"`
	} `yaml:"async"`
	Posts struct {
		IDs        []int64 `yaml:"ids"`
		SampleSize *int    `yaml:"sample_size"`
		BadPath    string  `yaml:"bad_path"`
	} `yaml:"posts"`
}

// Load builds a Config from getenv. Values from the YAML file named by
// PRACTICE_CONFIG are applied first; environment variables override them.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:         envOrDefault(getenv, "PORT", "8080"),
		DatabasePath: envOrDefault(getenv, "DATABASE_PATH", "practice.db"),
		APIBaseURL:   service.DefaultAPIBaseURL,
		HTTPTimeout:  10 * time.Second,
		ShareSecret:  getenv("SHARE_SECRET"),
		ShareTTL:     7 * 24 * time.Hour,
		AdminKeyHash: getenv("ADMIN_KEY_HASH"),
		Plan:         service.DefaultPlan(),
	}

	if path := getenv("PRACTICE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := applyPlanFile(&cfg, data); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	if v := getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}

	if v := getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("%w: HTTP_TIMEOUT must be a non-negative duration", domain.ErrInvalidInput)
		}
		cfg.HTTPTimeout = d
	}

	if v := getenv("SHARE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: SHARE_TTL must be a positive duration", domain.ErrInvalidInput)
		}
		cfg.ShareTTL = d
	}

	if v := getenv("DEMOS"); v != "" {
		cfg.Plan.Demos = splitList(v)
	}

	level, err := parseLevel(envOrDefault(getenv, "LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("%w: PORT must be numeric", domain.ErrInvalidInput)
	}

	return cfg, nil
}

// ValidateServe checks the settings only the HTTP server needs.
func (c Config) ValidateServe() error {
	if len(c.ShareSecret) < 32 {
		return fmt.Errorf("%w: SHARE_SECRET must be at least 32 characters for HMAC-SHA256 security", domain.ErrInvalidInput)
	}
	return nil
}

func applyPlanFile(cfg *Config, data []byte) error {
	var f planFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse yaml: %v", domain.ErrInvalidInput, err)
	}

	if f.APIBaseURL != "" {
		cfg.APIBaseURL = f.APIBaseURL
	}
	if len(f.Demos) > 0 {
		cfg.Plan.Demos = f.Demos
	}
	if f.Async.PromiseDelay != "" {
		d, err := parseDelay("async.promise_delay", f.Async.PromiseDelay)
		if err != nil {
			return err
		}
		cfg.Plan.PromiseDelay = d
	}
	if f.Async.AwaitDelay != "" {
		d, err := parseDelay("async.await_delay", f.Async.AwaitDelay)
		if err != nil {
			return err
		}
		cfg.Plan.AwaitDelay = d
	}
	if len(f.Posts.IDs) > 0 {
		cfg.Plan.PostIDs = f.Posts.IDs
	}
	if f.Posts.SampleSize != nil {
		if *f.Posts.SampleSize < 0 {
			return fmt.Errorf("%w: posts.sample_size must not be negative", domain.ErrInvalidInput)
		}
		cfg.Plan.SampleSize = *f.Posts.SampleSize
	}
	if f.Posts.BadPath != "" {
		cfg.Plan.BadPath = f.Posts.BadPath
	}
	return nil
}

func parseDelay(field, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative duration", domain.ErrInvalidInput, field)
	}
	return d, nil
}

func parseLevel(v string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("%w: LOG_LEVEL %q", domain.ErrInvalidInput, v)
	}
	return level, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func envOrDefault(getenv func(string) string, key, defaultVal string) string {
	if val := getenv(key); val != "" {
		return val
	}
	return defaultVal
}
