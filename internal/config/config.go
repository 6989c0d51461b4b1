package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Content layout
	ContentRoot string
	NavFile     string // empty = built-in site navigation
	Ignore      []string

	// Reload behavior
	Watch          bool
	ReloadDebounce time.Duration

	// Strict mode fails startup when checks find errors.
	Strict bool

	// Auth for mutating endpoints (reload). Empty disables them.
	APIKey string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		ContentRoot: envOr("CONTENT_ROOT", "./docs"),
		NavFile:     os.Getenv("NAV_FILE"),
		Ignore:      envList("NAV_IGNORE", "**/.git/**,**/node_modules/**"),

		Watch:          envBool("WATCH", true),
		ReloadDebounce: envDuration("RELOAD_DEBOUNCE", 250*time.Millisecond),

		Strict: envBool("STRICT", false),

		APIKey: os.Getenv("DOCNAV_API_KEY"),
	}

	if cfg.ReloadDebounce <= 0 {
		cfg.ReloadDebounce = 250 * time.Millisecond
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ContentRoot == "" {
		return fmt.Errorf("CONTENT_ROOT is required")
	}
	info, err := os.Stat(c.ContentRoot)
	if err != nil {
		return fmt.Errorf("CONTENT_ROOT: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("CONTENT_ROOT %s is not a directory", c.ContentRoot)
	}
	if c.NavFile != "" {
		if _, err := os.Stat(c.NavFile); err != nil {
			return fmt.Errorf("NAV_FILE: %w", err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key, fallback string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
