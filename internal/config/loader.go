package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures environment driven configuration values for the portal.
type Config struct {
	// SQLiteDSN locates the durable slot storage.
	SQLiteDSN string `env:"PORTAL_SQLITE_DSN" envDefault:"file:portal.db?_pragma=busy_timeout(5000)"`
	// DataSlot names the slot holding the document snapshot.
	DataSlot string `env:"PORTAL_DATA_SLOT" envDefault:"fullstack_app_data"`
	// SessionSlot names the slot holding the session marker.
	SessionSlot string `env:"PORTAL_SESSION_SLOT" envDefault:"auth_token"`
	// VerificationSlot names the slot holding the pending-verification marker.
	VerificationSlot string `env:"PORTAL_VERIFICATION_SLOT" envDefault:"unverified_email"`
	// NoticeTTL controls how long inline messages stay visible.
	NoticeTTL time.Duration `env:"PORTAL_NOTICE_TTL" envDefault:"5s"`
	// LogLevel selects the slog level: debug, info, warn, or error.
	LogLevel string `env:"PORTAL_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration values from the current process environment and
// validates them.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	invalid := make([]string, 0, 2)

	if strings.TrimSpace(cfg.SQLiteDSN) == "" {
		invalid = append(invalid, "PORTAL_SQLITE_DSN")
	}
	if cfg.NoticeTTL <= 0 {
		invalid = append(invalid, "PORTAL_NOTICE_TTL")
	}
	for envName, slot := range map[string]string{
		"PORTAL_DATA_SLOT":         cfg.DataSlot,
		"PORTAL_SESSION_SLOT":      cfg.SessionSlot,
		"PORTAL_VERIFICATION_SLOT": cfg.VerificationSlot,
	} {
		if strings.TrimSpace(slot) == "" {
			invalid = append(invalid, envName)
		}
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		invalid = append(invalid, "PORTAL_LOG_LEVEL")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// SlogLevel returns the configured slog level.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
}
