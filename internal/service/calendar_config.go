package service

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"google.golang.org/api/calendar/v3"
)

// CalendarConfig holds configuration for Google Calendar integration
type CalendarConfig struct {
	CalendarID string   `toml:"calendar_id"`
	Scopes     []string `toml:"scopes"`
	// Endpoint overrides the Calendar API base URL. Empty means Google.
	Endpoint string `toml:"endpoint"`
}

// ServerConfig holds HTTP listener timeouts.
type ServerConfig struct {
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	IdleTimeout     time.Duration `toml:"idle_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// FeatureConfig holds non-sensitive settings that customize the service.
// Source: optional TOML configuration file
type FeatureConfig struct {
	Calendar CalendarConfig `toml:"calendar"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultFeatureConfig returns the settings used when no file is present.
func DefaultFeatureConfig() *FeatureConfig {
	cfg := &FeatureConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadFeatureConfig loads feature configuration from a TOML file.
// A missing file is not an error: defaults are returned instead.
func LoadFeatureConfig(path string) (*FeatureConfig, error) {
	var cfg FeatureConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to load feature config: %w", err)
			}
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *FeatureConfig) applyDefaults() {
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
	if len(c.Calendar.Scopes) == 0 {
		c.Calendar.Scopes = []string{calendar.CalendarScope}
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
}

