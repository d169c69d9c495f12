package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Load loads config from path if it exists, applying defaults and env
// overrides. The token is usually supplied through the environment, so a
// missing config file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := json.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromReader loads config from an io.Reader, applying defaults and env
// overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	envMap := map[string]*string{
		"DISCORD_TOKEN":        &cfg.Token,
		"COUNTDOWN_PREFIX":     &cfg.Prefix,
		"COUNTDOWN_STORE_PATH": &cfg.StorePath,
		"COUNTDOWN_LOG_LEVEL":  &cfg.Log.Level,
		"COUNTDOWN_LOG_FILE":   &cfg.Log.File,
	}
	for env, ptr := range envMap {
		if val := os.Getenv(env); val != "" {
			*ptr = val
		}
	}

	if val := os.Getenv("COUNTDOWN_UPDATE_INTERVAL"); val != "" {
		ms, err := strconv.Atoi(val)
		if err != nil || ms <= 0 {
			slog.Warn("ignoring invalid COUNTDOWN_UPDATE_INTERVAL", "value", val)
			return
		}
		cfg.UpdateInterval = ms
	}
}
