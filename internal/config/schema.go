package config

import (
	"errors"
	"time"
)

// Config is the top-level configuration.
type Config struct {
	Token          string    `json:"token"`          // discord bot token, normally env-only
	Prefix         string    `json:"prefix"`         // command trigger prefix
	UpdateInterval int       `json:"updateInterval"` // refresh cadence in milliseconds
	StorePath      string    `json:"storePath"`      // countdown store file
	Log            LogConfig `json:"log"`
}

type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// DefaultConfig returns a Config with sensible defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Prefix:         "!",
		UpdateInterval: 60000,
		StorePath:      "countdowns.json",
		Log: LogConfig{
			Level: "info",
			File:  "logs/bot.log",
		},
	}
}

// Interval returns the refresh cadence as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.UpdateInterval) * time.Millisecond
}

// Validate checks the fields the bot cannot run without.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("discord token is required (set DISCORD_TOKEN)")
	}
	if c.Prefix == "" {
		return errors.New("command prefix must not be empty")
	}
	if c.UpdateInterval <= 0 {
		return errors.New("updateInterval must be positive")
	}
	return nil
}
