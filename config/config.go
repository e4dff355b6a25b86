// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tradelingo/superbear/logger"
)

const (
	configDirName  = ".superbear"
	configFileName = "config.yaml"
)

var configDirOverride string

// SetConfigDir overrides the config directory for the current process.
// Empty value clears the override.
func SetConfigDir(dir string) {
	configDirOverride = strings.TrimSpace(dir)
}

// Config is the root configuration structure.
type Config struct {
	Backend BackendConfig `json:"backend" yaml:"backend"`
	Profile ProfileConfig `json:"profile" yaml:"profile"`
	Widget  WidgetConfig  `json:"widget,omitempty" yaml:"widget,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// BackendConfig describes the TradeLingo inference backend.
type BackendConfig struct {
	BaseURL          string `json:"baseUrl" yaml:"baseUrl"`
	Token            string `json:"token,omitempty" yaml:"token,omitempty"` // bearer token, optional
	ChatSessionID    string `json:"chatSessionId,omitempty" yaml:"chatSessionId,omitempty"`
	TherapySessionID string `json:"therapySessionId,omitempty" yaml:"therapySessionId,omitempty"`
	TimeoutSeconds   int    `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// ProfileConfig is the user profile sent with every chat request.
type ProfileConfig struct {
	Name             string `json:"name" yaml:"name"`
	TradingLevel     string `json:"tradingLevel" yaml:"tradingLevel"`         // beginner, intermediate, advanced
	LearningStyle    string `json:"learningStyle" yaml:"learningStyle"`       // visual, auditory, reading, kinesthetic
	RiskTolerance    string `json:"riskTolerance" yaml:"riskTolerance"`       // low, medium, high
	PreferredMarkets string `json:"preferredMarkets" yaml:"preferredMarkets"` // e.g. Stocks, Crypto, Forex
	TradingFrequency string `json:"tradingFrequency" yaml:"tradingFrequency"` // daily, weekly, monthly
}

// WidgetConfig contains mascot reveal timings and greeting copy.
type WidgetConfig struct {
	MascotDelayMS  int `json:"mascotDelayMs,omitempty" yaml:"mascotDelayMs,omitempty"`
	RemarkDelayMS  int `json:"remarkDelayMs,omitempty" yaml:"remarkDelayMs,omitempty"`
	BubbleDelayMS  int `json:"bubbleDelayMs,omitempty" yaml:"bubbleDelayMs,omitempty"`
	TypeIntervalMS int `json:"typeIntervalMs,omitempty" yaml:"typeIntervalMs,omitempty"`

	Remark          string `json:"remark,omitempty" yaml:"remark,omitempty"`
	TutorGreeting   string `json:"tutorGreeting,omitempty" yaml:"tutorGreeting,omitempty"`
	TherapyGreeting string `json:"therapyGreeting,omitempty" yaml:"therapyGreeting,omitempty"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"` // debug, info, warn, error
	Stdout  bool   `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
}

// BuildLoggerConfig converts the logging section into a logger.Config.
func (c *Config) BuildLoggerConfig() logger.Config {
	enabled := true
	if c.Logging.Enabled != nil {
		enabled = *c.Logging.Enabled
	}
	return logger.Config{
		Enabled: enabled,
		Level:   c.Logging.Level,
		Stdout:  c.Logging.Stdout,
		File:    c.Logging.File,
	}
}

// Dir returns the config directory, honoring the override.
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the path of the config file.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file, applying defaults for missing fields.
// A missing file is not an error; defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
