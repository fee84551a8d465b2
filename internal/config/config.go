// Package config loads and saves the global eventcal configuration stored
// at ~/.eventcal/config.yaml. Environment variables override file values,
// and command-line flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eventcal-io/eventcal/internal/errors"
)

// Config is the global eventcal configuration.
type Config struct {
	API     APIConfig     `yaml:"api,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Data    DataConfig    `yaml:"data,omitempty"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// LoggingConfig configures diagnostics output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty"` // "text", "json"
}

// DataConfig configures where durable client state lives.
type DataConfig struct {
	Dir        string `yaml:"dir,omitempty"`
	EventsFile string `yaml:"events_file,omitempty"` // optional catalog override
}

// Path returns the configuration file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".eventcal", "config.yaml")
	}
	return filepath.Join(home, ".eventcal", "config.yaml")
}

// Load reads the configuration file and applies environment overrides.
// A missing file is not an error; it yields the zero config plus overrides.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// LoadRaw reads the configuration file without environment overrides.
// Anything that mutates and saves the file must start from this, so
// transient env values never get written back as file settings.
func LoadRaw() (*Config, error) {
	return loadRawFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg, err := loadRawFrom(path)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadRawFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeConfigRead, fmt.Sprintf("read config file %s", path), err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, fmt.Sprintf("parse config file %s", path), err).
				WithSuggestion("Check the YAML syntax").
				WithSuggestion("Remove the file to start from defaults")
		}
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if url := os.Getenv("EVENTCAL_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if dir := os.Getenv("EVENTCAL_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if level := os.Getenv("EVENTCAL_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Save writes the configuration back to the config file, creating the
// directory if needed.
func Save(cfg *Config) error {
	return saveTo(Path(), cfg)
}

func saveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeConfigRead, "create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeConfigRead, fmt.Sprintf("write config file %s", path), err)
	}
	return nil
}

// Get returns the value of a dotted key, e.g. "api.base_url".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "data.dir":
		return c.Data.Dir, nil
	case "data.events_file":
		return c.Data.EventsFile, nil
	default:
		return "", errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown config key: %s", key)).
			WithSuggestion("Known keys: api.base_url, logging.level, logging.format, data.dir, data.events_file")
	}
}

// Set assigns the value of a dotted key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.base_url":
		c.API.BaseURL = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "data.dir":
		c.Data.Dir = value
	case "data.events_file":
		c.Data.EventsFile = value
	default:
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown config key: %s", key)).
			WithSuggestion("Known keys: api.base_url, logging.level, logging.format, data.dir, data.events_file")
	}
	return nil
}
