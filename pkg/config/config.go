package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds persisted defaults for gpudoctor. Flags and
// GPUDOCTOR_* environment variables override these at runtime.
type Config struct {
	Mode           string `yaml:"mode"`
	OutDir         string `yaml:"out_dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Redact         bool   `yaml:"redact"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:           "full",
		OutDir:         ".",
		TimeoutSeconds: 10,
		Redact:         true,
	}
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".gpudoctor")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Set updates a single named setting from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "mode":
		c.Mode = value
	case "out_dir":
		c.OutDir = value
	case "timeout_seconds":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		c.TimeoutSeconds = n
	case "redact":
		switch value {
		case "true", "on", "yes":
			c.Redact = true
		case "false", "off", "no":
			c.Redact = false
		default:
			return fmt.Errorf("redact must be true or false, got %q", value)
		}
	default:
		return fmt.Errorf("unknown setting %q (valid: mode, out_dir, timeout_seconds, redact)", key)
	}
	return nil
}
