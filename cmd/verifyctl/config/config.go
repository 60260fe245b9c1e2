package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	envVarApplicationID   = "VERIFYKIT_APP_ID"
	envVarSharedSecretKey = "VERIFYKIT_SECRET_KEY"
	envVarEnvironmentHost = "VERIFYKIT_ENDPOINT"
	configFileName        = ".verifykit/config.yml"
)

// Config holds the verifyctl configuration
type Config struct {
	ApplicationID   string `yaml:"app_id"`
	SharedSecretKey string `yaml:"secret_key"`
	EnvironmentHost string `yaml:"endpoint"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	// Try to load from config file
	if err := loadFromFile(cfg); err != nil {
		// Ignore file not found errors, use defaults
	}

	return cfg, nil
}

// GetApplicationID returns the application ID with priority: env var > config file
func (c *Config) GetApplicationID() string {
	if id := os.Getenv(envVarApplicationID); id != "" {
		return id
	}
	return c.ApplicationID
}

// GetSharedSecretKey returns the secret key with priority: env var > config file
func (c *Config) GetSharedSecretKey() string {
	if key := os.Getenv(envVarSharedSecretKey); key != "" {
		return key
	}
	return c.SharedSecretKey
}

// GetEnvironmentHost returns the endpoint with priority: env var > config file.
// Empty means the builder's own default applies.
func (c *Config) GetEnvironmentHost() string {
	if host := os.Getenv(envVarEnvironmentHost); host != "" {
		return host
	}
	return c.EnvironmentHost
}

// loadFromFile loads configuration from ~/.verifykit/config.yml
func loadFromFile(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, configFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
