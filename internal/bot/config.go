package bot

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is prepended to flag names to read them from the environment.
	EnvPrefix = "ABV_BOT_"

	DefaultHost         = "www.bilibili.com"
	DefaultTimeout      = 5 * time.Second
	DefaultMaxRedirects = 10
)

var ErrNoToken = errors.New("bot token is not set")

// Config holds the bot settings. Zero fields fall back to the defaults.
type Config struct {
	Token        string        `yaml:"token"`
	Host         string        `yaml:"host"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRedirects int           `yaml:"max_redirects"`
	LogLevel     string        `yaml:"log_level"`
}

// ReadConfig loads the YAML file at path, or only the defaults when path is
// empty.
func ReadConfig(path string) (*Config, error) {
	config := &Config{}
	if path != "" {
		bs, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(bs, config); err != nil {
			return nil, fmt.Errorf("failed parsing config file %s: %w", path, err)
		}
	}
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = DefaultMaxRedirects
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports a config the bot cannot start with.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: use --token, the config file or %sTOKEN", ErrNoToken, EnvPrefix)
	}
	return nil
}
