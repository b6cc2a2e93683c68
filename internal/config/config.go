package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/imagegen/common"
	"github.com/jinzhu/configor"
)

// APIKeyEnv is the environment variable holding the Gemini credential.
const APIKeyEnv = "GEMINI_API_KEY"

// FileEnv names an optional YAML, TOML or JSON file with non-secret settings.
const FileEnv = "IMAGEGEN_CONFIG"

// ErrMissingCredential is returned by RequireCredential when no API key is set.
var ErrMissingCredential = errors.New(APIKeyEnv + " environment variable not set")

// Config holds the settings of one run. The API key is only read from the
// environment; the other fields may also come from a config file.
type Config struct {
	APIKey   string `env:"GEMINI_API_KEY" yaml:"-" toml:"-" json:"-"`
	Model    string `default:"gemini-1.5-pro" env:"IMAGEGEN_MODEL" yaml:"model" toml:"model" json:"model"`
	LogLevel string `default:"error" env:"IMAGEGEN_LOG_LEVEL" yaml:"log_level" toml:"log_level" json:"log_level"`
	Stream   bool   `env:"IMAGEGEN_STREAM" yaml:"stream" toml:"stream" json:"stream"`

	// Zero leaves the model's own default in place.
	Temperature float32 `env:"IMAGEGEN_TEMPERATURE" yaml:"temperature" toml:"temperature" json:"temperature"`
	MaxTokens   int     `env:"IMAGEGEN_MAX_TOKENS" yaml:"max_tokens" toml:"max_tokens" json:"max_tokens"`
}

// Load reads defaults, then the given files, then environment overrides.
// Missing files are ignored.
func Load(files ...string) (*Config, error) {
	cfg := &Config{}
	loader := configor.New(&configor.Config{ENVPrefix: "IMAGEGEN", Silent: true})
	if err := loader.Load(cfg, files...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if _, err := common.ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Temperature < 0 || cfg.MaxTokens < 0 {
		return nil, errors.New("load config: temperature and max_tokens must not be negative")
	}
	return cfg, nil
}

// RequireCredential fails with ErrMissingCredential when the API key is empty.
func (c *Config) RequireCredential() error {
	if c.APIKey == "" {
		return ErrMissingCredential
	}
	return nil
}

// Level returns the parsed log level. Load has already validated it.
func (c *Config) Level() common.LogLevel {
	level, err := common.ParseLogLevel(c.LogLevel)
	if err != nil {
		return common.ErrorLevel
	}
	return level
}
