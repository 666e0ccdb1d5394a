// Package config loads the service configuration from per-environment YAML
// files with environment variable expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Recognizer providers.
const (
	ProviderOpenAI  = "openai"
	ProviderLexical = "lexical"
)

// Config holds the immich-search service configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Immich     ImmichConfig     `yaml:"immich"`
	Recognizer RecognizerConfig `yaml:"recognizer"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// ImmichConfig locates the downstream Immich instance that search URLs
// point at. Host and port are required: a service that cannot build a
// valid redirect URL should not start.
type ImmichConfig struct {
	Scheme   string `yaml:"scheme"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

// RecognizerConfig selects and configures the entity recognizer backend.
type RecognizerConfig struct {
	Provider string       `yaml:"provider"` // openai, lexical (default: lexical)
	OpenAI   OpenAIConfig `yaml:"openai"`
}

// OpenAIConfig holds settings for the OpenAI-compatible recognizer backend.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// CacheConfig holds the optional recognizer span cache settings.
type CacheConfig struct {
	Enabled             bool     `yaml:"enabled"`
	Addrs               []string `yaml:"addrs"`
	Password            string   `yaml:"password"`
	TTLHours            int      `yaml:"ttl_hours"`
	ReadinessTimeoutSec int      `yaml:"readiness_timeout_sec"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name
// (local, dev, docker, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR} / ${VAR:-default}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting
// to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Immich.Scheme == "" {
		c.Immich.Scheme = "http"
	}
	if c.Recognizer.Provider == "" {
		c.Recognizer.Provider = ProviderLexical
	}
	if c.Recognizer.OpenAI.Model == "" {
		c.Recognizer.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Cache.TTLHours <= 0 {
		c.Cache.TTLHours = 24
	}
	if c.Cache.ReadinessTimeoutSec <= 0 {
		c.Cache.ReadinessTimeoutSec = 10
	}
}

// Validate checks the configuration for correctness. Failures here are
// fatal at startup, never per-request.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.HTTP,
		validation.Field(&c.HTTP.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return fmt.Errorf("http: %w", err)
	}

	if err := validation.ValidateStruct(&c.Immich,
		validation.Field(&c.Immich.Scheme, validation.Required, validation.In("http", "https")),
		validation.Field(&c.Immich.Host, validation.Required),
		validation.Field(&c.Immich.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return fmt.Errorf("immich: %w", err)
	}

	if err := validation.ValidateStruct(&c.Recognizer,
		validation.Field(&c.Recognizer.Provider, validation.Required,
			validation.In(ProviderOpenAI, ProviderLexical)),
	); err != nil {
		return fmt.Errorf("recognizer: %w", err)
	}
	if c.Recognizer.Provider == ProviderOpenAI && c.Recognizer.OpenAI.APIKey == "" {
		return fmt.Errorf("recognizer: openai.api_key is required for the openai provider")
	}

	if c.Cache.Enabled && len(c.Cache.Addrs) == 0 {
		return fmt.Errorf("cache: addrs is required when the cache is enabled")
	}

	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
