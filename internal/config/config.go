package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ramchaes/portfolio/internal/content"
	"github.com/ramchaes/portfolio/internal/media"
)

// ErrInvalidConfig marks configuration values that cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application configuration
type Config struct {
	ServerAddr    string         `yaml:"server_addr"`
	BasePath      string         `yaml:"base_path"`
	LegacyFolder  string         `yaml:"legacy_folder"`
	StaticDir     string         `yaml:"static_dir"`
	ResumeFile    string         `yaml:"resume_file"`
	LogLevel      string         `yaml:"log_level"`
	ProcessLimits map[string]int `yaml:"process_limits"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	limits := make(map[string]int, len(content.ProcessLimits))
	for id, n := range content.ProcessLimits {
		limits[id] = n
	}
	return &Config{
		ServerAddr:    ":8080",
		BasePath:      "/",
		LegacyFolder:  media.DefaultLegacyFolder,
		StaticDir:     "static",
		ResumeFile:    content.ResumeFile,
		LogLevel:      "info",
		ProcessLimits: limits,
	}
}

// Load reads .env, an optional YAML file named by PORTFOLIO_CONFIG, and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("PORTFOLIO_CONFIG"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile merges a YAML file over cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"SERVER_ADDR":             &cfg.ServerAddr,
		"PORTFOLIO_BASE_PATH":     &cfg.BasePath,
		"PORTFOLIO_LEGACY_FOLDER": &cfg.LegacyFolder,
		"PORTFOLIO_STATIC_DIR":    &cfg.StaticDir,
		"PORTFOLIO_RESUME":        &cfg.ResumeFile,
		"PORTFOLIO_LOG_LEVEL":     &cfg.LogLevel,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
}

// Validate checks values that would otherwise fail later
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	for id, n := range c.ProcessLimits {
		if n < 0 {
			return fmt.Errorf("%w: negative process limit for %q", ErrInvalidConfig, id)
		}
	}
	return nil
}

// Resolver builds the media resolver for the configured base path
func (c *Config) Resolver() *media.Resolver {
	return media.NewResolver(c.BasePath, c.LegacyFolder)
}
