package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Uploader backends
const (
	UploaderAWSCLI = "awscli"
	UploaderSDK    = "sdk"
)

type Config struct {
	// Object storage
	EndpointURL     string `yaml:"endpoint_url" env:"PAYLOAD_ENDPOINT_URL"`
	BucketName      string `yaml:"bucket_name" env:"PAYLOAD_BUCKET_NAME"`
	Uploader        string `yaml:"uploader" env:"PAYLOAD_UPLOADER"`
	AWSCLI          string `yaml:"aws_cli" env:"PAYLOAD_AWS_CLI"`
	Region          string `yaml:"region" env:"AWS_REGION"`
	AccessKeyID     string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"-" env:"AWS_SECRET_ACCESS_KEY"`
	PathStyle       bool   `yaml:"path_style" env:"PAYLOAD_PATH_STYLE"`

	// Payload generation
	ChunkSizeBytes int    `yaml:"chunk_size_bytes" env:"PAYLOAD_CHUNK_SIZE_BYTES"`
	OutputDir      string `yaml:"output_dir" env:"PAYLOAD_OUTPUT_DIR"`

	// UI Settings
	LogLevel   string `yaml:"log_level" env:"PAYLOAD_LOG_LEVEL"`
	ColorTheme string `yaml:"color_theme" env:"PAYLOAD_COLOR_THEME"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		EndpointURL:    "",
		BucketName:     "",
		Uploader:       UploaderAWSCLI,
		AWSCLI:         "aws",
		Region:         "us-east-1",
		PathStyle:      true,
		ChunkSizeBytes: 1024 * 1024,
		OutputDir:      "",
		LogLevel:       "info",
		ColorTheme:     "auto",
	}
}

// Load reads configuration from the specified file path and applies
// environment overrides on top of it
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A missing file is not an error, defaults apply
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults re-fills essential values left empty by the file or environment
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Uploader == "" {
		c.Uploader = def.Uploader
	}
	if c.AWSCLI == "" {
		c.AWSCLI = def.AWSCLI
	}
	if c.Region == "" {
		c.Region = def.Region
	}
	if c.ChunkSizeBytes <= 0 {
		c.ChunkSizeBytes = def.ChunkSizeBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.ColorTheme == "" {
		c.ColorTheme = def.ColorTheme
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Uploader {
	case UploaderAWSCLI, UploaderSDK:
	default:
		return fmt.Errorf("invalid uploader %q (use %q or %q)", c.Uploader, UploaderAWSCLI, UploaderSDK)
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultPath returns the XDG config location
func DefaultPath() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "payload-tools", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Fall back to ~/.config/payload-tools/config.yaml
	return filepath.Join(homeDir, ".config", "payload-tools", "config.yaml"), nil
}

// isValidLogLevel checks if the log level is one zap understands
func isValidLogLevel(level string) bool {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return true
		}
	}
	return false
}
