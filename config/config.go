package config

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Streams          StreamConfig `yaml:"streams"`
	DefaultMethod    string       `yaml:"default_method"`    // Compression method for new streams
	CompressionLevel uint8        `yaml:"compression_level"` // Compression level (0-9)
}

// Holds stream-specific configuration
type StreamConfig struct {
	AutoWriteMethod string `yaml:"auto_write_method"` // Method assumed for fresh auto targets
	InferExtension  bool   `yaml:"infer_extension"`   // Infer method from file name extension
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		DefaultMethod:    "auto",
		CompressionLevel: 6,
		Streams: StreamConfig{
			AutoWriteMethod: "none",
			InferExtension:  true,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if _, err := domain.ParseCompressionMethod(config.DefaultMethod); err != nil {
		return fmt.Errorf("default_method: %w", err)
	}

	if config.CompressionLevel > 9 {
		return fmt.Errorf("compression_level must be between 0 and 9")
	}

	if err := validateStreamConfig(&config.Streams); err != nil {
		return fmt.Errorf("invalid stream configuration: %w", err)
	}

	return nil
}

func validateStreamConfig(config *StreamConfig) error {
	method, err := domain.ParseCompressionMethod(config.AutoWriteMethod)
	if err != nil {
		return fmt.Errorf("auto_write_method: %w", err)
	}

	if method == domain.CompressionAuto {
		return fmt.Errorf("auto_write_method must be a concrete method")
	}

	return nil
}
