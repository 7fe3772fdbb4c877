package config

import (
	"fmt"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/internal/core/ports"
	"github.com/iamNilotpal/iox/pkg/errors"
)

// OpenConfig carries the tunable behavior of a single open call.
// A zero value is not ready for use; build one with NewOpenConfig so
// defaults are applied before options run.
type OpenConfig struct {
	// FS is the file access backend. When nil the local disk
	// implementation is used.
	FS ports.FileSystem

	// Level selects the compression level for writable streams.
	// Levels follow gzip's 1-9 scale; the zstd codec maps the value
	// onto its own range. Zero keeps each codec's default.
	Level uint8

	// AutoWriteMethod is the method assumed when auto detection meets
	// a target that will be created or truncated, where content
	// sniffing has nothing to look at.
	//
	// Default: CompressionNone
	AutoWriteMethod domain.CompressionMethod

	// InferExtension lets fresh auto targets take their method from
	// the file name extension (.gz, .zst) instead of AutoWriteMethod.
	//
	// Default: false
	InferExtension bool
}

// OpenConfigOption defines the signature for configuration options.
// This pattern provides a flexible and type-safe way to modify
// configuration settings during initialization.
type OpenConfigOption func(*OpenConfig)

// WithLevel sets the compression level for writable streams.
// Zero keeps each codec's default.
func WithLevel(level uint8) OpenConfigOption {
	return func(c *OpenConfig) {
		c.Level = level
	}
}

// WithAutoWriteMethod sets the method auto detection assumes for
// targets it cannot sniff. The method must be concrete; passing
// CompressionAuto fails validation.
func WithAutoWriteMethod(method domain.CompressionMethod) OpenConfigOption {
	return func(c *OpenConfig) {
		c.AutoWriteMethod = method
	}
}

// WithInferExtension toggles extension based method inference for
// fresh auto targets. Inference takes precedence over the configured
// auto write method when the extension is recognized.
func WithInferExtension(infer bool) OpenConfigOption {
	return func(c *OpenConfig) {
		c.InferExtension = infer
	}
}

// WithFileSystem swaps the file access backend, primarily so streams
// can be exercised against fakes.
func WithFileSystem(fs ports.FileSystem) OpenConfigOption {
	return func(c *OpenConfig) {
		c.FS = fs
	}
}

// NewOpenConfig initializes an OpenConfig with default values and
// applies any provided configuration options. Validate the result
// before opening files with it.
func NewOpenConfig(opts ...OpenConfigOption) *OpenConfig {
	cfg := DefaultOpenConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return cfg
}

// Validate checks the configuration against defined constraints and
// returns a ValidationError for the first violation. Level bounds are
// enforced by the codec layer, which owns the level scale.
func (c *OpenConfig) Validate() error {
	if c.AutoWriteMethod == domain.CompressionAuto {
		return errors.NewValidationError(
			"autoWriteMethod", c.AutoWriteMethod,
			fmt.Errorf("auto write method must be a concrete method"),
		)
	}

	if _, err := domain.ParseCompressionMethod(string(c.AutoWriteMethod)); err != nil {
		return err
	}

	return nil
}
