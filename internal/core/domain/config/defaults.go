package config

import "github.com/iamNilotpal/iox/internal/core/domain"

// Returns an OpenConfig with conservative defaults: fresh auto targets
// are written uncompressed and codecs use their default levels.
func DefaultOpenConfig() *OpenConfig {
	return &OpenConfig{
		AutoWriteMethod: domain.CompressionNone,
	}
}

// Returns config for archive style trees where the file name extension
// decides the method of fresh auto targets.
func DefaultArchiveOpenConfig() *OpenConfig {
	return &OpenConfig{
		AutoWriteMethod: domain.CompressionNone,
		InferExtension:  true,
	}
}
