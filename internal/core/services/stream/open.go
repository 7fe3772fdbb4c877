package stream

import (
	"io"

	"github.com/iamNilotpal/iox/internal/adapters/codec"
	"github.com/iamNilotpal/iox/internal/adapters/fs"
	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/internal/core/domain/config"
	"github.com/iamNilotpal/iox/internal/core/ports"
	"github.com/iamNilotpal/iox/pkg/errors"
	"go.uber.org/multierr"
)

// Open opens path under the given compression method with a two token
// mode string such as "rb" or "wt". Mode, method and option validation
// happens before any file system access; errors from the underlying
// open call itself propagate unchanged.
func Open(method domain.CompressionMethod, path, mode string, opts ...config.OpenConfigOption) (*Stream, error) {
	parsedMode, err := domain.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	parsedMethod, err := domain.ParseCompressionMethod(string(method))
	if err != nil {
		return nil, err
	}

	cfg := config.NewOpenConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := codec.Validate(&domain.CompressionOptions{Level: cfg.Level}); err != nil {
		return nil, errors.NewValidationError("level", cfg.Level, err)
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = fs.NewLocalFileSystem()
	}

	resolved := parsedMethod
	if parsedMethod == domain.CompressionAuto {
		if resolved, err = resolveAuto(fsys, cfg, path, parsedMode); err != nil {
			return nil, err
		}
	}

	c, err := codec.For(resolved)
	if err != nil {
		return nil, errors.NewValidationError("method", resolved, err)
	}

	file, err := fsys.OpenFile(path, parsedMode.Access.OSFlag(), createPerm)
	if err != nil {
		return nil, err
	}

	s, err := newStream(file, c, parsedMode, cfg.Level)
	if err != nil {
		err = multierr.Append(err, file.Close())
		return nil, errors.NewIOError(errors.ErrorCodec, "open", path, err)
	}
	return s, nil
}

// resolveAuto picks the concrete method for auto detection opens.
// Existing readable content wins; targets that will be created or
// truncated fall back to extension inference and then the configured
// auto write method.
func resolveAuto(
	fsys ports.FileSystem, cfg *config.OpenConfig, path string, mode domain.Mode,
) (domain.CompressionMethod, error) {
	switch mode.Access {
	case domain.AccessRead:
		return sniffMethod(fsys, path)

	case domain.AccessAppend:
		exists, err := fsys.Exists(path)
		if err != nil {
			return domain.CompressionNone, err
		}
		if exists {
			return sniffMethod(fsys, path)
		}

	case domain.AccessWrite, domain.AccessExclusive:
		// Content is discarded or must not exist yet; sniffing has
		// nothing to look at.
	}

	if cfg.InferExtension {
		if method := codec.DetectExtension(path); method != domain.CompressionNone {
			return method, nil
		}
	}
	return cfg.AutoWriteMethod, nil
}

// sniffMethod reads the leading bytes of an existing file and maps them
// to the codec that produced them. Short or empty files map to plain
// bytes. Errors from the open call itself propagate unchanged.
func sniffMethod(fsys ports.FileSystem, path string) (domain.CompressionMethod, error) {
	file, err := fsys.OpenFile(path, domain.AccessRead.OSFlag(), 0)
	if err != nil {
		return domain.CompressionNone, err
	}

	prefix := make([]byte, codec.MagicLen)
	n, err := io.ReadFull(file, prefix)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	err = multierr.Append(err, file.Close())
	if err != nil {
		return domain.CompressionNone, errors.NewIOError(errors.ErrorDetect, "detect", path, err)
	}

	return codec.Detect(prefix[:n]), nil
}
