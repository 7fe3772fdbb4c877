package main

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/iamNilotpal/iox/config"
	"github.com/iamNilotpal/iox/pkg/errors"
	"github.com/iamNilotpal/iox/pkg/iox"
	"github.com/iamNilotpal/iox/pkg/logger"
)

func main() {
	logger := logger.New("iox-demo")
	defer logger.Sync()

	logger.Info("starting iox demo")

	cfg := config.DefaultConfig()
	dir := os.TempDir()

	// Plain text lines through the handle helpers.
	notes := filepath.Join(dir, "iox-demo.txt")
	err := iox.WriteLines(iox.PathOf(notes), slices.Values([]string{"first line", "second line", "third line"}))
	if err != nil {
		logger.Infow("write error", "error", err)
		os.Exit(1)
	}

	lines, err := iox.ReadLines(iox.PathOf(notes))
	if err != nil {
		logger.Infow("read error", "error", err)
		os.Exit(1)
	}

	collected := slices.Collect(lines.All())
	logger.Infow("lines read", "count", len(collected), "lines", collected, "closed", lines.Closed())

	// Compressed stream driven by the loaded configuration.
	archive := filepath.Join(dir, "iox-demo.txt.gz")
	stream, err := iox.OpenCompressed(
		iox.CompressionMethod(cfg.DefaultMethod), archive, "wt",
		iox.WithCompressionLevel(cfg.CompressionLevel),
		iox.WithAutoWriteMethod(iox.CompressionMethod(cfg.Streams.AutoWriteMethod)),
		iox.WithExtensionInference(cfg.Streams.InferExtension),
	)
	if err != nil {
		if errors.IsValidationError(err) {
			verr := errors.AsValidationError(err)
			logger.Infow("open error", "field", verr.Field, "value", verr.Value, "error", verr.Err)
		} else {
			logger.Infow("open error", "error", err)
		}
		os.Exit(1)
	}

	logger.Infow("stream opened", "path", stream.Name(), "mode", stream.Mode(), "method", stream.Method())

	if _, err := stream.WriteString("compressed line\nanother compressed line\n"); err != nil {
		logger.Infow("write error", "error", err)
	}

	if err := stream.Close(); err != nil {
		logger.Infow("error closing stream", "error", err)
	}

	// Detection picks the method back up from the file's leading bytes.
	back, err := iox.OpenCompressed(iox.CompressionAuto, archive, "rt")
	if err != nil {
		logger.Infow("detect open error", "error", err)
		os.Exit(1)
	}

	data, err := back.ReadAll()
	if err != nil {
		logger.Infow("detect read error", "error", err)
	} else {
		logger.Infow("detected stream", "method", back.Method(), "size", len(data))
	}

	if err := back.Close(); err != nil {
		logger.Infow("error closing detected stream", "error", err)
	}
}
