package iox

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/internal/core/services/stream"
	"github.com/iamNilotpal/iox/pkg/errors"
)

// File is the capability set handles expose: the standard readable,
// writable, closable stream surface.
type File interface {
	io.Reader
	io.Writer
	io.Closer
}

// Target is the argument MaybeOpen resolves: either a path to open or
// an already open stream to borrow. Build one with PathOf or FileOf.
type Target interface {
	isTarget()
}

type pathTarget string

func (pathTarget) isTarget() {}

type fileTarget struct {
	f File
}

func (fileTarget) isTarget() {}

// PathOf marks path to be opened by MaybeOpen; the resulting handle
// owns the stream and releases it on Close.
func PathOf(path string) Target {
	return pathTarget(path)
}

// FileOf marks f as borrowed; MaybeOpen hands back exactly f and its
// handle never closes it.
func FileOf(f File) Target {
	return fileTarget{f: f}
}

// Handle pairs a stream with its ownership. Owned handles close the
// stream exactly once; borrowed handles never touch it. Handle itself
// satisfies the File capability set by delegation.
type Handle struct {
	f      File
	owned  bool
	closed atomic.Bool
}

// MaybeOpen resolves target. A path is opened through the stream
// service with the given mode, where the data token is optional and
// defaults to text; open failures propagate unchanged. An already open
// stream is borrowed as is and mode is ignored.
func MaybeOpen(target Target, mode string, opts ...Option) (*Handle, error) {
	switch t := target.(type) {
	case fileTarget:
		return &Handle{f: t.f}, nil

	case pathTarget:
		parsed, err := domain.ParseLooseMode(mode)
		if err != nil {
			return nil, err
		}
		s, err := stream.Open(domain.CompressionNone, string(t), parsed.String(), opts...)
		if err != nil {
			return nil, err
		}
		return &Handle{f: s, owned: true}, nil

	default:
		return nil, errors.NewValidationError(
			"target", target, fmt.Errorf("unknown target type %T", target),
		)
	}
}

// File returns the underlying stream exactly as the handle holds it;
// borrowed handles return the original value unchanged.
func (h *Handle) File() File {
	return h.f
}

// Owned reports whether Close releases the stream.
func (h *Handle) Owned() bool {
	return h.owned
}

// Closed reports whether an owned stream has been released through this
// handle. Borrowed handles always report false.
func (h *Handle) Closed() bool {
	return h.closed.Load()
}

func (h *Handle) Read(p []byte) (int, error) {
	return h.f.Read(p)
}

func (h *Handle) Write(p []byte) (int, error) {
	return h.f.Write(p)
}

// Close releases owned streams exactly once and never touches borrowed
// ones. It is safe to call more than once.
func (h *Handle) Close() error {
	if !h.owned {
		return nil
	}
	if !h.closed.CompareAndSwap(false, true) {
		return nil
	}
	return h.f.Close()
}
