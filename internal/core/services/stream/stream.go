// Package stream opens files under optional compression and text
// validation layers and manages their combined lifecycle.
package stream

import (
	"io"
	"sync/atomic"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/internal/core/ports"
	"github.com/iamNilotpal/iox/pkg/errors"
	"go.uber.org/multierr"
)

// Stream is an open file with its compression and text layers applied.
// It satisfies io.ReadWriteCloser; whether reads or writes are allowed
// follows the access token of the mode it was opened with.
type Stream struct {
	file   ports.File               // Underlying handle from the file system port.
	reader io.Reader                // Innermost read side, nil for write modes.
	writer io.Writer                // Innermost write side, nil for read mode.
	layers []io.Closer              // Codec and text layers, closed front to back before the file.
	mode   domain.Mode              // Parsed mode the stream was opened with.
	method domain.CompressionMethod // Resolved concrete compression method.

	// State management flags.
	closed atomic.Bool // Indicates if the stream has been released.
}

// newStream layers the codec and, for text modes, UTF-8 validation over
// an open file. On error the caller still owns the file.
func newStream(file ports.File, c ports.Codec, mode domain.Mode, level uint8) (*Stream, error) {
	s := &Stream{file: file, mode: mode, method: c.Method()}

	if mode.Writable() {
		cw, err := c.Writer(file, level)
		if err != nil {
			return nil, err
		}
		if mode.Binary() {
			s.writer = cw
			s.layers = []io.Closer{cw}
		} else {
			tw := newTextWriter(cw)
			s.writer = tw
			s.layers = []io.Closer{tw, cw}
		}
		return s, nil
	}

	cr, err := c.Reader(file)
	if err != nil {
		return nil, err
	}
	s.reader = cr
	s.layers = []io.Closer{cr}
	if !mode.Binary() {
		s.reader = newTextReader(cr)
	}
	return s, nil
}

// Read pulls decompressed, and for text modes validated, bytes from the
// stream.
func (s *Stream) Read(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrStreamClosed
	}
	if s.reader == nil {
		return 0, ErrNotReadable
	}
	return s.reader.Read(p)
}

// Write pushes bytes through the text and compression layers down to
// the file.
func (s *Stream) Write(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrStreamClosed
	}
	if s.writer == nil {
		return 0, ErrNotWritable
	}
	return s.writer.Write(p)
}

// WriteString writes a string through the stream's layers.
func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// ReadAll drains the stream.
func (s *Stream) ReadAll() ([]byte, error) {
	return io.ReadAll(s)
}

// Name returns the path the stream was opened with.
func (s *Stream) Name() string {
	return s.file.Name()
}

// Mode returns the canonical mode string the stream was opened with.
func (s *Stream) Mode() string {
	return s.mode.String()
}

// Method returns the concrete compression method in effect. Streams
// opened with auto detection report the resolved method.
func (s *Stream) Method() domain.CompressionMethod {
	return s.method
}

// Close releases the stream's layers and then the file, combining any
// errors. Only the first call does work; later calls are no-ops.
func (s *Stream) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	for _, layer := range s.layers {
		err = multierr.Append(err, layer.Close())
	}
	err = multierr.Append(err, s.file.Close())

	if err != nil {
		return errors.NewIOError(errors.ErrorClose, "close", s.file.Name(), err)
	}
	return nil
}
