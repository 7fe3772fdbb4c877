package stream

import (
	"io"
	"unicode/utf8"
)

const textChunkSize = 4096

// textReader validates that everything read through it is well formed
// UTF-8. A rune split across two reads of the underlying stream is
// carried until its remaining bytes arrive; a partial rune left at end
// of stream fails validation.
type textReader struct {
	r       io.Reader
	scratch []byte              // refill buffer, reused across fills
	buf     []byte              // validated bytes not yet delivered
	carry   [utf8.UTFMax]byte   // bytes of a rune split across reads
	ncarry  int                 // number of carried bytes
	err     error               // deferred error once buf drains
}

func newTextReader(r io.Reader) *textReader {
	return &textReader{r: r, scratch: make([]byte, textChunkSize)}
}

func (t *textReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(t.buf) == 0 {
		if t.err != nil {
			return 0, t.err
		}
		t.fill()
	}

	n := copy(p, t.buf)
	t.buf = t.buf[n:]
	return n, nil
}

// fill reads the next chunk behind the carried rune prefix, holds back
// a trailing partial rune and validates the rest.
func (t *textReader) fill() {
	n := copy(t.scratch, t.carry[:t.ncarry])
	m, err := t.r.Read(t.scratch[n:])
	total := n + m
	t.ncarry = 0

	data := t.scratch[:total]
	if err == nil {
		hold := trailingPartial(data)
		t.ncarry = copy(t.carry[:], data[total-hold:])
		data = data[:total-hold]
	}

	if !utf8.Valid(data) {
		t.buf = nil
		t.err = ErrInvalidUTF8
		return
	}

	t.buf = data
	if err != nil {
		t.err = err
	}
}

// textWriter rejects writes that are not well formed UTF-8. A rune
// split across two writes is tolerated by carrying its prefix, so
// callers may chunk at arbitrary boundaries.
type textWriter struct {
	w      io.Writer
	carry  [utf8.UTFMax]byte
	ncarry int
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: w}
}

func (t *textWriter) Write(p []byte) (int, error) {
	consumed := len(p)

	if t.ncarry > 0 {
		size := runeLen(t.carry[0])
		take := size - t.ncarry
		if take > len(p) {
			take = len(p)
		}
		t.ncarry += copy(t.carry[t.ncarry:size], p[:take])
		if t.ncarry < size {
			return consumed, nil
		}
		if !utf8.Valid(t.carry[:size]) {
			return 0, ErrInvalidUTF8
		}
		if _, err := t.w.Write(t.carry[:size]); err != nil {
			return 0, err
		}
		p = p[take:]
		t.ncarry = 0
	}

	hold := trailingPartial(p)
	body := p[:len(p)-hold]
	if !utf8.Valid(body) {
		return 0, ErrInvalidUTF8
	}
	if len(body) > 0 {
		if _, err := t.w.Write(body); err != nil {
			return 0, err
		}
	}

	t.ncarry += copy(t.carry[t.ncarry:], p[len(p)-hold:])
	return consumed, nil
}

// Close rejects a dangling partial rune left behind by the final write.
func (t *textWriter) Close() error {
	if t.ncarry > 0 {
		t.ncarry = 0
		return ErrInvalidUTF8
	}
	return nil
}

// trailingPartial reports how many bytes at the end of b form the
// prefix of an incomplete rune. Invalid sequences report zero so the
// validator flags them instead.
func trailingPartial(b []byte) int {
	n := len(b)
	for i := 1; i <= utf8.UTFMax && i <= n; i++ {
		c := b[n-i]
		if c < utf8.RuneSelf {
			return 0
		}
		if c >= 0xC0 {
			if size := runeLen(c); size > i {
				return i
			}
			return 0
		}
	}
	return 0
}

// runeLen maps a UTF-8 start byte to its encoded length, or zero for
// continuation and invalid bytes.
func runeLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0xC0:
		return 0
	case c < 0xE0:
		return 2
	case c < 0xF0:
		return 3
	case c < 0xF8:
		return 4
	default:
		return 0
	}
}
