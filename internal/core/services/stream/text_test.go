package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestTrailingPartial(t *testing.T) {
	cases := []struct {
		in   []byte
		want int
	}{
		{nil, 0},
		{[]byte("abc"), 0},
		{[]byte("€"), 0},
		{[]byte{0xE2}, 1},
		{[]byte{'a', 0xE2, 0x82}, 2},
		{[]byte{0xF0, 0x9F, 0x92}, 3},
		{[]byte{'a', 0xFF}, 0},
		{[]byte{0x82, 0x82, 0x82, 0x82}, 0},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, trailingPartial(tc.in), "input %v", tc.in)
	}
}

func TestRuneLen(t *testing.T) {
	require.Equal(t, 1, runeLen('a'))
	require.Equal(t, 0, runeLen(0x82))
	require.Equal(t, 2, runeLen(0xC3))
	require.Equal(t, 3, runeLen(0xE2))
	require.Equal(t, 4, runeLen(0xF0))
	require.Equal(t, 0, runeLen(0xFF))
}

func TestTextReaderSplitRunes(t *testing.T) {
	const text = "héllo wörld ünïcode €100 🚀"

	r := newTextReader(iotest.OneByteReader(strings.NewReader(text)))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, text, string(got))
}

func TestTextReaderInvalidByte(t *testing.T) {
	r := newTextReader(bytes.NewReader([]byte{'a', 0xFF, 'b'}))
	_, err := io.ReadAll(r)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestTextReaderTruncatedRune(t *testing.T) {
	// A euro sign missing its final byte at end of stream.
	r := newTextReader(bytes.NewReader([]byte{'a', 0xE2, 0x82}))
	_, err := io.ReadAll(r)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestTextWriterSplitRunes(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf)

	payload := []byte("τέχνη 🚀")
	for _, b := range payload {
		n, err := w.Write([]byte{b})
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	require.NoError(t, w.Close())
	require.Equal(t, string(payload), buf.String())
}

func TestTextWriterChunkedCarry(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf)

	// A four byte rune delivered as 1+1+2 with a plain byte behind it.
	_, err := w.Write([]byte{0xF0})
	require.NoError(t, err)
	_, err = w.Write([]byte{0x9F})
	require.NoError(t, err)
	_, err = w.Write([]byte{0x92, 0xA9, 'x'})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "💩x", buf.String())
}

func TestTextWriterInvalidByte(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf)

	_, err := w.Write([]byte{0xFE})
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestTextWriterDanglingRune(t *testing.T) {
	var buf bytes.Buffer
	w := newTextWriter(&buf)

	n, err := w.Write([]byte{0xE2})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.ErrorIs(t, w.Close(), ErrInvalidUTF8)
	require.Zero(t, buf.Len())
}
