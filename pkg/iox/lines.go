package iox

import (
	"bufio"
	"iter"

	"go.uber.org/multierr"
)

// ReadLines opens target for text reading and yields its lines without
// terminators. The handle is released the moment the last line is
// consumed, so borrowed streams stay open for their owner while path
// handles are closed. Scanner failures surface through the iterator's
// Err method.
func ReadLines(target Target, opts ...Option) (*ClosingIterator[string], error) {
	h, err := MaybeOpen(target, "rt", opts...)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(h)
	seq := func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}

	it := NewClosingIterator(seq, h)
	it.errf = scanner.Err
	return it, nil
}

// WriteLines writes each line with a trailing newline to target, opened
// for text writing. Owned targets are closed before returning; borrowed
// targets receive the flushed lines and stay open.
func WriteLines(target Target, lines iter.Seq[string], opts ...Option) (err error) {
	h, err := MaybeOpen(target, "wt", opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, h.Close())
	}()

	w := bufio.NewWriter(h)
	for line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
