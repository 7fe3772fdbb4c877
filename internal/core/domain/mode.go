package domain

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/iox/pkg/errors"
)

// AccessMode selects how a file is opened.
type AccessMode uint8

const (
	// AccessRead opens an existing file for reading.
	AccessRead AccessMode = iota + 1

	// AccessWrite truncates an existing file or creates a new one.
	AccessWrite

	// AccessAppend appends to an existing file or creates a new one.
	AccessAppend

	// AccessExclusive creates a new file and fails if it already exists.
	AccessExclusive
)

// String returns the mode token for the access mode.
func (a AccessMode) String() string {
	switch a {
	case AccessRead:
		return "r"
	case AccessWrite:
		return "w"
	case AccessAppend:
		return "a"
	case AccessExclusive:
		return "x"
	default:
		return "invalid"
	}
}

// OSFlag returns the os.OpenFile flag set for the access mode.
func (a AccessMode) OSFlag() int {
	switch a {
	case AccessRead:
		return os.O_RDONLY
	case AccessWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case AccessAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case AccessExclusive:
		return os.O_WRONLY | os.O_CREATE | os.O_EXCL
	default:
		return 0
	}
}

// DataMode selects how stream contents are interpreted.
type DataMode uint8

const (
	// DataText validates that stream contents are well formed UTF-8.
	DataText DataMode = iota + 1

	// DataBinary passes raw bytes through untouched.
	DataBinary
)

// String returns the mode token for the data mode.
func (d DataMode) String() string {
	switch d {
	case DataText:
		return "t"
	case DataBinary:
		return "b"
	default:
		return "invalid"
	}
}

// Mode is the parsed form of a mode string such as "rb" or "wt".
type Mode struct {
	Access AccessMode
	Data   DataMode
}

// String returns the canonical access-then-data form of the mode.
func (m Mode) String() string {
	return m.Access.String() + m.Data.String()
}

// Writable reports whether the mode opens the file for writing.
func (m Mode) Writable() bool {
	return m.Access != AccessRead
}

// Binary reports whether stream contents bypass text validation.
func (m Mode) Binary() bool {
	return m.Data == DataBinary
}

// ParseMode parses a mode string for compressed opens. The string must
// contain exactly one access token (r, w, a, x) and exactly one data
// token (t, b), in either order. Anything else fails with a
// ValidationError before any file is touched.
func ParseMode(s string) (Mode, error) {
	return parseMode(s, false)
}

// ParseLooseMode parses a mode string where the data token is optional
// and defaults to text. MaybeOpen forwards plain handle modes such as
// "r" or "w" through this form.
func ParseLooseMode(s string) (Mode, error) {
	return parseMode(s, true)
}

func parseMode(s string, defaultText bool) (Mode, error) {
	var mode Mode

	for _, token := range s {
		switch token {
		case 'r', 'w', 'a', 'x':
			if mode.Access != 0 {
				return Mode{}, errors.NewValidationError(
					"mode", s, fmt.Errorf("mode %q has more than one access token", s),
				)
			}
			mode.Access = accessFromToken(token)
		case 't', 'b':
			if mode.Data != 0 {
				return Mode{}, errors.NewValidationError(
					"mode", s, fmt.Errorf("mode %q has more than one data token", s),
				)
			}
			mode.Data = dataFromToken(token)
		default:
			return Mode{}, errors.NewValidationError(
				"mode", s, fmt.Errorf("mode %q contains unknown token %q", s, token),
			)
		}
	}

	if mode.Access == 0 {
		return Mode{}, errors.NewValidationError(
			"mode", s, fmt.Errorf("mode %q must include one of r, w, a, x", s),
		)
	}

	if mode.Data == 0 {
		if !defaultText {
			return Mode{}, errors.NewValidationError(
				"mode", s, fmt.Errorf("mode %q must include t or b", s),
			)
		}
		mode.Data = DataText
	}

	return mode, nil
}

func accessFromToken(token rune) AccessMode {
	switch token {
	case 'r':
		return AccessRead
	case 'w':
		return AccessWrite
	case 'a':
		return AccessAppend
	default:
		return AccessExclusive
	}
}

func dataFromToken(token rune) DataMode {
	if token == 't' {
		return DataText
	}
	return DataBinary
}
