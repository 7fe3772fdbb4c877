package domain_test

import (
	"os"
	"testing"

	"github.com/iamNilotpal/iox/internal/core/domain"
	"github.com/iamNilotpal/iox/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseModeValid(t *testing.T) {
	cases := map[string]domain.Mode{
		"rt": {Access: domain.AccessRead, Data: domain.DataText},
		"tr": {Access: domain.AccessRead, Data: domain.DataText},
		"rb": {Access: domain.AccessRead, Data: domain.DataBinary},
		"br": {Access: domain.AccessRead, Data: domain.DataBinary},
		"wt": {Access: domain.AccessWrite, Data: domain.DataText},
		"tw": {Access: domain.AccessWrite, Data: domain.DataText},
		"wb": {Access: domain.AccessWrite, Data: domain.DataBinary},
		"bw": {Access: domain.AccessWrite, Data: domain.DataBinary},
		"at": {Access: domain.AccessAppend, Data: domain.DataText},
		"ta": {Access: domain.AccessAppend, Data: domain.DataText},
		"ab": {Access: domain.AccessAppend, Data: domain.DataBinary},
		"ba": {Access: domain.AccessAppend, Data: domain.DataBinary},
		"xt": {Access: domain.AccessExclusive, Data: domain.DataText},
		"tx": {Access: domain.AccessExclusive, Data: domain.DataText},
		"xb": {Access: domain.AccessExclusive, Data: domain.DataBinary},
		"bx": {Access: domain.AccessExclusive, Data: domain.DataBinary},
	}

	for input, want := range cases {
		mode, err := domain.ParseMode(input)
		require.NoError(t, err, "mode %q", input)
		require.Equal(t, want, mode, "mode %q", input)
	}
}

func TestParseModeInvalid(t *testing.T) {
	inputs := []string{
		"", "r", "w", "a", "x", "t", "b",
		"abc", "rw", "ax", "tb", "rr", "bb", "rbt", "z", "rz", "r b",
	}

	for _, input := range inputs {
		_, err := domain.ParseMode(input)
		require.Error(t, err, "mode %q", input)
		require.True(t, errors.IsValidationError(err), "mode %q: %v", input, err)
		require.Equal(t, "mode", errors.AsValidationError(err).Field, "mode %q", input)
	}
}

func TestParseLooseMode(t *testing.T) {
	valid := map[string]domain.Mode{
		"r":  {Access: domain.AccessRead, Data: domain.DataText},
		"w":  {Access: domain.AccessWrite, Data: domain.DataText},
		"a":  {Access: domain.AccessAppend, Data: domain.DataText},
		"x":  {Access: domain.AccessExclusive, Data: domain.DataText},
		"rb": {Access: domain.AccessRead, Data: domain.DataBinary},
		"tw": {Access: domain.AccessWrite, Data: domain.DataText},
	}
	for input, want := range valid {
		mode, err := domain.ParseLooseMode(input)
		require.NoError(t, err, "mode %q", input)
		require.Equal(t, want, mode, "mode %q", input)
	}

	for _, input := range []string{"", "t", "b", "rw", "tt", "q"} {
		_, err := domain.ParseLooseMode(input)
		require.Error(t, err, "mode %q", input)
		require.True(t, errors.IsValidationError(err), "mode %q", input)
	}
}

func TestModeString(t *testing.T) {
	mode, err := domain.ParseMode("tr")
	require.NoError(t, err)
	require.Equal(t, "rt", mode.String())

	mode, err = domain.ParseMode("bx")
	require.NoError(t, err)
	require.Equal(t, "xb", mode.String())
}

func TestModeProperties(t *testing.T) {
	mode, err := domain.ParseMode("rb")
	require.NoError(t, err)
	require.False(t, mode.Writable())
	require.True(t, mode.Binary())

	mode, err = domain.ParseMode("wt")
	require.NoError(t, err)
	require.True(t, mode.Writable())
	require.False(t, mode.Binary())
}

func TestAccessModeOSFlag(t *testing.T) {
	require.Equal(t, os.O_RDONLY, domain.AccessRead.OSFlag())
	require.Equal(t, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.AccessWrite.OSFlag())
	require.Equal(t, os.O_WRONLY|os.O_CREATE|os.O_APPEND, domain.AccessAppend.OSFlag())
	require.Equal(t, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.AccessExclusive.OSFlag())
}
