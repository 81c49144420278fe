package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	defer resetFlags()

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootMatchesStdin(t *testing.T) {
	out, err := runWith(t, "cart\ncaaat\n", "-E", "ca+t")
	require.NoError(t, err)
	assert.Equal(t, "caaat\n", out)
}

func TestRootNoMatchIsDistinguishable(t *testing.T) {
	_, err := runWith(t, "dog\n", "-E", "^cat$")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoMatch))
}

func TestRootBadPattern(t *testing.T) {
	_, err := runWith(t, "", "-E", "[unclosed")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errNoMatch))
	assert.Contains(t, err.Error(), "unterminated character class")
}

func TestRootPatternFlagRequired(t *testing.T) {
	_, err := runWith(t, "text\n")
	assert.Error(t, err)
}
