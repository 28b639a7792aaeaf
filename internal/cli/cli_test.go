package cli

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/treefill/internal/treefill"
)

func newTestCLI(t *testing.T, stdin string) (CLI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	return CLI{
		version: "test",
		root:    t.TempDir(),
		in:      strings.NewReader(stdin),
		out:     out,
		errOut:  io.Discard,
		sleeper: func(context.Context, time.Duration) error { return nil },
		rng:     func() *rand.Rand { return rand.New(rand.NewPCG(7, 7)) },
	}, out
}

func countEntries(t *testing.T, root string) int {
	t.Helper()

	entries := 0

	err := filepath.WalkDir(root, func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != root {
			entries++
		}

		return nil
	})
	require.NoError(t, err)

	return entries
}

func TestRunEndToEnd(t *testing.T) {
	c, out := newTestCLI(t, "")

	require.NoError(t, c.run([]string{"2", "2", "3", "1"}))

	stats, err := treefill.Census(context.Background(), c.root, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Dirs)
	assert.Equal(t, int64(3), stats.Files)
	assert.Equal(t, int64(3*1024), stats.Bytes)

	output := out.String()
	assert.Equal(t, 3, strings.Count(output, "Made file: "))
	assert.Contains(t, output, "Done\n")
	assert.Regexp(t, `Directories created:\s+6 of 6`, output)
	assert.Regexp(t, `Deepest level:\s+2`, output)
	assert.NotContains(t, output, "are you sure")
}

func TestRunWrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{{}, {"1", "2", "3"}, {"1", "2", "3", "4", "5"}} {
		c, out := newTestCLI(t, "")

		require.NoError(t, c.run(args))
		assert.True(t, strings.HasPrefix(out.String(), usageLine), out.String())
		assert.Contains(t, out.String(), "Usage:")
		assert.Zero(t, countEntries(t, c.root))
	}
}

func TestRunInvalidArguments(t *testing.T) {
	for _, args := range [][]string{{"a", "2", "3", "4"}, {"65", "1", "1", "1"}, {"1", "2", "3", "1.5"}, {"-1", "2", "3", "4"}, {"1", "2", "3", "-4"}} {
		c, _ := newTestCLI(t, "")

		err := c.run(args)
		require.ErrorIs(t, err, treefill.ErrUsage)
		assert.Zero(t, countEntries(t, c.root))
	}
}

func TestRunDeclined(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "", "maybe\n"} {
		c, out := newTestCLI(t, answer)

		require.NoError(t, c.run([]string{"4", "6", "3", "1"}))
		assert.Contains(t, out.String(), "1554 dirs will be created. are you sure?")
		assert.NotContains(t, out.String(), "Done")
		assert.Zero(t, countEntries(t, c.root))
	}
}

func TestRunConfirmed(t *testing.T) {
	c, out := newTestCLI(t, "Yes\n")

	require.NoError(t, c.run([]string{"1", "1001", "2", "0"}))
	assert.Contains(t, out.String(), "1001 dirs will be created. are you sure?\ny/n:")
	assert.Contains(t, out.String(), "Done")
	assert.Equal(t, 1001+2, countEntries(t, c.root))
}

func TestRunMissingRoot(t *testing.T) {
	c, _ := newTestCLI(t, "")
	c.root = filepath.Join(c.root, "missing")

	err := c.run([]string{"1", "1", "1", "1"})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunVersion(t *testing.T) {
	c, out := newTestCLI(t, "")

	require.NoError(t, c.run([]string{"--version"}))
	assert.Contains(t, out.String(), "test")
}

func TestRunNoopMissingRoot(t *testing.T) {
	for _, args := range [][]string{{"0", "0", "0", "0"}, {"3", "0", "0", "0"}} {
		c, out := newTestCLI(t, "")
		c.root = filepath.Join(c.root, "missing")

		require.NoError(t, c.run(args))
		assert.Equal(t, "Done\n", out.String())
	}
}

func TestRunDebugOutput(t *testing.T) {
	c, _ := newTestCLI(t, "")
	errOut := &bytes.Buffer{}
	c.errOut = errOut

	require.NoError(t, c.run([]string{"--debug", "1", "2", "1", "0"}))

	assert.Equal(t, 2, strings.Count(errOut.String(), "[debug]: created directory: "))
	assert.Contains(t, errOut.String(), "[debug]: chose depth ")
	assert.Contains(t, errOut.String(), "[debug]: sleeping ")
}
