package treefill

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// noSleep records requested waits without pausing.
type noSleep struct {
	waits []time.Duration
}

func (n *noSleep) sleep(_ context.Context, d time.Duration) error {
	n.waits = append(n.waits, d)

	return nil
}

func newTestGenerator(t *testing.T, opt Options) (*Generator, *noSleep, *bytes.Buffer) {
	t.Helper()

	if opt.Root == "" {
		opt.Root = t.TempDir()
	}

	sleeper := &noSleep{}
	out := &bytes.Buffer{}

	g, err := NewGenerator(opt, newTestRand(), sleeper.sleep, out)
	require.NoError(t, err)

	return g, sleeper, out
}

// listTree returns every directory and file below root, relative and slash-separated.
func listTree(t *testing.T, root string) (dirs, files []string) {
	t.Helper()

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			dirs = append(dirs, filepath.ToSlash(rel))
		} else {
			files = append(files, filepath.ToSlash(rel))
		}

		return nil
	})
	require.NoError(t, err)

	return dirs, files
}

// levelOf returns the number of directories between root and a relative file path.
func levelOf(rel string) int {
	return strings.Count(rel, "/")
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
