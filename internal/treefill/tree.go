package treefill

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// DirPerm is the permission used for created directories.
const DirPerm os.FileMode = 0o755

// node is a pending directory in the build stack.
type node struct {
	path      string
	remaining int // levels still to create below and including this node
}

// BuildTree creates the directory tree under the configured root and
// returns the number of directories it created. Directories that already
// exist are reused. Children are created in ascending index order, each
// subtree completed before its next sibling is started.
//
// The traversal uses an explicit stack, so its depth is bounded only by
// MaxDepth and never by the goroutine stack.
func (g *Generator) BuildTree(ctx context.Context) (int, error) {
	if g.opt.Depth <= 0 || g.opt.Width <= 0 {
		return 0, nil
	}

	if err := checkRoot(g.opt.Root); err != nil {
		return 0, err
	}

	stack := make([]node, 0, g.opt.Depth*g.opt.Width)
	stack = pushChildren(stack, g.opt.Root, g.opt.Depth, g.opt.Width)

	created := 0

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return created, ctx.Err()
		default:
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		made, err := ensureDir(n.path)
		if err != nil {
			return created, err
		}

		if made {
			created++
			g.log.printf("created directory: %s\n", n.path)
		} else {
			g.log.printf("reusing directory: %s\n", n.path)
		}

		if n.remaining > 1 {
			stack = pushChildren(stack, n.path, n.remaining-1, g.opt.Width)
		}
	}

	return created, nil
}

// pushChildren pushes children width..1 of parent so that child 1 is popped first.
func pushChildren(stack []node, parent string, remaining, width int) []node {
	for i := width; i >= 1; i-- {
		stack = append(stack, node{
			path:      filepath.Join(parent, strconv.Itoa(i)),
			remaining: remaining,
		})
	}

	return stack
}

// checkRoot verifies that root exists and is a directory.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("accessing root %q: %w", root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("root %q is not a directory", root)
	}

	return nil
}

// ensureDir creates path if it does not exist. It reports whether the
// directory was newly created.
func ensureDir(path string) (bool, error) {
	info, err := os.Lstat(path)

	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("conflict: %s exists and is not a directory", path)
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.Mkdir(path, DirPerm); err != nil {
		// Lost a race with another writer on the shared filesystem.
		if errors.Is(err, fs.ErrExist) {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return false, nil
			}
		}

		return false, fmt.Errorf("mkdir %s: %w", path, err)
	}

	return true, nil
}
