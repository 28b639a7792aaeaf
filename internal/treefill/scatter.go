package treefill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FilePerm is the permission used for placeholder files.
const FilePerm os.FileMode = 0o644

// FileName returns the placeholder file name for the 1-based index.
func FileName(index int) string {
	return strconv.Itoa(index) + ".img"
}

// Scatter writes the configured number of placeholder files. File i is
// named "<i>.img" and placed at a random level in [0, depth], descending
// through uniformly chosen children. A random pause in [MinWait, MaxWait]
// follows every write. It returns the number of files written.
//
// Existing files with the same name are overwritten, so a second run over
// the same root replaces any 1.img, 2.img, ... it happens to land on.
func (g *Generator) Scatter(ctx context.Context) (int, error) {
	for i := 1; i <= g.opt.Files; i++ {
		if err := ctx.Err(); err != nil {
			return i - 1, err
		}

		dir := g.chooseDir()
		path := filepath.Join(dir, FileName(i))

		if err := writeZeroFile(path, g.opt.SizeKB); err != nil {
			return i - 1, err
		}

		fmt.Fprintf(g.out, "Made file: %s\n", path)

		wait := g.chooseWait()
		g.log.printf("sleeping %v\n", wait)

		if err := g.sleep(ctx, wait); err != nil {
			return i, err
		}
	}

	return g.opt.Files, nil
}

// chooseDir picks a random level in [0, depth] and descends that many
// levels through random children in [1, width].
func (g *Generator) chooseDir() string {
	levels := 0
	if g.opt.Width > 0 {
		levels = g.rng.IntN(g.opt.Depth + 1)
	}

	dir := g.opt.Root
	for range levels {
		dir = filepath.Join(dir, strconv.Itoa(g.rng.IntN(g.opt.Width)+1))
	}

	g.log.printf("chose depth %d: %s\n", levels, dir)

	return dir
}

// chooseWait returns a uniform duration in [MinWait, MaxWait].
func (g *Generator) chooseWait() time.Duration {
	return MinWait + time.Duration(g.rng.Int64N(int64(MaxWait-MinWait)+1))
}

// writeZeroFile writes sizeKB kilobytes of zero bytes to path, truncating
// any existing file.
func writeZeroFile(path string, sizeKB int) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	block := make([]byte, BlockSize)

	for range sizeKB {
		if _, err := f.Write(block); err != nil {
			_ = f.Close()

			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
