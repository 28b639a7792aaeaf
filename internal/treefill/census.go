package treefill

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Stats summarizes a generated tree.
type Stats struct {
	// Root is the directory that was walked.
	Root string
	// DirsByDepth maps a level (1 = direct child of root) to its directory count.
	DirsByDepth map[int]int64
	// FilesByDepth maps a level (0 = root) to its placeholder file count.
	FilesByDepth map[int]int64
	// Dirs is the total number of directories below root.
	Dirs int64
	// Files is the number of placeholder files found.
	Files int64
	// Bytes is the cumulative size of all placeholder files.
	Bytes int64
	// ErrorCount is the number of entries that could not be inspected.
	ErrorCount int64
	// Elapsed is the time taken by the walk.
	Elapsed time.Duration
}

// MaxDepth returns the deepest level holding a directory.
func (s *Stats) MaxDepth() int {
	deepest := 0
	for depth := range s.DirsByDepth {
		deepest = max(deepest, depth)
	}

	return deepest
}

// collector aggregates statistics from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu           sync.Mutex
	dirsByDepth  map[int]int64
	filesByDepth map[int]int64
	dirs         int64
	files        int64
	bytes        int64
	errorCount   int64
}

func newCollector() *collector {
	return &collector{
		dirsByDepth:  make(map[int]int64),
		filesByDepth: make(map[int]int64),
	}
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

func (c *collector) addDir(depth int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs++
	c.dirsByDepth[depth]++
}

// addFile records a placeholder file; depth is that of its parent directory.
func (c *collector) addFile(depth int, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files++
	c.bytes += size
	c.filesByDepth[depth]++
}

func (c *collector) snapshot() (int64, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dirs + c.files, c.bytes
}

func (c *collector) finalize(root string) *Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Stats{
		Root:         root,
		DirsByDepth:  c.dirsByDepth,
		FilesByDepth: c.filesByDepth,
		Dirs:         c.dirs,
		Files:        c.files,
		Bytes:        c.bytes,
		ErrorCount:   c.errorCount,
	}
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Census walks root in parallel and counts directories per level and the
// placeholder (*.img) files below it. Entries that cannot be inspected are
// counted in ErrorCount and otherwise skipped. Progress updates are sent to
// progressHook if provided.
func Census(ctx context.Context, root string, progressHook func(int64, int64)) (*Stats, error) {
	root = filepath.Clean(root)

	if err := checkRoot(root); err != nil {
		return nil, err
	}

	c := newCollector()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, c, progressHook, DefaultProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.addError()

			return nil
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		depth := calculateDepth(path, root)

		if d.IsDir() {
			if depth > 0 {
				c.addDir(depth)
			}

			return nil
		}

		if !d.Type().IsRegular() || filepath.Ext(path) != ".img" {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			c.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		c.addFile(depth-1, info.Size())

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", root, walkErr)
	}

	stats := c.finalize(root)
	stats.Elapsed = time.Since(start)

	return stats, nil
}
