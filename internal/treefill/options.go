package treefill

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultRoot is the directory under which the tree is generated.
	DefaultRoot = "/mnt/cephfs/test"
	// MaxDepth bounds the tree depth accepted from the command line.
	MaxDepth = 64
	// ConfirmThreshold is the directory count above which confirmation is required.
	ConfirmThreshold = 1000
	// BlockSize is the size of one kilobyte of placeholder payload.
	BlockSize = 1024
	// MinWait is the shortest pause between two file writes.
	MinWait = 100 * time.Millisecond
	// MaxWait is the longest pause between two file writes.
	MaxWait = 3 * time.Second
)

var (
	// ErrDeclined is returned when the user does not confirm a large tree.
	ErrDeclined = errors.New("run declined")
	// ErrUsage marks invalid arguments.
	ErrUsage = errors.New("usage error")
)

// Options configures a generation run.
type Options struct {
	// Root is the directory the tree is built under.
	Root string
	// Depth is the number of directory levels below Root.
	Depth int
	// Width is the number of children of every non-leaf directory.
	Width int
	// Files is the number of placeholder files to scatter.
	Files int
	// SizeKB is the size of each placeholder file in kilobytes.
	SizeKB int
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// Validate checks that all numeric options are in range.
func (o Options) Validate() error {
	switch {
	case o.Depth < 0:
		return fmt.Errorf("%w: depth cannot be negative", ErrUsage)
	case o.Depth > MaxDepth:
		return fmt.Errorf("%w: depth %d exceeds maximum of %d", ErrUsage, o.Depth, MaxDepth)
	case o.Width < 0:
		return fmt.Errorf("%w: width cannot be negative", ErrUsage)
	case o.Files < 0:
		return fmt.Errorf("%w: file count cannot be negative", ErrUsage)
	case o.SizeKB < 0:
		return fmt.Errorf("%w: file size cannot be negative", ErrUsage)
	}

	return nil
}

// FileBytes returns the size in bytes of one placeholder file.
func (o Options) FileBytes() int64 {
	return int64(o.SizeKB) * BlockSize
}
