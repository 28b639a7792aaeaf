package treefill

import (
	"fmt"
	"io"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
	out     io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if !l.enabled || l.out == nil {
		return
	}

	fmt.Fprintf(l.out, "[debug]: "+format, args...)
}
