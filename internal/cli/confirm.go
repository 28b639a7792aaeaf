package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
)

// fdReader is implemented by readers backed by a file descriptor, such as os.Stdin.
type fdReader interface {
	Fd() uintptr
}

// consoleConfirmer prompts on out and reads the answer from in.
type consoleConfirmer struct {
	in  io.Reader
	out io.Writer
}

// Confirm prints the directory count and asks for a y/n answer. Only "y"
// and "yes" (any case) accept. Input that is not a terminal declines
// without reading.
func (c consoleConfirmer) Confirm(dirs uint64) (bool, error) {
	fmt.Fprintf(c.out, "%d dirs will be created. are you sure?\n", dirs)

	if f, ok := c.in.(fdReader); ok && !isInteractive(f.Fd()) {
		fmt.Fprintln(c.out, "input is not interactive, aborting")

		return false, nil
	}

	fmt.Fprint(c.out, "y/n:")

	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	return accepted(answer), nil
}

func isInteractive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// accepted reports whether answer is an affirmative reply.
func accepted(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
