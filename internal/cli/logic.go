package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/treefill/internal/treefill"
)

func (c CLI) logic(ctx context.Context, options treefill.Options) error {
	confirmer := c.confirmer
	if confirmer == nil {
		confirmer = consoleConfirmer{in: c.in, out: c.out}
	}

	if err := treefill.Gate(confirmer, options.Depth, options.Width); err != nil {
		return err
	}

	generator, err := treefill.NewGenerator(options, c.rng(), c.sleeper, c.out)
	if err != nil {
		return err
	}

	generator.SetDebugOutput(c.errOut)

	created, err := generator.BuildTree(ctx)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	written, err := generator.Scatter(ctx)
	if err != nil {
		return fmt.Errorf("scattering files (%d written): %w", written, err)
	}

	fmt.Fprintln(c.out, "Done")

	// Nothing was touched, so there is nothing to count.
	if created == 0 && written == 0 {
		return nil
	}

	enableProgress := c.progress && !options.Debug && isatty.IsTerminal(os.Stderr.Fd())

	var progressHook func(entries, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(entries, bytes int64) {
			msg := fmt.Sprintf("Counting… %d entries, %s",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := treefill.Census(ctx, generator.Options().Root, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	// The run itself succeeded; a failed census only loses the summary.
	if err != nil {
		fmt.Fprintf(c.errOut, "Warning: summary unavailable: %v\n", err)

		return nil
	}

	return PrintSummary(Summary{
		Stats:    stats,
		Created:  created,
		Written:  written,
		FileSize: options.FileBytes(),
	}, c.out)
}
