package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/treefill/internal/treefill"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// Summary is the result of a completed run.
type Summary struct {
	// Stats is the census of the root after the run.
	Stats *treefill.Stats
	// Created is the number of directories created by this run.
	Created int
	// Written is the number of files written by this run.
	Written int
	// FileSize is the size in bytes of each written file.
	FileSize int64
}

// PrintSummary outputs the run summary in human-readable table format.
func PrintSummary(summary Summary, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)
	stats := summary.Stats

	fmt.Fprintln(w, "\nDirectories by depth:\t\t")

	depths := make([]int, 0, len(stats.DirsByDepth))
	for depth := range stats.DirsByDepth {
		depths = append(depths, depth)
	}

	slices.Sort(depths)

	for _, depth := range depths {
		fmt.Fprintf(w, "  %d)\t%s dirs\t%d files\n",
			depth, humanize.Comma(stats.DirsByDepth[depth]), stats.FilesByDepth[depth])
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Directories created:\t%d of %d\n", summary.Created, stats.Dirs)
	fmt.Fprintf(w, "Deepest level:\t%d\n", stats.MaxDepth())
	fmt.Fprintf(w, "Files written:\t%d x %s\n",
		summary.Written, humanize.IBytes(uint64(summary.FileSize))) //nolint:gosec // Size is never negative
	fmt.Fprintf(w, "Placeholder files:\t%d in root, %d total\n", stats.FilesByDepth[0], stats.Files)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(stats.Bytes)), stats.Bytes) //nolint:gosec // Bytes is always positive

	if stats.ErrorCount > 0 {
		fmt.Fprintf(w, "Unreadable entries:\t%d\n", stats.ErrorCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
