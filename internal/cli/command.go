package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/treefill/internal/treefill"
)

// usageLine is printed when the wrong number of arguments is given.
const usageLine = "Script takes four arguments: dir depth, dir width, number of files, and file size in kB."

// CLI represents the command-line interface.
type CLI struct {
	version   string
	root      string
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	confirmer treefill.Confirmer
	sleeper   treefill.Sleeper
	rng       func() *rand.Rand
	progress  bool
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{
		version:  version,
		root:     treefill.DefaultRoot,
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		rng:      treefill.NewRand,
		progress: true,
	}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.run(os.Args[1:])
}

func (c CLI) run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := c.command()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if errors.Is(err, treefill.ErrDeclined) {
		return nil
	}

	return err
}

func (c CLI) command() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "treefill <depth> <width> <files> <size-kb>",
		Short: "Generate a directory tree and scatter placeholder files across it",
		Long: heredoc.Docf(`
			treefill builds a directory tree under %s and scatters zero-filled
			placeholder files across it, pausing between writes, to put load on
			a networked filesystem.

			Positional Arguments:
			  depth      Number of directory levels below the root (at most %d).
			  width      Number of subdirectories under every non-leaf directory.
			  files      Number of placeholder files to create (1.img, 2.img, ...).
			  size-kb    Size of each placeholder file in kilobytes.

			Trees with more than %d directories require confirmation.
		`, c.root, treefill.MaxDepth, treefill.ConfirmThreshold),
		Example: heredoc.Doc(`
			# 6 directories, 3 files of 1 KiB each
			treefill 2 2 3 1
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 { //nolint:mnd // Four positional arguments
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)

				return cmd.Usage()
			}

			options, err := parseArgs(args)
			if err != nil {
				return err
			}

			options.Root = c.root
			options.Debug = debug

			return c.logic(cmd.Context(), options)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug output")
	// Negative positionals such as -1 are parsed as shorthand flags.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", treefill.ErrUsage, err)
	})
	cmd.SetIn(c.in)
	cmd.SetOut(c.out)
	cmd.SetErr(c.errOut)

	return cmd
}

// parseArgs converts the four positional arguments into options.
func parseArgs(args []string) (treefill.Options, error) {
	names := []string{"depth", "width", "files", "size-kb"}
	values := make([]int, len(args))

	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return treefill.Options{}, fmt.Errorf("%w: %s must be an integer, got %q", treefill.ErrUsage, names[i], arg)
		}

		values[i] = v
	}

	options := treefill.Options{
		Depth:  values[0],
		Width:  values[1],
		Files:  values[2],
		SizeKB: values[3],
	}

	return options, options.Validate()
}
