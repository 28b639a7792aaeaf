package treefill

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"time"
)

// Sleeper pauses between file writes. It returns early with ctx.Err()
// when ctx is cancelled.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper backed by a timer.
func SleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Generator creates the directory tree and scatters files within it.
// It is not safe for concurrent use.
type Generator struct {
	opt   Options
	rng   *rand.Rand
	sleep Sleeper
	out   io.Writer
	log   logger
}

// NewGenerator validates opt and returns a Generator drawing randomness
// from rng. A nil sleep uses SleepContext and a nil out discards output.
// Debug output goes to stderr when opt.Debug is set.
func NewGenerator(opt Options, rng *rand.Rand, sleep Sleeper, out io.Writer) (*Generator, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		return nil, errors.New("random source is required")
	}

	if opt.Root == "" {
		opt.Root = DefaultRoot
	}

	if sleep == nil {
		sleep = SleepContext
	}

	if out == nil {
		out = io.Discard
	}

	return &Generator{
		opt:   opt,
		rng:   rng,
		sleep: sleep,
		out:   out,
		log:   logger{enabled: opt.Debug, out: os.Stderr},
	}, nil
}

// NewRand returns a random source seeded once from the current time.
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano()) //nolint:gosec // Seed only, sign is irrelevant

	return rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15)) //nolint:gosec // Not used for security
}

// SetDebugOutput redirects debug output, which goes to stderr by default.
func (g *Generator) SetDebugOutput(w io.Writer) {
	g.log.out = w
}

// Options returns the validated options the generator runs with.
func (g *Generator) Options() Options {
	return g.opt
}
