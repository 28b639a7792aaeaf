package treefill

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestEstimateDirs(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		width int
		want  uint64
	}{
		{name: "empty depth", depth: 0, width: 5, want: 0},
		{name: "empty width", depth: 5, width: 0, want: 0},
		{name: "single level", depth: 1, width: 7, want: 7},
		{name: "two by two", depth: 2, width: 2, want: 6},
		{name: "four by six", depth: 4, width: 6, want: 1554},
		{name: "unit width", depth: 64, width: 1, want: 64},
		{name: "saturates", depth: 64, width: 1000, want: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDirs(tt.depth, tt.width))
		})
	}
}

func TestNeedsConfirmation(t *testing.T) {
	assert.True(t, NeedsConfirmation(4, 6))
	assert.True(t, NeedsConfirmation(3, 10))
	assert.False(t, NeedsConfirmation(3, 9))
	assert.False(t, NeedsConfirmation(1, 1000))
	assert.True(t, NeedsConfirmation(1, 1001))
}

func TestEstimateDirsRecurrence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("sum(d) equals w * (1 + sum(d-1))", prop.ForAll(
		func(depth, width int) bool {
			return EstimateDirs(depth, width) == uint64(width)*(1+EstimateDirs(depth-1, width))
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
