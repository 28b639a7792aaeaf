package treefill

import (
	"math"
	"math/bits"
)

// EstimateDirs returns the total number of directories a tree of the given
// depth and width contains, excluding the root: the sum of width^n for n in
// 1..depth. The result saturates at math.MaxUint64.
func EstimateDirs(depth, width int) uint64 {
	if depth <= 0 || width <= 0 {
		return 0
	}

	w := uint64(width)

	var sum, level uint64 = 0, 1

	for range depth {
		hi, lo := bits.Mul64(level, w)
		if hi != 0 {
			return math.MaxUint64
		}

		level = lo

		var carry uint64

		sum, carry = bits.Add64(sum, level, 0)
		if carry != 0 {
			return math.MaxUint64
		}
	}

	return sum
}

// NeedsConfirmation reports whether a tree of the given shape is large
// enough to require interactive confirmation.
func NeedsConfirmation(depth, width int) bool {
	return EstimateDirs(depth, width) > ConfirmThreshold
}
