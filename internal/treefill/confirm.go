package treefill

import "fmt"

// Confirmer asks whether a tree of the given directory count should be created.
type Confirmer interface {
	Confirm(dirs uint64) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(dirs uint64) (bool, error)

// Confirm calls f(dirs).
func (f ConfirmFunc) Confirm(dirs uint64) (bool, error) {
	return f(dirs)
}

// Gate consults c when the tree is larger than ConfirmThreshold. It returns
// ErrDeclined if the user does not agree and nil when no question was needed.
func Gate(c Confirmer, depth, width int) error {
	if !NeedsConfirmation(depth, width) {
		return nil
	}

	dirs := EstimateDirs(depth, width)

	ok, err := c.Confirm(dirs)
	if err != nil {
		return fmt.Errorf("confirming %d directories: %w", dirs, err)
	}

	if !ok {
		return ErrDeclined
	}

	return nil
}
