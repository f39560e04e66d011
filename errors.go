package grist

import (
	"errors"
	"fmt"
)

// Sentinel errors for the grist package.
// Use errors.Is to check: errors.Is(err, grist.ErrLengthMismatch)
var (
	ErrLengthMismatch = errors.New("grist: length mismatch")
)

// checkLengths returns ErrLengthMismatch when the two parallel slices differ
// in length. The names are used in the error message only.
func checkLengths(aName string, a int, bName string, b int) error {
	if a != b {
		return fmt.Errorf("%w: %d %s, %d %s", ErrLengthMismatch, a, aName, b, bName)
	}
	return nil
}
