package bigsort

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by [Engine.Sort] when the input collection
// has no elements. An empty collection has no maximum, so there is no
// size for the presence vector; the check runs before any allocation.
var ErrEmptyInput = errors.New("empty input: no maximum exists, nothing to sort")

// NonPositiveValueError is returned by [Engine.Sort] when an input
// value lies outside the supported one-based positive domain. The
// mapping slot = value - 1 is undefined for zero and negative values.
type NonPositiveValueError struct {
	Value int // the offending value
	Index int // its position in the input
}

// Error implements the error interface.
func (e *NonPositiveValueError) Error() string {
	return fmt.Sprintf("non-positive value %d at index %d: values must be at least 1", e.Value, e.Index)
}

// DuplicateValueError is returned by [Engine.Sort] in strict mode when
// a value's slot is already marked, meaning the value appears more
// than once in the input. Outside strict mode duplicates are not an
// error; they collapse into one slot and surface as a shrunken result
// (see [Result.Collapsed]).
type DuplicateValueError struct {
	Value int // the value that was marked twice
}

// Error implements the error interface.
func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %d: input values must be distinct", e.Value)
}
