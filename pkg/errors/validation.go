package errors

import (
	"strings"
	"unicode"
)

// Validation limits for run parameters.
//
// The limits are intentionally conservative: a presence vector holds one
// bit per value up to the maximum element, so an oversized maximum turns
// a typo into a multi-gigabyte allocation.
const (
	// MaxArraySize caps how many values a single run may generate or sort.
	MaxArraySize = 100_000_000

	// MaxElementValue caps the largest admissible value. At one bit per
	// value the presence vector for this maximum stays under 128 MiB.
	MaxElementValue = 1_000_000_000
)

// ValidateArraySize validates the requested number of values for a run.
func ValidateArraySize(size int) error {
	if size < 1 {
		return New(ErrCodeInvalidInput, "array size must be at least 1, got %d", size)
	}
	if size > MaxArraySize {
		return New(ErrCodeInvalidInput, "array size %d exceeds the maximum of %d", size, MaxArraySize)
	}
	return nil
}

// ValidateMaxElement validates the upper bound of the value range.
func ValidateMaxElement(maxValue int) error {
	if maxValue < 1 {
		return New(ErrCodeInvalidInput, "max element value must be at least 1, got %d", maxValue)
	}
	if maxValue > MaxElementValue {
		return New(ErrCodeInvalidInput, "max element value %d exceeds the maximum of %d", maxValue, MaxElementValue)
	}
	return nil
}

// ValidateMinElement validates the lower bound of the value range.
// Values below 1 have no slot in a presence vector.
func ValidateMinElement(minValue int) error {
	if minValue < 1 {
		return New(ErrCodeInvalidInput, "min element value must be at least 1, got %d", minValue)
	}
	if minValue > MaxElementValue {
		return New(ErrCodeInvalidInput, "min element value %d exceeds the maximum of %d", minValue, MaxElementValue)
	}
	return nil
}

// ValidateCaseName validates a workload case name. Case names appear in
// log fields and artifact keys, so the rules are conservative:
//   - No empty names
//   - No control characters
//   - No path separators
//   - Maximum length of 128 characters
func ValidateCaseName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidWorkload, "case name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidWorkload, "case name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWorkload, "case name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidWorkload, "case name cannot contain path separators")
	}

	return nil
}
