// Package randset draws sets of distinct random integers from a closed
// range.
//
// Two strategies cover the density spectrum. When the range is not much
// larger than the request, the full range is materialized and shuffled,
// and a prefix is kept. When the range dwarfs the request, values are
// rejection-sampled against a seen-set instead, keeping memory
// proportional to the request.
package randset

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// sparseCutoff is the range-to-request ratio beyond which rejection
// sampling takes over from materializing the range.
const sparseCutoff = 4

// ErrNegativeCount is returned when a negative number of values is
// requested.
var ErrNegativeCount = errors.New("negative count: cannot draw a negative number of values")

// RangeTooSmallError is returned when a request asks for more distinct
// values than the range holds.
type RangeTooSmallError struct {
	Requested int
	Available int
	Min       int
	Max       int
}

func (e *RangeTooSmallError) Error() string {
	return fmt.Sprintf("cannot draw %d distinct values from [%d, %d]: only %d available",
		e.Requested, e.Min, e.Max, e.Available)
}

// Distinct returns count distinct integers drawn uniformly from
// [minValue, maxValue], in random order. The same rng state yields the
// same sequence, so callers seed for reproducibility.
func Distinct(rng *rand.Rand, count, minValue, maxValue int) ([]int, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count == 0 {
		return nil, nil
	}

	available := maxValue - minValue + 1
	if maxValue < minValue {
		available = 0
	}
	if count > available {
		return nil, &RangeTooSmallError{
			Requested: count,
			Available: available,
			Min:       minValue,
			Max:       maxValue,
		}
	}

	if available <= sparseCutoff*count {
		return densePick(rng, count, minValue, available), nil
	}
	return sparsePick(rng, count, minValue, maxValue), nil
}

// densePick shuffles the whole range and keeps a prefix.
func densePick(rng *rand.Rand, count, minValue, available int) []int {
	vals := make([]int, available)
	for i := range vals {
		vals[i] = minValue + i
	}
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	return vals[:count:count]
}

// sparsePick rejection-samples until count fresh values have been seen.
// The cutoff bounds the rejection rate at 1/4, so the loop finishes in
// O(count) expected draws.
func sparsePick(rng *rand.Rand, count, minValue, maxValue int) []int {
	span := maxValue - minValue + 1
	seen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	for len(out) < count {
		v := minValue + rng.IntN(span)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
