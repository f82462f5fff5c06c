// Package bigsort sorts collections of distinct positive integers by
// positional encoding instead of key comparison.
//
// # Algorithm
//
// Each input value v is mapped to slot v-1 of a presence vector sized
// to the maximum observed value. Scanning the vector in increasing
// slot order and emitting i+1 for every set slot reconstructs the
// input in ascending order. Because the slot scan is monotonic and the
// value↔slot mapping is a monotonic bijection, sortedness falls out of
// the encoding; no element is ever compared to another and nothing is
// swapped.
//
// # Complexity
//
// Sorting n values with maximum m costs O(n + m) time and m bits of
// scratch space, against O(n log n) time and no scratch for a
// comparison sort. The trade is favorable when m is within a modest
// factor of n (dense value ranges) and increasingly poor as m grows
// past that: a handful of values near one billion still allocates a
// billion-bit vector. Callers own that judgment; the engine just
// reports PresenceVectorSize so the cost is visible.
//
// # Preconditions
//
// The input must contain only positive integers (the one-based mapping
// is undefined at zero and below) and no value twice. Positivity is
// enforced during marking. Distinctness is the caller's responsibility:
// by default duplicates silently collapse into one slot, observable as
// ResultSize < OriginalSize and flagged by [Result.Collapsed]; with
// [Options.Strict] the collapse is detected during marking and fails
// the sort instead.
package bigsort
