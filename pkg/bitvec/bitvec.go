// Package bitvec provides a fixed-size bit vector backed by uint64 words.
//
// A Vector maps a dense index range [0, n) onto individual bits, using
// one word per 64 indexes. It is the presence structure behind the
// bigsort engine: slot i records whether the value i+1 occurred in the
// input. The vector never grows; sizing is fixed at construction (or
// Reset) to preserve the O(n) space contract of its callers.
package bitvec

import "math/bits"

const wordBits = 64

// Vector is a fixed-size bit array. The zero value is an empty vector
// of length 0; use New to create one with addressable bits.
//
// Vector is not safe for concurrent use without external synchronization.
type Vector struct {
	words []uint64
	n     int
}

// wordsFor returns the number of uint64 words needed for n bits.
func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// New creates a vector with n addressable bits, all unset.
// It panics if n is negative.
func New(n int) *Vector {
	if n < 0 {
		panic("bitvec: negative length")
	}
	return &Vector{words: make([]uint64, wordsFor(n)), n: n}
}

// Len returns the number of addressable bits.
func (v *Vector) Len() int {
	return v.n
}

// Set sets bit i. It panics if i is out of range, like slice indexing.
func (v *Vector) Set(i int) {
	if i < 0 || i >= v.n {
		panic("bitvec: index out of range")
	}
	v.words[i/wordBits] |= 1 << (i % wordBits)
}

// Test reports whether bit i is set. It panics if i is out of range.
func (v *Vector) Test(i int) bool {
	if i < 0 || i >= v.n {
		panic("bitvec: index out of range")
	}
	return v.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	c := 0
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Clear unsets every bit. The backing array is zeroed, not replaced, so
// a cleared vector can be reused without reallocating.
func (v *Vector) Clear() {
	for i := range v.words {
		v.words[i] = 0
	}
}

// Reset resizes the vector to n bits and unsets all of them, reusing
// the backing array when its capacity allows. Every word in the new
// extent is zeroed, so bits set before Reset can never leak into later
// use. It panics if n is negative.
func (v *Vector) Reset(n int) {
	if n < 0 {
		panic("bitvec: negative length")
	}
	need := wordsFor(n)
	if cap(v.words) >= need {
		v.words = v.words[:need]
	} else {
		v.words = make([]uint64, need)
		v.n = n
		return
	}
	for i := range v.words {
		v.words[i] = 0
	}
	v.n = n
}

// NextSet returns the index of the first set bit at or after i, and
// whether one exists. Whole zero words are skipped, so scanning a
// sparse vector costs O(words) rather than O(bits). It panics if i is
// negative; i values at or beyond Len simply report no bit.
func (v *Vector) NextSet(i int) (int, bool) {
	if i < 0 {
		panic("bitvec: negative index")
	}
	if i >= v.n {
		return 0, false
	}
	w := i / wordBits
	// Mask off bits below i in the first word. Bits at or beyond Len
	// are never set (Set bounds-checks), so no mask is needed at the top.
	word := v.words[w] &^ (1<<(i%wordBits) - 1)
	for {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word), true
		}
		w++
		if w >= len(v.words) {
			return 0, false
		}
		word = v.words[w]
	}
}
