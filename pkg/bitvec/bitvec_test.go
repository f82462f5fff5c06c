package bitvec

import "testing"

func TestNewSizing(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantWords int
	}{
		{"zero", 0, 0},
		{"one bit", 1, 1},
		{"full word", 64, 1},
		{"word plus one", 65, 2},
		{"three words", 192, 3},
		{"partial last word", 200, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.n)
			if got := len(v.words); got != tt.wantWords {
				t.Errorf("len(words) = %d, want %d", got, tt.wantWords)
			}
			if v.Len() != tt.n {
				t.Errorf("Len() = %d, want %d", v.Len(), tt.n)
			}
		})
	}
}

func TestSetAndTest(t *testing.T) {
	v := New(130)

	// Exercise word boundaries: first bit, last bit of word 0, first of
	// word 1, and the final addressable bit.
	for _, i := range []int{0, 63, 64, 127, 128, 129} {
		if v.Test(i) {
			t.Errorf("Test(%d) = true before Set", i)
		}
		v.Set(i)
		if !v.Test(i) {
			t.Errorf("Test(%d) = false after Set", i)
		}
	}

	// Neighbors of the set bits stay unset.
	for _, i := range []int{1, 62, 65, 126} {
		if v.Test(i) {
			t.Errorf("Test(%d) = true, bit was never set", i)
		}
	}

	if got := v.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
}

func TestSetIsIdempotent(t *testing.T) {
	v := New(10)
	v.Set(3)
	v.Set(3)
	v.Set(3)

	if got := v.Count(); got != 1 {
		t.Errorf("Count() after repeated Set = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	v := New(100)
	for i := 0; i < 100; i += 7 {
		v.Set(i)
	}

	v.Clear()

	if got := v.Count(); got != 0 {
		t.Errorf("Count() after Clear = %d, want 0", got)
	}
	if v.Len() != 100 {
		t.Errorf("Len() after Clear = %d, want 100", v.Len())
	}
}

func TestReset(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		next    int
	}{
		{"shrink", 200, 64},
		{"grow within capacity", 200, 250},
		{"grow beyond capacity", 10, 500},
		{"same size", 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.initial)
			for i := 0; i < tt.initial; i += 3 {
				v.Set(i)
			}

			v.Reset(tt.next)

			if v.Len() != tt.next {
				t.Errorf("Len() = %d, want %d", v.Len(), tt.next)
			}
			if got := v.Count(); got != 0 {
				t.Errorf("Count() after Reset = %d, want 0", got)
			}
		})
	}
}

func TestResetDoesNotLeakStaleBits(t *testing.T) {
	// Shrink then grow again within the retained capacity: bits set in
	// the wider extent must not resurface.
	v := New(192)
	v.Set(150)
	v.Set(191)

	v.Reset(64)
	v.Reset(192)

	if got := v.Count(); got != 0 {
		t.Errorf("Count() = %d after shrink/grow cycle, want 0", got)
	}
	if v.Test(150) || v.Test(191) {
		t.Error("stale bits survived Reset cycle")
	}
}

func TestNextSet(t *testing.T) {
	v := New(300)
	set := []int{0, 5, 63, 64, 180, 299}
	for _, i := range set {
		v.Set(i)
	}

	var got []int
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		got = append(got, i)
	}

	if len(got) != len(set) {
		t.Fatalf("scan found %d bits, want %d: %v", len(got), len(set), got)
	}
	for i := range set {
		if got[i] != set[i] {
			t.Errorf("scan[%d] = %d, want %d", i, got[i], set[i])
		}
	}
}

func TestNextSetSkipsZeroWords(t *testing.T) {
	// A single bit far into the vector: the scan must find it from 0.
	v := New(10_000)
	v.Set(9_999)

	i, ok := v.NextSet(0)
	if !ok || i != 9_999 {
		t.Errorf("NextSet(0) = (%d, %v), want (9999, true)", i, ok)
	}

	// And nothing after it; NextSet at Len is a clean end-of-scan.
	if _, ok := v.NextSet(10_000); ok {
		t.Error("NextSet past the last bit reported a set bit")
	}
}

func TestNextSetEmpty(t *testing.T) {
	v := New(128)
	if i, ok := v.NextSet(0); ok {
		t.Errorf("NextSet on empty vector = (%d, true), want none", i)
	}

	zero := New(0)
	if _, ok := zero.NextSet(0); ok {
		t.Error("NextSet on zero-length vector reported a set bit")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(v *Vector)
	}{
		{"Set negative", func(v *Vector) { v.Set(-1) }},
		{"Set past end", func(v *Vector) { v.Set(64) }},
		{"Test past end", func(v *Vector) { v.Test(100) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn(New(64))
		})
	}
}
