package randset

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		minValue int
		maxValue int
	}{
		{"dense full range", 60, 1, 60},
		{"dense prefix", 50, 1, 60},
		{"sparse", 20, 1, 1000000},
		{"sparse offset range", 15, 500, 1000000},
		{"singleton range", 1, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distinct(newRNG(42), tt.count, tt.minValue, tt.maxValue)
			if err != nil {
				t.Fatalf("Distinct() error: %v", err)
			}

			if len(got) != tt.count {
				t.Fatalf("len = %d, want %d", len(got), tt.count)
			}

			seen := make(map[int]bool, len(got))
			for _, v := range got {
				if v < tt.minValue || v > tt.maxValue {
					t.Errorf("value %d outside [%d, %d]", v, tt.minValue, tt.maxValue)
				}
				if seen[v] {
					t.Errorf("duplicate value %d", v)
				}
				seen[v] = true
			}
		})
	}
}

func TestDistinctExactFit(t *testing.T) {
	got, err := Distinct(newRNG(7), 5, 3, 7)
	if err != nil {
		t.Fatalf("Distinct() error: %v", err)
	}

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{3, 4, 5, 6, 7}) {
		t.Errorf("values = %v, want a permutation of [3 4 5 6 7]", got)
	}
}

func TestDistinctRangeTooSmall(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		minValue      int
		maxValue      int
		wantAvailable int
	}{
		{"request exceeds range", 10, 1, 5, 5},
		{"inverted range", 1, 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distinct(newRNG(1), tt.count, tt.minValue, tt.maxValue)

			var rte *RangeTooSmallError
			if !errors.As(err, &rte) {
				t.Fatalf("Distinct() error = %v, want RangeTooSmallError", err)
			}
			if rte.Requested != tt.count {
				t.Errorf("Requested = %d, want %d", rte.Requested, tt.count)
			}
			if rte.Available != tt.wantAvailable {
				t.Errorf("Available = %d, want %d", rte.Available, tt.wantAvailable)
			}
			if rte.Min != tt.minValue || rte.Max != tt.maxValue {
				t.Errorf("range = [%d, %d], want [%d, %d]", rte.Min, rte.Max, tt.minValue, tt.maxValue)
			}
		})
	}
}

func TestDistinctZeroCount(t *testing.T) {
	got, err := Distinct(newRNG(1), 0, 1, 10)
	if err != nil {
		t.Fatalf("Distinct() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDistinctNegativeCount(t *testing.T) {
	_, err := Distinct(newRNG(1), -1, 1, 10)
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Distinct() error = %v, want ErrNegativeCount", err)
	}
}

func TestDistinctReproducible(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		minValue int
		maxValue int
	}{
		{"dense", 40, 1, 50},
		{"sparse", 25, 1, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := Distinct(newRNG(123), tt.count, tt.minValue, tt.maxValue)
			if err != nil {
				t.Fatalf("Distinct() error: %v", err)
			}
			second, err := Distinct(newRNG(123), tt.count, tt.minValue, tt.maxValue)
			if err != nil {
				t.Fatalf("Distinct() error: %v", err)
			}

			if !slices.Equal(first, second) {
				t.Errorf("same seed produced different sequences:\n%v\n%v", first, second)
			}
		})
	}
}

func TestDistinctSeedChangesSequence(t *testing.T) {
	first, err := Distinct(newRNG(1), 30, 1, 1000)
	if err != nil {
		t.Fatalf("Distinct() error: %v", err)
	}
	second, err := Distinct(newRNG(2), 30, 1, 1000)
	if err != nil {
		t.Fatalf("Distinct() error: %v", err)
	}

	if slices.Equal(first, second) {
		t.Error("different seeds produced identical sequences")
	}
}
