package bigsort

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkSort_Dense_1000(b *testing.B)    { benchmarkSort(b, 1000, 1000) }
func BenchmarkSort_Dense_100000(b *testing.B)  { benchmarkSort(b, 100000, 100000) }
func BenchmarkSort_Sparse_1000(b *testing.B)   { benchmarkSort(b, 1000, 16000) }
func BenchmarkSort_Sparse_100000(b *testing.B) { benchmarkSort(b, 100000, 1600000) }

func benchmarkSort(b *testing.B, n, max int) {
	input := benchInput(n, max)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sort(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSortReuse_Dense_100000(b *testing.B) {
	input := benchInput(100000, 100000)
	engine := New(Options{ReuseScratch: true})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Sort(input); err != nil {
			b.Fatal(err)
		}
	}
}

// benchInput draws n distinct values from [1, max] by shuffling the
// full range and keeping a prefix.
func benchInput(n, max int) []int {
	rng := rand.New(rand.NewPCG(1, 1^0xdeadbeef))
	vals := make([]int, max)
	for i := range vals {
		vals[i] = i + 1
	}
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	return vals[:n]
}
