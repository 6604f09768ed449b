package sorted_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlkit/sorted"
)

// BenchmarkSearch measures pure lookup cost on a large sorted slice.
func BenchmarkSearch(b *testing.B) {
	const N = 1 << 20
	s := make([]int, N)
	for i := range s {
		s[i] = i * 2 // even values so half the probes miss
	}

	rnd := rand.New(rand.NewSource(42))
	probes := make([]int, 1024)
	for i := range probes {
		probes[i] = rnd.Intn(2 * N)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorted.Search(s, probes[i&1023])
	}
}

// BenchmarkInsert_Append measures the cheapest case: values arriving in
// ascending order, so every insert lands at the tail.
func BenchmarkInsert_Append(b *testing.B) {
	b.ReportAllocs()
	s := make([]int, 0, b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ = sorted.Insert(s, i)
	}
}

// BenchmarkInsert_Random measures steady-state cost of random-position
// inserts into a pre-built sorted slice of fixed size (copy cost included,
// identical across iterations).
func BenchmarkInsert_Random(b *testing.B) {
	const N = 4096
	rnd := rand.New(rand.NewSource(42))
	base := make([]int, N)
	for i := range base {
		base[i] = rnd.Intn(1 << 20)
	}
	slices.Sort(base)
	buf := make([]int, N, N+1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, base)
		_, _ = sorted.Insert(buf[:N], rnd.Intn(1<<20))
	}
}
