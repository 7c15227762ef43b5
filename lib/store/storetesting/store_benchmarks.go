package storetesting

import (
	"fmt"
	"testing"

	"github.com/ValentinKolb/hKV/lib/kv"
	"github.com/ValentinKolb/hKV/lib/store"
)

// RunStoreBenchmarks runs all benchmarks for an IStore implementation.
func RunStoreBenchmarks(b *testing.B, name string, factory store.Factory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Set", func(b *testing.B) {
			benchmarkSet(b, factory())
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory())
		})

		b.Run("Contains(not)", func(b *testing.B) {
			benchmarkContainsNot(b, factory())
		})

		b.Run("GetAll", func(b *testing.B) {
			benchmarkGetAll(b, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkSet(b *testing.B, s store.IStore) {
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			s.Set("bench", fmt.Sprintf("key-%d", counter), kv.Int(int64(counter)))
			counter++
		}
	})
}

func benchmarkGet(b *testing.B, s store.IStore) {
	const numKeys = 1000
	for i := 0; i < numKeys; i++ {
		s.Set("bench", fmt.Sprintf("key-%d", i), kv.Int(int64(i)))
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			s.Get("bench", fmt.Sprintf("key-%d", counter%numKeys))
			counter++
		}
	})
}

func benchmarkContainsNot(b *testing.B, s store.IStore) {
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			s.Contains("bench", fmt.Sprintf("missing-%d", counter))
			counter++
		}
	})
}

func benchmarkGetAll(b *testing.B, s store.IStore) {
	for i := 0; i < 100; i++ {
		s.Set("bench", fmt.Sprintf("key-%d", i), kv.Int(int64(i)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.GetAll("bench")
	}
}
