package chainmap

import (
	"strconv"
	"testing"

	"golang.org/x/exp/rand"
)

var sizes = []int{
	1 << 10,
	1 << 16,
	// 1 << 20,
}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapGetHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkChainMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkChainMapGetHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapInsert_Grow(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapInsertGrow[uint64], genKeys[uint64]))
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkChainMapInsertGrow[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapDelete_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapDeleteMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkChainMapDeleteMiss[uint64], genKeys[uint64]))
	})
}

func benchmarkStdMapGetHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int)
	keys := genKeys(0, size)
	for i, k := range keys {
		m[k] = i
	}

	shuffle(keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkChainMapGetHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := New[K, int]()
	keys := genKeys(0, size)
	for i, k := range keys {
		m.Insert(k, i)
	}

	shuffle(keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}

func benchmarkStdMapInsertGrow[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[K]int)
		for j, k := range keys {
			m[k] = j
		}
	}
}

func benchmarkChainMapInsertGrow[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := New[K, int]()
		for j, k := range keys {
			m.Insert(k, j)
		}
	}
}

func benchmarkStdMapDeleteMiss[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int)
	for i, k := range genKeys(0, size) {
		m[k] = i
	}

	misses := genKeys(size, 2*size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		delete(m, misses[i%len(misses)])
	}
}

func benchmarkChainMapDeleteMiss[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := New[K, int]()
	for i, k := range genKeys(0, size) {
		m.Insert(k, i)
	}

	misses := genKeys(size, 2*size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Delete(misses[i%len(misses)])
	}
}

func genKeys[K comparable](start, end int) []K {
	keys := make([]K, end-start)
	for i := range keys {
		var k any
		switch any(keys[i]).(type) {
		case uint64:
			k = uint64(start + i)
		case string:
			k = strconv.Itoa(start + i)
		default:
			panic("not reached")
		}

		keys[i] = k.(K)
	}

	return keys
}

func shuffle[K any](keys []K) {
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, size int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
