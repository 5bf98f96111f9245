package chainmap

import (
	"hash/maphash"
)

const (
	// The table grows once it is 75% full: count/buckets >= 3/4.
	loadFactorNum = 3
	loadFactorDen = 4

	// Largest capacity hint honoured by WithCapacity.
	maxCapacityHint = 1 << 29
)

type table[K comparable, V any] struct {
	buckets []bucket[K, V]
	count   int

	// Bumped whenever entries may move. Iterators compare against it.
	generation uint64

	// Bucket count of the first allocation, 0 means 1.
	initialBuckets int

	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithCapacity sizes the first allocation so that n entries fit without
// a resize. Nothing is allocated until the first insert.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		if n <= 0 {
			return
		}

		n = min(n, maxCapacityHint)
		t.initialBuckets = int(NextPowerOf2(uint32(n*loadFactorDen/loadFactorNum + 1)))
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

// bucketIndex maps key to a bucket of the current array. The table must
// have at least one bucket.
func (t *table[K, V]) bucketIndex(key K) int {
	n := len(t.buckets)
	if n == 0 {
		panic("chainmap: bucket index requested on a table without buckets")
	}

	return int(t.hashFunc(key) % uint64(n))
}

func (t *table[K, V]) needsGrow() bool {
	n := len(t.buckets)
	return n == 0 || t.count*loadFactorDen >= n*loadFactorNum
}

// resize doubles the bucket array (or creates the first one) and moves
// every entry to the bucket it hashes to under the new size.
func (t *table[K, V]) resize() {
	target := len(t.buckets) * 2
	if target == 0 {
		target = max(t.initialBuckets, 1)
	}

	grown := make([]bucket[K, V], target)
	for i := range t.buckets {
		t.buckets[i].drain(func(e entry[K, V]) {
			idx := int(t.hashFunc(e.key) % uint64(target))
			grown[idx].push(e.key, e.value)
		})
	}

	t.buckets = grown
	t.generation++
}

func (t *table[K, V]) get(key K) (V, bool) {
	if len(t.buckets) == 0 {
		return *new(V), false
	}

	b := &t.buckets[t.bucketIndex(key)]
	if i := b.find(key); i >= 0 {
		return b.entries[i].value, true
	}

	return *new(V), false
}

// insert stores value under key. If the key is already present its value
// is replaced in place and the previous one returned. Only a new key can
// trigger growth.
func (t *table[K, V]) insert(key K, value V) (V, bool) {
	if len(t.buckets) > 0 {
		b := &t.buckets[t.bucketIndex(key)]
		if i := b.find(key); i >= 0 {
			old := b.entries[i].value
			b.entries[i].value = value

			return old, true
		}
	}

	if t.needsGrow() {
		t.resize()
	}

	t.buckets[t.bucketIndex(key)].push(key, value)
	t.count++
	t.generation++

	return *new(V), false
}

func (t *table[K, V]) delete(key K) (V, bool) {
	if len(t.buckets) == 0 {
		return *new(V), false
	}

	b := &t.buckets[t.bucketIndex(key)]
	i := b.find(key)
	if i < 0 {
		return *new(V), false
	}

	removed := b.swapRemove(i)
	t.count--
	t.generation++

	return removed.value, true
}

// Clear drops every entry. The bucket array keeps its size.
func (t *table[K, V]) Clear() {
	for i := range t.buckets {
		clear(t.buckets[i].entries)
		t.buckets[i].entries = t.buckets[i].entries[:0]
	}

	t.count = 0
	t.generation++
}

// Capacity returns the current number of buckets.
func (t *table[K, V]) Capacity() int {
	return len(t.buckets)
}

func (t *table[K, V]) Stats() Stats {
	s := Stats{
		Size:    t.count,
		Buckets: len(t.buckets),
	}

	for i := range t.buckets {
		l := len(t.buckets[i].entries)
		if l == 0 {
			s.EmptyBuckets++
		}

		s.LongestChain = max(s.LongestChain, l)
	}

	if s.Buckets > 0 {
		s.LoadFactor = float32(s.Size) / float32(s.Buckets)
	}

	return s
}
