package chainmap

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket holds every entry whose key hashes to the same index.
// Order inside a bucket is insertion order until a removal swaps
// the last entry into the hole.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

// find returns the position of key in the chain, or -1.
func (b *bucket[K, V]) find(key K) int {
	for i := range b.entries {
		if b.entries[i].key == key {
			return i
		}
	}

	return -1
}

func (b *bucket[K, V]) push(key K, value V) {
	b.entries = append(b.entries, entry[K, V]{key: key, value: value})
}

// swapRemove removes the entry at i in O(1) by moving the last entry into
// its place. The vacated tail slot is zeroed so nothing stays reachable.
func (b *bucket[K, V]) swapRemove(i int) entry[K, V] {
	last := len(b.entries) - 1
	removed := b.entries[i]

	b.entries[i] = b.entries[last]
	b.entries[last] = entry[K, V]{}
	b.entries = b.entries[:last]

	return removed
}

// drain hands every entry to fn and leaves the bucket empty.
func (b *bucket[K, V]) drain(fn func(entry[K, V])) {
	for i := range b.entries {
		fn(b.entries[i])
		b.entries[i] = entry[K, V]{}
	}

	b.entries = nil
}
