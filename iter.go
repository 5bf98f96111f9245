package chainmap

import (
	"errors"
	"iter"
)

// ErrConcurrentModification is the panic value of an iterator step taken
// after its map was structurally modified.
var ErrConcurrentModification = errors.New("chainmap: map modified during iteration")

// Iterator walks a map bucket by bucket, and within a bucket in chain
// order. It does not copy anything.
//
// The map must not be modified while an iterator is in use: inserting a
// new key, deleting, or clearing makes the next call to Next panic with
// ErrConcurrentModification. Replacing the value of an existing key is
// allowed.
type Iterator[K comparable, V any] struct {
	t          *table[K, V]
	generation uint64

	bucket int
	pos    int

	cur  *entry[K, V]
	done bool
}

// Iterator returns a cursor positioned before the first pair.
// Call Next before reading the first pair.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if m == nil {
		it.done = true
		return it
	}

	it.t = &m.table
	it.generation = m.generation

	return it
}

// Next moves to the next pair and reports whether there is one. Once it
// returns false it keeps returning false.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}

	if it.t.generation != it.generation {
		panic(ErrConcurrentModification)
	}

	for it.bucket < len(it.t.buckets) {
		entries := it.t.buckets[it.bucket].entries
		if it.pos < len(entries) {
			it.cur = &entries[it.pos]
			it.pos++

			return true
		}

		it.bucket++
		it.pos = 0
	}

	it.cur = nil
	it.done = true

	return false
}

func (it *Iterator[K, V]) Key() K {
	if it.cur == nil {
		return *new(K)
	}

	return it.cur.key
}

func (it *Iterator[K, V]) Value() V {
	if it.cur == nil {
		return *new(V)
	}

	return it.cur.value
}

func (it *Iterator[K, V]) Pair() (K, V) {
	return it.Key(), it.Value()
}

// All returns an iterator over the map's pairs, in the same order and with
// the same restrictions as Iterator.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Iterator(); it.Next(); {
			if !yield(it.Pair()) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Iterator(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Iterator(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
