package chainmap

import "errors"

// ErrNilMap is the panic value of Insert on a nil *Map.
var ErrNilMap = errors.New("chainmap: insert into nil map")

// Map is a hash map built on separate chaining: an array of buckets, each a
// short slice of key/value pairs sharing the same index. The array starts
// empty, is allocated on the first insert and doubles whenever the table
// gets 75% full. It never shrinks.
//
// A nil *Map reads as an empty map.
//
// Map is not safe for concurrent use. Guard it with a single mutex if
// several goroutines need it.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new, empty map. No buckets are allocated until the first insert.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Insert stores value under key. When key was already present the stored
// key is kept, the value replaced, and the previous value returned with
// true. Insert may grow and rehash the whole table.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	if m == nil {
		panic(ErrNilMap)
	}

	return m.insert(key, value)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		return *new(V), false
	}

	return m.get(key)
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and returns the value it held. Removal swaps the last
// entry of the bucket into the hole, so order within a bucket changes.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	if m == nil {
		return *new(V), false
	}

	return m.delete(key)
}

func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}

	return m.count
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}
