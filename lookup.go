package chainmap

// Equivalent describes a second form Q under which keys of type K can be
// looked up, such as a []byte view of a string key. Hash must agree with
// the map's hash function: Equal(k, q) implies Hash(q) == hash(k).
type Equivalent[K comparable, Q any] interface {
	Hash(q Q) uint64
	Equal(k K, q Q) bool
}

// BytesLookup finds string keys by their bytes. It only agrees with maps
// hashed by StringHash, see NewStringMap.
type BytesLookup struct{}

func (BytesLookup) Hash(b []byte) uint64 { return BytesHash(b) }

// The conversion in the comparison does not allocate.
func (BytesLookup) Equal(k string, b []byte) bool { return k == string(b) }

// NewStringMap returns a string-keyed map hashed with StringHash, so it can
// also be queried with BytesLookup.
func NewStringMap[V any](opts ...Option[string, V]) *Map[string, V] {
	opts = append([]Option[string, V]{WithHashFunc[string, V](StringHash)}, opts...)
	return New(opts...)
}

// findEquivalent returns the bucket and position holding the key
// equivalent to q, or a nil bucket.
func findEquivalent[K comparable, V any, Q any](m *Map[K, V], q Q, eq Equivalent[K, Q]) (*bucket[K, V], int) {
	if m == nil || len(m.buckets) == 0 {
		return nil, -1
	}

	b := &m.buckets[int(eq.Hash(q)%uint64(len(m.buckets)))]
	for i := range b.entries {
		if eq.Equal(b.entries[i].key, q) {
			return b, i
		}
	}

	return nil, -1
}

// GetEquivalent is Get keyed by an equivalent form of the key.
func GetEquivalent[K comparable, V any, Q any](m *Map[K, V], q Q, eq Equivalent[K, Q]) (V, bool) {
	b, i := findEquivalent(m, q, eq)
	if b == nil {
		return *new(V), false
	}

	return b.entries[i].value, true
}

func ContainsEquivalent[K comparable, V any, Q any](m *Map[K, V], q Q, eq Equivalent[K, Q]) bool {
	b, _ := findEquivalent(m, q, eq)
	return b != nil
}

// DeleteEquivalent is Delete keyed by an equivalent form of the key.
func DeleteEquivalent[K comparable, V any, Q any](m *Map[K, V], q Q, eq Equivalent[K, Q]) (V, bool) {
	b, i := findEquivalent(m, q, eq)
	if b == nil {
		return *new(V), false
	}

	removed := b.swapRemove(i)
	m.count--
	m.generation++

	return removed.value, true
}
