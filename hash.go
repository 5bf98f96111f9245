package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// Hashable is implemented by key types that know how to hash themselves.
// Keys that are == must return the same hash.
type Hashable interface {
	Hash() uint64
}

// MakeDefaultHashFunc returns the key's own Hash method when K implements
// Hashable, and a seeded maphash.Comparable otherwise.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	var zero K
	if _, ok := any(zero).(Hashable); ok {
		return func(k K) uint64 {
			return any(k).(Hashable).Hash()
		}
	}

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHash hashes string keys with xxhash.
// It agrees with BytesHash on the same bytes.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}
