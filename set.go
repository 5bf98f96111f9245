package chainmap

import "iter"

// Set is a key-only Map. It grows the same way and carries the same
// iteration restrictions.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.m.init(opts...)

	return &s
}

// Puts a key in the set.
// Returns whether the key is new.
func (s *Set[K]) Put(key K) bool {
	_, replaced := s.m.Insert(key, struct{}{})
	return !replaced
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.m.ContainsKey(key)
}

// Deletes a key from the set, reporting whether it was there.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.m.Delete(key)
	return ok
}

func (s *Set[K]) Len() int {
	return s.m.Len()
}

func (s *Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

func (s *Set[K]) Clear() {
	s.m.Clear()
}

func (s *Set[K]) Stats() Stats {
	return s.m.Stats()
}

func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}
