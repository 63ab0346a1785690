package collections

type hashSet[V comparable] struct {
	entries *HashTable[V, struct{}]
}

func NewHashSet[V comparable](f HashFunc[V], opts ...HashTableOption) Set[V] {
	return &hashSet[V]{
		entries: NewHashTable[V, struct{}](f, opts...),
	}
}

func (s *hashSet[V]) Contains(v V) bool {
	return s.entries.Contains(v)
}

func (s *hashSet[V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries.Insert(v, struct{}{})
	return nil
}

func (s *hashSet[V]) Size() int {
	return s.entries.Count()
}

func (s *hashSet[V]) Entries() []V {
	return s.entries.Keys()
}
