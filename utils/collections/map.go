package collections

import "iter"

// Map is a key/value container with in-place update semantics.
type Map[K any, V any] interface {
	Insert(k K, v V)
	Lookup(k K) (V, bool)
	Contains(k K) bool
	Count() int
	Traverse() iter.Seq2[K, V]
	Keys() []K
	Values() []V
}
