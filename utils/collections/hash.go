package collections

import (
	"hash/fnv"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to a signed hash value. Negative results are allowed.
//
// Keys must stay immutable while they are stored in a table: if the hash of a
// stored key changes, its entry becomes unreachable by Lookup and Insert
// without being removed.
type HashFunc[K any] func(K) int

// StringHash is the 32-bit FNV-1a hash of s, read as a signed int32.
func StringHash(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(int32(h.Sum32()))
}

func IntegerHash[T constraints.Integer](v T) int {
	return int(v)
}

// ComparableHash returns a seeded hash function for any comparable key type.
func ComparableHash[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(k K) int {
		return int(maphash.Comparable(seed, k))
	}
}
