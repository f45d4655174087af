package hashtable

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// HashFunc maps a key to a non-negative hash value. Implementations must be
// deterministic: the same key always yields the same value. Distinct keys are
// allowed to collide; the table resolves collisions by chaining.
type HashFunc func(key string) uint64

// PositionHash sums (codepoint + position)^2 over the key's runes. Summing
// raw codepoints alone sends anagrams to the same value; folding the position
// in before squaring breaks that symmetry. Not collision-resistant.
func PositionHash(key string) uint64 {
	var sum uint64
	var pos uint64
	for _, r := range key {
		d := uint64(r) + pos
		sum += d * d
		pos++
	}
	return sum
}

// XXHash hashes the key with xxHash64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXH3 hashes the key with XXH3-64.
func XXH3(key string) uint64 {
	return xxh3.HashString(key)
}
