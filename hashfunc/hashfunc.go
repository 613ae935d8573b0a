package hashfunc

import (
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// HashFunc - Function type that permits an implementation using the hash map to supply its own hash function
// suited for its particular distribution of keys.
// The function must be pure and deterministic for a given key during the lifetime of the hash map, it is not
// required to be stable across processes. The hash map reduces the value modulo its capacity to select a bucket.
type HashFunc func(key string) uint64

// SumOfRunes - Sums the code points of all runes in key.
// Anagrams collide, which makes it a handy function for exercising collision resolution.
func SumOfRunes(key string) uint64 {
	var h uint64
	for _, r := range key {
		h += uint64(r)
	}

	return h
}

// WeightedSum - Sums the code points of all runes in key, each weighted by its 1-based position
func WeightedSum(key string) uint64 {
	var h, i uint64
	for _, r := range key {
		i++
		h += i * uint64(r)
	}

	return h
}

// CRC32 - Hashes key using crc32.ChecksumIEEE
func CRC32(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// XXHash - Hashes key using 64-bit xxHash
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// NewSipHash - Returns a HashFunc computing SipHash-2-4 keyed by k0 and k1.
// Different keys give unrelated bucket distributions for the same set of map keys.
func NewSipHash(k0, k1 uint64) HashFunc {
	return func(key string) uint64 {
		return siphash.Hash(k0, k1, []byte(key))
	}
}

// ByName - Returns one of the hash functions in this package given its name.
// Accepted names are "sum", "weighted", "crc32", "xxhash" and "siphash" (keyed with zero keys).
// The second return value is false if the name is unknown.
func ByName(name string) (hashFunc HashFunc, ok bool) {
	ok = true
	switch name {
	case "sum":
		hashFunc = SumOfRunes
	case "weighted":
		hashFunc = WeightedSum
	case "crc32":
		hashFunc = CRC32
	case "xxhash":
		hashFunc = XXHash
	case "siphash":
		hashFunc = NewSipHash(0, 0)
	default:
		ok = false
	}

	return
}
