package hash

import "github.com/gostonefire/primehashmap/hashfunc"

// Algorithm - Bucket selection used by the storage implementations. It combines a caller supplied hash function
// with the current table size.
type Algorithm interface {
	// SetTableSize - Sets the table size the algorithm addresses. It is called on creation and when a resized
	// bucket array is swapped in, the table size is expected to already be a prime number.
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the algorithm currently addresses
	GetTableSize() int64

	// HomeSlot - Given key it generates an index (bucket) between 0 and table size - 1
	HomeSlot(key string) int64

	// ProbeIteration - Returns the bucket to visit in iteration given the home slot from HomeSlot.
	// Iteration 0 is always the home slot itself.
	ProbeIteration(homeSlot, iteration int64) int64
}

// reduce - Reduces a hash value to a bucket number in range 0 to tableSize - 1
func reduce(hashFunc hashfunc.HashFunc, key string, tableSize int64) int64 {
	return int64(hashFunc(key) % uint64(tableSize))
}
