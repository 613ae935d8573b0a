package hash

import "github.com/gostonefire/primehashmap/hashfunc"

// SeparateChainingHashAlgorithm - The bucket selection algorithm for the separate chaining table, bucket is
// hash(key) mod tableSize. Collisions are kept in the bucket's chain so there is no probing.
type SeparateChainingHashAlgorithm struct {
	hashFunc  hashfunc.HashFunc
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(hashFunc hashfunc.HashFunc, tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{hashFunc: hashFunc}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// GetTableSize - Returns the table size the algorithm is addressing
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// HomeSlot - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) HomeSlot(key string) int64 {
	return reduce(S.hashFunc, key, S.tableSize)
}

// ProbeIteration - Not used in separate chaining, always returns the home slot
func (S *SeparateChainingHashAlgorithm) ProbeIteration(homeSlot, iteration int64) int64 {
	return homeSlot
}
