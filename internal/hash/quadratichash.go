package hash

import "github.com/gostonefire/primehashmap/hashfunc"

// QuadraticProbingHashAlgorithm - The bucket selection algorithm for the open addressing table. The home slot is
// hash(key) mod tableSize and collisions are resolved by visiting (home + i*i) mod tableSize for i = 1, 2, 3...
// With a prime table size the first (tableSize + 1) / 2 probes are all distinct, which together with a load factor
// kept below 0.5 guarantees that an empty bucket is found.
type QuadraticProbingHashAlgorithm struct {
	hashFunc  hashfunc.HashFunc
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm(hashFunc hashfunc.HashFunc, tableSize int64) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{hashFunc: hashFunc}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = tableSize
}

// GetTableSize - Returns the table size the algorithm is addressing
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// HomeSlot - Given key it generates an index (bucket) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HomeSlot(key string) int64 {
	return reduce(Q.hashFunc, key, Q.tableSize)
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(homeSlot, iteration int64) int64 {
	// Reduce before squaring to keep the multiplication far away from overflow
	i := iteration % Q.tableSize
	return (homeSlot + i*i) % Q.tableSize
}
