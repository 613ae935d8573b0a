package separatechaining

import (
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/dynarray"
	"github.com/gostonefire/primehashmap/internal/hash"
	"github.com/gostonefire/primehashmap/internal/linkedlist"
	"github.com/gostonefire/primehashmap/internal/model"
	"go.uber.org/zap"
)

// newSCTable - Returns an empty table with exactly capacity buckets
func newSCTable(capacity int64, hashFunc hashfunc.HashFunc, logger *zap.Logger) *SCTable {
	return &SCTable{
		buckets:       newBuckets(capacity),
		hashFunc:      hashFunc,
		hashAlgorithm: hash.NewSeparateChainingHashAlgorithm(hashFunc, capacity),
		capacity:      capacity,
		size:          0,
		logger:        logger,
	}
}

// newBuckets - Returns a bucket array of capacity empty chains
func newBuckets(capacity int64) *dynarray.Array[*linkedlist.List] {
	return dynarray.NewFilled(capacity, linkedlist.New)
}

// chain - Returns the chain of a bucket, bucketNo must be between 0 and capacity - 1
func (S *SCTable) chain(bucketNo int64) *linkedlist.List {
	chain, _ := S.buckets.GetAtIndex(bucketNo)
	return chain
}

// scanForKey - Scans all chains in bucket order for a record with key
func (S *SCTable) scanForKey(key string) (bucketNo int64, found bool) {
	for bucketNo = 0; bucketNo < S.capacity; bucketNo++ {
		chain := S.chain(bucketNo)
		if chain.Length() > 0 && chain.Contains(key) != nil {
			found = true
			return
		}
	}

	return
}

// appendChain - Appends all records of chain to pairs
func appendChain(pairs []model.Pair, chain *linkedlist.List) []model.Pair {
	iter := chain.Iterator()
	for iter.HasNext() {
		node, _ := iter.Next()
		pairs = append(pairs, model.Pair{Key: node.Key, Value: node.Value})
	}

	return pairs
}
