package separatechaining

import (
	"fmt"

	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/dynarray"
	"github.com/gostonefire/primehashmap/internal/hash"
	"github.com/gostonefire/primehashmap/internal/linkedlist"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/prime"
	"go.uber.org/zap"
)

// maxLoadFactor - A put leaving the table at or above this load factor resizes it
const maxLoadFactor float64 = 1.0

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket holds a singly linked list of the records whose keys hash to it, a chain never holds two records
// with the same key.
type SCTable struct {
	buckets       *dynarray.Array[*linkedlist.List]
	hashFunc      hashfunc.HashFunc
	hashAlgorithm hash.Algorithm
	capacity      int64
	size          int64
	logger        *zap.Logger
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining table.
// The capacity is rounded up to the nearest odd prime.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(crtConf model.CRTConf) (scTable *SCTable, err error) {
	if crtConf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}
	if crtConf.HashFunc == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}

	logger := crtConf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scTable = newSCTable(prime.NextPrime(crtConf.Capacity), crtConf.HashFunc, logger)

	scTable.logger.Debug("created hash table",
		zap.String("crt", crt.Name(crt.SeparateChaining)),
		zap.Int64("capacity", scTable.capacity))

	return
}

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// After the record is in place the table is resized to double its capacity if the load factor has reached 1.0.
//
// It returns:
//   - err is always nil, it is there to satisfy the same contract as open addressing
func (S *SCTable) Put(key string, value any) (err error) {
	chain := S.chain(S.hashAlgorithm.HomeSlot(key))

	if chain.Length() == 0 {
		chain.Insert(key, value)
		S.size++
	} else if chain.Contains(key) != nil {
		chain.Remove(key)
		chain.Insert(key, value)
	} else {
		chain.Insert(key, value)
		S.size++
	}

	if S.TableLoad() >= maxLoadFactor {
		S.Resize(2 * S.capacity)
	}

	return
}

// Get - Gets the value that corresponds to the given key, searching only the chain of the key's bucket.
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound if there is no record with the key
func (S *SCTable) Get(key string) (value any, err error) {
	node := S.chain(S.hashAlgorithm.HomeSlot(key)).Contains(key)
	if node == nil {
		err = crt.NoRecordFound{}
		return
	}

	value = node.Value

	return
}

// ContainsKey - Returns true if any chain holds a record with the given key
func (S *SCTable) ContainsKey(key string) bool {
	_, found := S.scanForKey(key)
	return found
}

// Remove - Removes the record with the given key. Removing a key that is not present does nothing.
func (S *SCTable) Remove(key string) {
	bucketNo, found := S.scanForKey(key)
	if !found {
		return
	}

	if S.chain(bucketNo).Remove(key) {
		S.size--
	}
}

// Clear - Removes all records, keeping the capacity
func (S *SCTable) Clear() {
	S.buckets = newBuckets(S.capacity)
	S.size = 0

	S.logger.Debug("cleared hash table", zap.Int64("capacity", S.capacity))
}

// Resize - Changes the capacity of the table and rehashes all records into the new bucket array.
// A newCapacity below 1 is ignored, any other value is rounded up to a prime (2 is kept as 2).
// Records are replayed through Put of a table with the new capacity, so the resulting capacity can be larger than
// requested if the records do not fit below load factor 1.0.
func (S *SCTable) Resize(newCapacity int64) {
	if newCapacity < 1 {
		return
	}

	fromCapacity := S.capacity
	newTable := newSCTable(prime.Capacity(newCapacity), S.hashFunc, S.logger)

	for i := int64(0); i < S.capacity; i++ {
		iter := S.chain(i).Iterator()
		for iter.HasNext() {
			node, _ := iter.Next()
			_ = newTable.Put(node.Key, node.Value)
		}
	}

	S.buckets = newTable.buckets
	S.hashAlgorithm.SetTableSize(newTable.capacity)
	S.capacity = newTable.capacity
	S.size = newTable.size

	S.logger.Debug("resized hash table",
		zap.String("crt", crt.Name(crt.SeparateChaining)),
		zap.Int64("fromCapacity", fromCapacity),
		zap.Int64("requestedCapacity", newCapacity),
		zap.Int64("toCapacity", S.capacity),
		zap.Int64("size", S.size))
}

// TableLoad - Returns the load factor, the average number of records per bucket
func (S *SCTable) TableLoad() float64 {
	return float64(S.size) / float64(S.capacity)
}

// EmptyBuckets - Returns the number of buckets with an empty chain
func (S *SCTable) EmptyBuckets() (n int64) {
	for i := int64(0); i < S.capacity; i++ {
		if S.chain(i).Length() == 0 {
			n++
		}
	}

	return
}

// GetKeysAndValues - Returns all records as key/value pairs, chain by chain in bucket order
func (S *SCTable) GetKeysAndValues() (pairs []model.Pair) {
	pairs = make([]model.Pair, 0, S.size)
	for i := int64(0); i < S.capacity; i++ {
		pairs = appendChain(pairs, S.chain(i))
	}

	return
}

// Iterator - Returns a new iterator over all records positioned at bucket 0
func (S *SCTable) Iterator() model.Iterator {
	return newRecords(S)
}

// GetBucket - Returns the contents of a bucket given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and capacity - 1
//
// It returns:
//   - bucket is a model.Bucket struct with the records of the bucket's chain
//   - err is of type crt.IndexOutOfRange if bucketNo is outside the table
func (S *SCTable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	chain, err := S.buckets.GetAtIndex(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket chain: %w", err)
		return
	}

	bucket.BucketNo = bucketNo
	bucket.Pairs = appendChain(nil, chain)

	return
}

// Size - Returns the number of records
func (S *SCTable) Size() int64 {
	return S.size
}

// Capacity - Returns the number of buckets
func (S *SCTable) Capacity() int64 {
	return S.capacity
}
