package openaddressing

import (
	"errors"
	"fmt"

	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/dynarray"
	"github.com/gostonefire/primehashmap/internal/hash"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/prime"
	"go.uber.org/zap"
)

// maxLoadFactor - Inserting a new key never leaves the table at or above this load factor
const maxLoadFactor float64 = 0.5

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique using
// Quadratic Probing. Each bucket holds at most one record. In case of a collision, it probes through the table
// until it finds an empty bucket or a bucket holding the same key.
// Removed records are left in place as tombstones so that probe sequences passing them stay intact, they are only
// reclaimed by a later insert of the same key or dropped by a resize.
type OATable struct {
	buckets       *dynarray.Array[model.Entry]
	hashFunc      hashfunc.HashFunc
	hashAlgorithm hash.Algorithm
	capacity      int64
	size          int64
	logger        *zap.Logger
}

// NewOATable - Returns a pointer to a new instance of the Open Addressing table.
// The capacity is rounded up to the nearest odd prime.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
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

	oaTable = newOATable(prime.NextPrime(crtConf.Capacity), crtConf.HashFunc, logger)

	oaTable.logger.Debug("created hash table",
		zap.String("crt", crt.Name(crt.QuadraticProbing)),
		zap.Int64("capacity", oaTable.capacity))

	return
}

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// If inserting a new key would bring the load factor to 0.5 or above, the table is first resized to double its
// capacity.
//
// It returns:
//   - err is an error of type crt.ProbingAlgorithm if no bucket could be found, which the load factor rules out
func (Q *OATable) Put(key string, value any) (err error) {
	bucketNo, entry, err := Q.probingForPut(key)
	if err != nil {
		return
	}

	if entry.State != model.RecordOccupied && float64(Q.size+1)/float64(Q.capacity) >= maxLoadFactor {
		Q.Resize(2 * Q.capacity)
		bucketNo, entry, err = Q.probingForPut(key)
		if err != nil {
			return
		}
	}

	fromState := entry.State
	entry.State = model.RecordOccupied
	entry.Key = key
	entry.Value = value

	err = Q.buckets.SetAtIndex(bucketNo, entry)
	if err != nil {
		err = fmt.Errorf("error while updating or adding record to bucket: %w", err)
		return
	}

	if fromState != model.RecordOccupied {
		Q.size++
	}

	return
}

// Get - Gets the value that corresponds to the given key.
// Every bucket is scanned, the probe sequence is not followed.
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type crt.NoRecordFound if there is no live record with the key
func (Q *OATable) Get(key string) (value any, err error) {
	bucketNo, found := Q.scanForKey(key)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	value = Q.bucketRecord(bucketNo).Value

	return
}

// ContainsKey - Returns true if there is a live record with the given key
func (Q *OATable) ContainsKey(key string) bool {
	_, found := Q.scanForKey(key)
	return found
}

// Remove - Marks the record with the given key as a tombstone. Removing a key that is not present, or already
// removed, does nothing.
func (Q *OATable) Remove(key string) {
	bucketNo, found := Q.scanForKey(key)
	if !found {
		return
	}

	entry := Q.bucketRecord(bucketNo)
	entry.State = model.RecordDeleted
	entry.Value = nil
	_ = Q.buckets.SetAtIndex(bucketNo, entry)
	Q.size--
}

// Clear - Removes all records, including tombstones, keeping the capacity
func (Q *OATable) Clear() {
	Q.buckets = newBuckets(Q.capacity)
	Q.size = 0

	Q.logger.Debug("cleared hash table", zap.Int64("capacity", Q.capacity))
}

// Resize - Changes the capacity of the table and rehashes all live records into the new bucket array.
// Tombstones are dropped. A newCapacity not above the current number of records is ignored, any other value is
// rounded up to a prime (2 is kept as 2).
// Records are replayed through Put of a table with the new capacity, so if newCapacity leaves too little room the
// replay grows the table further and the resulting capacity is larger than requested. Resize(2) on a table holding
// a record therefore ends at 5, since one record in two buckets already reaches the 0.5 load factor limit.
func (Q *OATable) Resize(newCapacity int64) {
	if newCapacity <= Q.size {
		return
	}

	fromCapacity := Q.capacity
	newTable := newOATable(prime.Capacity(newCapacity), Q.hashFunc, Q.logger)

	for i := int64(0); i < Q.capacity; i++ {
		entry := Q.bucketRecord(i)
		if entry.State == model.RecordOccupied {
			// A fresh table has no tombstones and the load factor rule keeps an empty bucket available
			_ = newTable.Put(entry.Key, entry.Value)
		}
	}

	Q.buckets = newTable.buckets
	Q.hashAlgorithm.SetTableSize(newTable.capacity)
	Q.capacity = newTable.capacity
	Q.size = newTable.size

	Q.logger.Debug("resized hash table",
		zap.String("crt", crt.Name(crt.QuadraticProbing)),
		zap.Int64("fromCapacity", fromCapacity),
		zap.Int64("requestedCapacity", newCapacity),
		zap.Int64("toCapacity", Q.capacity),
		zap.Int64("size", Q.size))
}

// TableLoad - Returns the load factor, number of live records divided by capacity
func (Q *OATable) TableLoad() float64 {
	return float64(Q.size) / float64(Q.capacity)
}

// EmptyBuckets - Returns capacity minus number of live records.
// Buckets holding a tombstone are counted as empty.
func (Q *OATable) EmptyBuckets() int64 {
	return Q.capacity - Q.size
}

// GetKeysAndValues - Returns all live records as key/value pairs in bucket order
func (Q *OATable) GetKeysAndValues() (pairs []model.Pair) {
	pairs = make([]model.Pair, 0, Q.size)
	for i := int64(0); i < Q.capacity; i++ {
		entry := Q.bucketRecord(i)
		if entry.State == model.RecordOccupied {
			pairs = append(pairs, model.Pair{Key: entry.Key, Value: entry.Value})
		}
	}

	return
}

// Iterator - Returns a new iterator over live records positioned at bucket 0
func (Q *OATable) Iterator() model.Iterator {
	return newRecords(Q)
}

// GetBucket - Returns the contents of a bucket given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and capacity - 1
//
// It returns:
//   - bucket is a model.Bucket struct with the live record if any, and whether the bucket holds a tombstone
//   - err is of type crt.IndexOutOfRange if bucketNo is outside the table
func (Q *OATable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	entry, err := Q.buckets.GetAtIndex(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket record: %w", err)
		return
	}

	bucket.BucketNo = bucketNo
	switch entry.State {
	case model.RecordOccupied:
		bucket.Pairs = []model.Pair{{Key: entry.Key, Value: entry.Value}}
	case model.RecordDeleted:
		bucket.Tombstones = 1
	}

	return
}

// Size - Returns the number of live records
func (Q *OATable) Size() int64 {
	return Q.size
}

// Capacity - Returns the number of buckets
func (Q *OATable) Capacity() int64 {
	return Q.capacity
}

// probingForPut - Finds the bucket to write key to, rebuilding the table in place once if tombstones have
// filled up the probe sequence.
func (Q *OATable) probingForPut(key string) (bucketNo int64, entry model.Entry, err error) {
	bucketNo, entry, err = Q.probing(key)
	if errors.Is(err, crt.ProbingAlgorithm{}) {
		Q.logger.Warn("probe sequence exhausted, rebuilding to drop tombstones",
			zap.String("key", key),
			zap.Int64("capacity", Q.capacity),
			zap.Int64("size", Q.size))
		Q.Resize(Q.capacity)
		bucketNo, entry, err = Q.probing(key)
	}

	return
}
