package openaddressing

import (
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/dynarray"
	"github.com/gostonefire/primehashmap/internal/hash"
	"github.com/gostonefire/primehashmap/internal/model"
	"go.uber.org/zap"
)

// newOATable - Returns an empty table with exactly capacity buckets
func newOATable(capacity int64, hashFunc hashfunc.HashFunc, logger *zap.Logger) *OATable {
	return &OATable{
		buckets:       newBuckets(capacity),
		hashFunc:      hashFunc,
		hashAlgorithm: hash.NewQuadraticProbingHashAlgorithm(hashFunc, capacity),
		capacity:      capacity,
		size:          0,
		logger:        logger,
	}
}

// newBuckets - Returns a bucket array of capacity empty buckets
func newBuckets(capacity int64) *dynarray.Array[model.Entry] {
	return dynarray.NewFilled(capacity, func() model.Entry { return model.Entry{State: model.RecordEmpty} })
}

// bucketRecord - Returns the record in a bucket, bucketNo must be between 0 and capacity - 1
func (Q *OATable) bucketRecord(bucketNo int64) model.Entry {
	entry, _ := Q.buckets.GetAtIndex(bucketNo)
	return entry
}

// scanForKey - Scans all buckets in order for a live record with key
func (Q *OATable) scanForKey(key string) (bucketNo int64, found bool) {
	for bucketNo = 0; bucketNo < Q.capacity; bucketNo++ {
		entry := Q.bucketRecord(bucketNo)
		if entry.State == model.RecordOccupied && entry.Key == key {
			found = true
			return
		}
	}

	return
}

// probing - Follows the probe sequence for key until it finds either an empty bucket or a bucket with the same key,
// live or tombstone. Tombstones of other keys are passed over.
// It returns an error of type crt.ProbingAlgorithm if capacity probes found neither.
func (Q *OATable) probing(key string) (bucketNo int64, entry model.Entry, err error) {
	homeSlot := Q.hashAlgorithm.HomeSlot(key)

	for i := int64(0); i < Q.capacity; i++ {
		bucketNo = Q.hashAlgorithm.ProbeIteration(homeSlot, i)
		entry = Q.bucketRecord(bucketNo)
		if entry.State == model.RecordEmpty || entry.Key == key {
			return
		}
	}

	err = crt.ProbingAlgorithm{}

	return
}
