package primehashmap

import (
	"fmt"
	"strings"

	"github.com/gostonefire/primehashmap/internal/model"
)

// Put - Updates an existing record with new value or adds it if no existing is found with same key.
// The hash map may resize as part of the call to keep its load factor in check.
//   - key is the identifier of a record
//   - value is any value to associate with key
//
// It returns:
//   - err is a standard error, if something went wrong
func (H *HashMap) Put(key string, value any) (err error) {
	return H.storage.Put(key, value)
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is of type crt.NoRecordFound if the key is not in the hash map
func (H *HashMap) Get(key string) (value any, err error) {
	return H.storage.Get(key)
}

// ContainsKey - Returns true if the given key is in the hash map
func (H *HashMap) ContainsKey(key string) bool {
	return H.storage.ContainsKey(key)
}

// Remove - Removes the record with the given key. Removing a key that is not in the hash map does nothing.
func (H *HashMap) Remove(key string) {
	H.storage.Remove(key)
}

// Clear - Removes all records, the capacity is left unchanged
func (H *HashMap) Clear() {
	H.storage.Clear()
}

// Resize - Changes the capacity and rehashes all records. The capacity is rounded up to a prime.
// For QuadraticProbing a newCapacity not above Size is ignored, for SeparateChaining a newCapacity below 1 is.
// The resulting capacity may be larger than requested if the records would not fit below the load factor limit.
func (H *HashMap) Resize(newCapacity int64) {
	H.storage.Resize(newCapacity)
}

// TableLoad - Returns the load factor, Size divided by Capacity
func (H *HashMap) TableLoad() float64 {
	return H.storage.TableLoad()
}

// EmptyBuckets - Returns the number of empty buckets.
// For QuadraticProbing this is Capacity minus Size, so buckets holding tombstones are counted as empty.
func (H *HashMap) EmptyBuckets() int64 {
	return H.storage.EmptyBuckets()
}

// GetKeysAndValues - Returns all records as key/value pairs, the order is not to be relied upon
func (H *HashMap) GetKeysAndValues() []Pair {
	return H.storage.GetKeysAndValues()
}

// Iterator - Returns a new iterator positioned at the first record.
// Mutating the hash map while iterating is allowed but which records the iterator then returns is unspecified.
func (H *HashMap) Iterator() Iterator {
	return H.storage.Iterator()
}

// Size - Returns the number of records
func (H *HashMap) Size() int64 {
	return H.storage.Size()
}

// Capacity - Returns the number of buckets, always a prime
func (H *HashMap) Capacity() int64 {
	return H.storage.Capacity()
}

// CollisionResolutionTechnique - Returns the technique the hash map was created with
func (H *HashMap) CollisionResolutionTechnique() int {
	return H.crtType
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	capacity := H.storage.Capacity()
	hms := HashMapStat{
		Capacity:     capacity,
		EmptyBuckets: H.storage.EmptyBuckets(),
		LoadFactor:   H.storage.TableLoad(),
	}

	if includeDistribution {
		hms.BucketDistribution = make([]int64, capacity)
	}

	var bucket model.Bucket
	for i := int64(0); i < capacity; i++ {
		bucket, err = H.storage.GetBucket(i)
		if err != nil {
			return
		}

		n := int64(len(bucket.Pairs))
		hms.Records += n
		hms.Tombstones += bucket.Tombstones
		if n > hms.MaxBucketRecords {
			hms.MaxBucketRecords = n
		}
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	hashMapStat = &hms
	return
}

// String - Returns one line per bucket with the bucket number followed by its records, tombstones are shown as
// the number of them in the bucket.
func (H *HashMap) String() string {
	var sb strings.Builder

	for i := int64(0); i < H.storage.Capacity(); i++ {
		bucket, err := H.storage.GetBucket(i)
		if err != nil {
			break
		}

		pairs := make([]string, len(bucket.Pairs))
		for j, pair := range bucket.Pairs {
			pairs[j] = fmt.Sprintf("%s: %v", pair.Key, pair.Value)
		}

		fmt.Fprintf(&sb, "%d: [%s]", i, strings.Join(pairs, " -> "))
		if bucket.Tombstones > 0 {
			fmt.Fprintf(&sb, " tombstones: %d", bucket.Tombstones)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
