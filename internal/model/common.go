package model

// RecordEmpty - State indicating a bucket that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a bucket that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a bucket that has been in use but was removed (tombstone)
const RecordDeleted uint8 = 2

// Entry - Represents one record in an open addressing bucket
type Entry struct {
	State uint8
	Key   string
	Value any
}

// Pair - A key and its value as handed out to users of the hash map
type Pair struct {
	Key   string
	Value any
}

// Bucket - Represents the contents of one bucket, regardless of collision resolution technique.
//   - Pairs holds the live records, at most one for open addressing
//   - Tombstones is the number of removed records still occupying the bucket (open addressing only)
type Bucket struct {
	BucketNo   int64
	Pairs      []Pair
	Tombstones int64
}

// Iterator - Is used to iterate over live records one by one.
type Iterator interface {
	// HasNext - Returns true if there are more records to be fetched from a call to Next.
	HasNext() bool
	// Next - Returns next record, or an error of type crt.NoRecordFound if there are no more records.
	Next() (pair Pair, err error)
}

// Storage - Interface for any collision resolution technique implementation
type Storage interface {
	Put(key string, value any) (err error)
	Get(key string) (value any, err error)
	ContainsKey(key string) bool
	Remove(key string)
	Clear()
	Resize(newCapacity int64)
	TableLoad() float64
	EmptyBuckets() int64
	GetKeysAndValues() []Pair
	Iterator() Iterator
	GetBucket(bucketNo int64) (bucket Bucket, err error)
	Size() int64
	Capacity() int64
}
