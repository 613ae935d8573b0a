package primehashmap

import (
	"fmt"

	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/storage/openaddressing"
	"github.com/gostonefire/primehashmap/internal/storage/separatechaining"
	"go.uber.org/zap"
)

var (
	_ model.Storage = (*openaddressing.OATable)(nil)
	_ model.Storage = (*separatechaining.SCTable)(nil)
)

// Pair - A key and its value, as returned by GetKeysAndValues and iterators
type Pair = model.Pair

// Iterator - Iterates over the live records of a hash map, use HasNext and Next
type Iterator = model.Iterator

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of live records stored
//   - Capacity is the number of buckets
//   - EmptyBuckets is as reported by EmptyBuckets, for QuadraticProbing buckets with tombstones count as empty
//   - Tombstones is the number of removed records still occupying buckets (always 0 for SeparateChaining)
//   - LoadFactor is Records divided by Capacity
//   - MaxBucketRecords is the highest number of live records found in one bucket
//   - BucketDistribution is the number of live records stored in each bucket
type HashMapStat struct {
	Records            int64
	Capacity           int64
	EmptyBuckets       int64
	Tombstones         int64
	LoadFactor         float64
	MaxBucketRecords   int64
	BucketDistribution []int64
}

// HashMap - The main implementation struct
type HashMap struct {
	storage  model.Storage
	crtType  int
	hashFunc hashfunc.HashFunc
	logger   *zap.Logger
}

// Option - Optional configuration given to NewHashMap
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger - Sets the logger receiving debug events such as resizes. Without it nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewHashMap - Returns a new and empty hash map.
//   - crtType is the collision resolution technique to use, crt.QuadraticProbing or crt.SeparateChaining
//   - capacity is the requested initial number of buckets, it is rounded up to the nearest odd prime
//   - hashFunc is the hash function used to select buckets, see package hashfunc for ready-made ones
//   - opts are optional settings such as WithLogger
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap(crtType int, capacity int64, hashFunc hashfunc.HashFunc, opts ...Option) (hashMap *HashMap, err error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if hash function is given
	if hashFunc == nil {
		err = fmt.Errorf("hash function can not be nil")
		return
	}

	crtConf := model.CRTConf{
		Capacity: capacity,
		HashFunc: hashFunc,
		Logger:   o.logger,
	}

	var storage model.Storage
	switch crtType {
	case crt.QuadraticProbing:
		storage, err = openaddressing.NewOATable(crtConf)
	case crt.SeparateChaining:
		storage, err = separatechaining.NewSCTable(crtConf)
	default:
		err = fmt.Errorf("unknown collision resolution technique %d", crtType)
	}
	if err != nil {
		return
	}

	hashMap = &HashMap{
		storage:  storage,
		crtType:  crtType,
		hashFunc: hashFunc,
		logger:   o.logger,
	}

	return
}

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the new hash map.
// Zero values mean "same as the hash map being reorganized".
//   - CollisionResolutionTechnique is the technique to use
//   - Capacity is the requested initial number of buckets
//   - HashFunc is the hash function to use
type ReorgConf struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	HashFunc                     hashfunc.HashFunc
}

// Reorg - Returns a new hash map holding all records of this one, built according to reorgConf. It is used when
// the hash map needs to reflect new conditions as compared to when it was first created, for instance a hash
// function that spreads the actual keys better, or a different collision resolution technique.
// The receiver is left untouched.
func (H *HashMap) Reorg(reorgConf ReorgConf) (hashMap *HashMap, err error) {
	crtType := H.crtType
	if reorgConf.CollisionResolutionTechnique != 0 {
		crtType = reorgConf.CollisionResolutionTechnique
	}
	capacity := H.storage.Capacity()
	if reorgConf.Capacity > 0 {
		capacity = reorgConf.Capacity
	}
	hashFunc := H.hashFunc
	if reorgConf.HashFunc != nil {
		hashFunc = reorgConf.HashFunc
	}

	hashMap, err = NewHashMap(crtType, capacity, hashFunc, WithLogger(H.logger))
	if err != nil {
		return
	}

	iter := H.Iterator()
	for iter.HasNext() {
		var pair Pair
		pair, err = iter.Next()
		if err != nil {
			return
		}
		err = hashMap.Put(pair.Key, pair.Value)
		if err != nil {
			err = fmt.Errorf("error while copying record to reorganized hash map: %w", err)
			return
		}
	}

	H.logger.Debug("reorganized hash map",
		zap.String("fromCrt", crt.Name(H.crtType)),
		zap.String("toCrt", crt.Name(crtType)),
		zap.Int64("records", hashMap.Size()),
		zap.Int64("capacity", hashMap.Capacity()))

	return
}
