package model

import (
	"github.com/gostonefire/primehashmap/hashfunc"
	"go.uber.org/zap"
)

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation and processing.
//   - Capacity is the requested number of buckets, the actual number is rounded up to a prime
//   - HashFunc is the hash function to use
//   - Logger receives debug events such as resizes, nil means no logging
type CRTConf struct {
	Capacity int64
	HashFunc hashfunc.HashFunc
	Logger   *zap.Logger
}
