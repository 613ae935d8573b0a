package separatechaining

import (
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/internal/linkedlist"
	"github.com/gostonefire/primehashmap/internal/model"
)

// Records - Is used to iterate over records one by one, chain by chain in bucket order.
// Bounds are checked against the table's current capacity, so a table mutated while iterating yields an
// unspecified sequence of records but never fails.
type Records struct {
	table    *SCTable
	bucketNo int64
	chain    *linkedlist.Records
}

// newRecords - Returns a pointer to a new Records struct positioned at bucket 0
func newRecords(table *SCTable) *Records {
	return &Records{table: table}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	for R.chain == nil || !R.chain.HasNext() {
		if R.bucketNo >= R.table.capacity {
			return false
		}
		R.chain = R.table.chain(R.bucketNo).Iterator()
		R.bucketNo++
	}

	return true
}

// Next - Returns record.
// It returns:
//   - pair is the next record.
//   - err is an error of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (pair model.Pair, err error) {
	if !R.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	node, err := R.chain.Next()
	if err != nil {
		return
	}
	pair = model.Pair{Key: node.Key, Value: node.Value}

	return
}
