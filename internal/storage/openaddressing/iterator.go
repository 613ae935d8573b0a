package openaddressing

import (
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/internal/model"
)

// Records - Is used to iterate over live records one by one in bucket order, skipping empty buckets and
// tombstones. Bounds are checked against the table's current capacity on every call, so a table mutated while
// iterating yields an unspecified sequence of records but never fails.
type Records struct {
	table    *OATable
	bucketNo int64
}

// newRecords - Returns a pointer to a new Records struct positioned at bucket 0
func newRecords(table *OATable) *Records {
	return &Records{table: table}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	for ; R.bucketNo < R.table.capacity; R.bucketNo++ {
		if R.table.bucketRecord(R.bucketNo).State == model.RecordOccupied {
			return true
		}
	}

	return false
}

// Next - Returns record.
// It returns:
//   - pair is the next live record.
//   - err is an error of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (pair model.Pair, err error) {
	if !R.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	entry := R.table.bucketRecord(R.bucketNo)
	pair = model.Pair{Key: entry.Key, Value: entry.Value}
	R.bucketNo++

	return
}
