//go:build unit

package separatechaining

import (
	"errors"
	"strconv"
	"testing"

	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/model"
	"github.com/gostonefire/primehashmap/internal/prime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, capacity int64, hashFunc hashfunc.HashFunc) *SCTable {
	scTable, err := NewSCTable(model.CRTConf{Capacity: capacity, HashFunc: hashFunc})
	require.NoError(t, err, "create new SCTable instance")
	return scTable
}

func bucketKeys(t *testing.T, scTable *SCTable, bucketNo int64) (keys []string) {
	bucket, err := scTable.GetBucket(bucketNo)
	require.NoError(t, err, "get bucket")
	for _, pair := range bucket.Pairs {
		keys = append(keys, pair.Key)
	}
	return
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a new SCTable instance", func(t *testing.T) {
		// Execute
		scTable, err := NewSCTable(model.CRTConf{Capacity: 10, HashFunc: hashfunc.SumOfRunes})

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.Equal(t, int64(11), scTable.Capacity(), "capacity rounded up to prime")
		assert.Equal(t, int64(11), scTable.buckets.Length(), "bucket array has capacity buckets")
		assert.Equal(t, int64(11), scTable.EmptyBuckets(), "all chains empty")
		assert.Equal(t, int64(0), scTable.Size(), "table is empty")
	})

	t.Run("fails on invalid arguments", func(t *testing.T) {
		_, err := NewSCTable(model.CRTConf{Capacity: 0, HashFunc: hashfunc.SumOfRunes})
		assert.Error(t, err, "zero capacity")

		_, err = NewSCTable(model.CRTConf{Capacity: 11})
		assert.Error(t, err, "nil hash function")
	})
}

func TestSCTable_Put(t *testing.T) {
	t.Run("chains colliding keys", func(t *testing.T) {
		// Prepare
		// Anagrams share bucket (97+98) % 11 = 8
		scTable := newTestTable(t, 11, hashfunc.SumOfRunes)

		// Execute
		_ = scTable.Put("ab", 1)
		_ = scTable.Put("ba", 2)

		// Check
		assert.Equal(t, []string{"ba", "ab"}, bucketKeys(t, scTable, 8), "both records in same chain")
		assert.Equal(t, int64(2), scTable.Size(), "size incremented per new key")
		assert.Equal(t, int64(10), scTable.EmptyBuckets(), "one bucket in use")
	})

	t.Run("updates an existing record in its chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 11, hashfunc.SumOfRunes)
		_ = scTable.Put("ab", 1)
		_ = scTable.Put("ba", 2)

		// Execute
		err := scTable.Put("ab", 3)

		// Check
		assert.NoError(t, err, "update record")
		assert.Equal(t, []string{"ab", "ba"}, bucketKeys(t, scTable, 8), "updated record reinserted, no duplicate")
		value, _ := scTable.Get("ab")
		assert.Equal(t, 3, value, "value updated")
		assert.Equal(t, int64(2), scTable.Size(), "size unchanged on update")
	})

	t.Run("resizes after insertion when load reaches 1.0", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 3, hashfunc.SumOfRunes)
		_ = scTable.Put("a", 1)
		_ = scTable.Put("b", 2)
		assert.Equal(t, int64(3), scTable.Capacity(), "no resize below load 1.0")

		// Execute
		_ = scTable.Put("c", 3)

		// Check
		assert.Equal(t, int64(7), scTable.Capacity(), "doubled and rounded up to prime")
		assert.Equal(t, int64(3), scTable.Size(), "all records kept")
	})

	t.Run("keeps load factor below 1.0", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 53, hashfunc.SumOfRunes)

		for i := 0; i < 150; i++ {
			// Execute
			_ = scTable.Put("key"+strconv.Itoa(i), i*100)

			// Check
			assert.Lessf(t, scTable.TableLoad(), 1.0, "load factor below 1.0 after put #%d", i)
			assert.Truef(t, prime.IsPrime(scTable.Capacity()), "capacity prime after put #%d", i)
		}

		for i := 0; i < 150; i++ {
			value, err := scTable.Get("key" + strconv.Itoa(i))
			assert.NoError(t, err, "get record")
			assert.Equal(t, i*100, value, "value preserved through resizes")
		}
	})

	t.Run("duplicate keys do not grow size", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 41, hashfunc.WeightedSum)

		// Execute
		for i := 0; i < 50; i++ {
			_ = scTable.Put("str"+strconv.Itoa(i/3), i*100)
		}

		// Check
		assert.Equal(t, int64(17), scTable.Size(), "distinct keys counted")
		assert.Len(t, scTable.GetKeysAndValues(), 17, "one pair per key")
	})
}

func TestSCTable_Get(t *testing.T) {
	t.Run("gets records and reports absent keys", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31, hashfunc.SumOfRunes)
		_ = scTable.Put("key1", 10)

		// Execute
		value, err := scTable.Get("key1")
		_, errAbsent := scTable.Get("key2")

		// Check
		assert.NoError(t, err, "get record")
		assert.Equal(t, 10, value, "correct value")
		assert.True(t, errors.Is(errAbsent, crt.NoRecordFound{}), "no record found")
	})
}

func TestSCTable_ContainsKey(t *testing.T) {
	t.Run("finds inserted keys only", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 79, hashfunc.WeightedSum)
		for key := 1; key < 1000; key += 20 {
			_ = scTable.Put(strconv.Itoa(key), key*42)
		}

		// Execute and Check
		for key := 1; key < 1000; key += 20 {
			assert.Truef(t, scTable.ContainsKey(strconv.Itoa(key)), "contains %d", key)
			assert.Falsef(t, scTable.ContainsKey(strconv.Itoa(key+1)), "does not contain %d", key+1)
		}
	})
}

func TestSCTable_Remove(t *testing.T) {
	t.Run("removes a record once", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 53, hashfunc.SumOfRunes)
		_ = scTable.Put("key1", 10)
		_ = scTable.Put("key2", 20)

		// Execute
		scTable.Remove("key1")
		scTable.Remove("key1")
		scTable.Remove("key4")

		// Check
		assert.Equal(t, int64(1), scTable.Size(), "size decremented once")
		assert.False(t, scTable.ContainsKey("key1"), "key removed")
		assert.True(t, scTable.ContainsKey("key2"), "other key kept")
	})

	t.Run("leaves remaining records", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 10, hashfunc.SumOfRunes)
		for i := 0; i < 5; i++ {
			_ = scTable.Put(strconv.Itoa(i), strconv.Itoa(i*24))
		}

		// Execute
		scTable.Remove("0")
		scTable.Remove("4")

		// Check
		want := []model.Pair{{Key: "1", Value: "24"}, {Key: "2", Value: "48"}, {Key: "3", Value: "72"}}
		assert.ElementsMatch(t, want, scTable.GetKeysAndValues(), "only remaining pairs")
	})
}

func TestSCTable_Clear(t *testing.T) {
	t.Run("clears records and keeps capacity", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 101, hashfunc.SumOfRunes)
		_ = scTable.Put("key1", 10)
		_ = scTable.Put("key2", 20)

		// Execute
		scTable.Clear()

		// Check
		assert.Equal(t, int64(0), scTable.Size(), "size is zero")
		assert.Equal(t, int64(101), scTable.Capacity(), "capacity unchanged")
		assert.Equal(t, int64(101), scTable.EmptyBuckets(), "all chains empty")
		assert.Empty(t, scTable.GetKeysAndValues(), "no pairs left")
	})
}

func TestSCTable_Resize(t *testing.T) {
	t.Run("rounds up to prime and keeps records", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 53, hashfunc.SumOfRunes)
		_ = scTable.Put("key1", 10)
		_ = scTable.Put("key2", 20)
		before := scTable.GetKeysAndValues()

		// Execute
		scTable.Resize(100)

		// Check
		assert.Equal(t, int64(101), scTable.Capacity(), "capacity rounded up to prime")
		assert.Equal(t, int64(101), scTable.hashAlgorithm.GetTableSize(), "algorithm addresses new capacity")
		assert.ElementsMatch(t, before, scTable.GetKeysAndValues(), "same pairs after resize")
		value, _ := scTable.Get("key2")
		assert.Equal(t, 20, value, "rehashed record found in its new bucket")
	})

	t.Run("ignores capacity below one", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 23, hashfunc.SumOfRunes)
		_ = scTable.Put("key1", 10)

		// Execute
		scTable.Resize(0)
		scTable.Resize(-3)

		// Check
		assert.Equal(t, int64(23), scTable.Capacity(), "capacity unchanged")
		assert.Equal(t, int64(1), scTable.Size(), "size unchanged")
	})

	t.Run("keeps a requested capacity of two", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 23, hashfunc.SumOfRunes)
		_ = scTable.Put("key1", 10)

		// Execute
		scTable.Resize(2)

		// Check
		assert.Equal(t, int64(2), scTable.Capacity(), "capacity two kept")
		assert.True(t, scTable.ContainsKey("key1"), "record kept")
	})

	t.Run("shrinks and grows while preserving pairs", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 79, hashfunc.WeightedSum)
		for key := 1; key < 1000; key += 13 {
			_ = scTable.Put(strconv.Itoa(key), key*42)
		}
		before := scTable.GetKeysAndValues()

		for _, capacity := range []int64{1, 12, 111, 228, 999} {
			// Execute
			scTable.Resize(capacity)

			// Check
			assert.Truef(t, prime.IsPrime(scTable.Capacity()), "capacity prime after resize to %d", capacity)
			assert.Lessf(t, scTable.TableLoad(), 1.0, "load factor after resize to %d", capacity)
			assert.ElementsMatchf(t, before, scTable.GetKeysAndValues(), "same pairs after resize to %d", capacity)
		}
	})
}

func TestSCTable_Iterator(t *testing.T) {
	t.Run("iterates chain by chain in bucket order", func(t *testing.T) {
		// Prepare
		// "c" is 99 % 11 = 0, "ab" and "ba" share bucket 8
		scTable := newTestTable(t, 11, hashfunc.SumOfRunes)
		_ = scTable.Put("ab", 1)
		_ = scTable.Put("ba", 2)
		_ = scTable.Put("c", 3)

		// Execute
		var keys []string
		iter := scTable.Iterator()
		for iter.HasNext() {
			pair, err := iter.Next()
			assert.NoError(t, err, "gets next record")
			keys = append(keys, pair.Key)
		}
		_, err := iter.Next()

		// Check
		assert.Equal(t, []string{"c", "ba", "ab"}, keys, "records in bucket and chain order")
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "end of iteration")
	})

	t.Run("survives removes and resizes during iteration", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 11, hashfunc.SumOfRunes)
		for i := 0; i < 20; i++ {
			_ = scTable.Put("key"+strconv.Itoa(i), i)
		}
		removed := make(map[string]bool)
		iter := scTable.Iterator()

		// Execute
		n := 0
		for iter.HasNext() && n < 1000 {
			pair, err := iter.Next()
			assert.NoError(t, err, "gets next record")
			scTable.Remove(pair.Key)
			removed[pair.Key] = true
			switch n {
			case 3:
				scTable.Resize(31)
			case 7:
				scTable.Resize(7)
			}
			n++
		}

		// Check
		assert.Less(t, n, 1000, "iteration terminates")
		pairs := scTable.GetKeysAndValues()
		assert.Equal(t, scTable.Size(), int64(len(pairs)), "size matches records")
		for _, pair := range pairs {
			assert.Falsef(t, removed[pair.Key], "removed key %s not stored", pair.Key)
			assert.Truef(t, scTable.ContainsKey(pair.Key), "remaining key %s found", pair.Key)
		}
		for key := range removed {
			assert.Falsef(t, scTable.ContainsKey(key), "removed key %s gone", key)
		}
		assert.Equal(t, int64(20), scTable.Size()+int64(len(removed)), "every key either removed or kept")
		assert.True(t, prime.IsPrime(scTable.Capacity()), "capacity prime")
	})

	t.Run("empty table has nothing to iterate", func(t *testing.T) {
		scTable := newTestTable(t, 11, hashfunc.SumOfRunes)
		assert.False(t, scTable.Iterator().HasNext(), "no records")
	})
}

func TestSCTable_GetBucket(t *testing.T) {
	t.Run("fails outside table", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 11, hashfunc.SumOfRunes)

		// Execute
		_, err := scTable.GetBucket(-1)

		// Check
		assert.True(t, errors.Is(err, crt.IndexOutOfRange{}), "index out of range")
	})
}
