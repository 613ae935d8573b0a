package mode

import (
	"fmt"

	"github.com/gostonefire/primehashmap"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
)

const defaultCapacity int64 = 11

// Find - Returns the values occurring most often in values together with how many times they occur.
//   - values is the input, it must contain at least one element
//   - opts are passed on to the hash map used for counting, for instance primehashmap.WithLogger
//
// It returns:
//   - modes holds every value having the highest frequency, in no particular order
//   - frequency is the number of times each of the modes occur
//   - err is of type crt.EmptyInput if values is empty
func Find(values []string, opts ...primehashmap.Option) (modes []string, frequency int, err error) {
	if len(values) == 0 {
		err = crt.EmptyInput{}
		return
	}

	counts, err := primehashmap.NewHashMap(crt.SeparateChaining, defaultCapacity, hashfunc.SumOfRunes, opts...)
	if err != nil {
		return
	}

	for _, value := range values {
		count := 0
		if counts.ContainsKey(value) {
			var current any
			current, err = counts.Get(value)
			if err != nil {
				return
			}
			count = current.(int)
		}
		if err = counts.Put(value, count+1); err != nil {
			err = fmt.Errorf("error while counting value: %w", err)
			return
		}
	}

	pairs := counts.GetKeysAndValues()
	for _, pair := range pairs {
		if count := pair.Value.(int); count > frequency {
			frequency = count
		}
	}

	for _, pair := range pairs {
		if pair.Value.(int) == frequency {
			modes = append(modes, pair.Key)
		}
	}

	return
}
