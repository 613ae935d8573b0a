//go:build unit

package hash

import (
	"testing"

	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/stretchr/testify/assert"
)

func TestSeparateChainingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(hashfunc.SumOfRunes, 11)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(11), tableSize, "correct tableSize value")
	})
}

func TestSeparateChainingHashAlgorithm_HomeSlot(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(hashfunc.SumOfRunes, 11)

		// Execute
		bucketNo := h.HomeSlot("abc")

		// Check
		assert.Equal(t, int64((97+98+99)%11), bucketNo, "create a valid bucket number")
	})
}

func TestSeparateChainingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(hashfunc.SumOfRunes, 11)

		// Execute
		h.SetTableSize(23)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64((97+98+99)%23), h.HomeSlot("abc"), "home slot follows new table size")
		assert.Equal(t, int64(5), h.ProbeIteration(5, 3), "no probing in chaining")
	})
}
