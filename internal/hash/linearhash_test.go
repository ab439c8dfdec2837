//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbing_GetTableSize(t *testing.T) {
	t.Run("returns the table size as given", func(t *testing.T) {
		// Prepare
		h := NewLinearProbing(101)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, 101, tableSize, "correct tableSize value")
	})
}

func TestLinearProbing_HomeSlot(t *testing.T) {
	t.Run("reduces hash value by modulo", func(t *testing.T) {
		// Prepare
		h := NewLinearProbing(10)

		// Execute & Check
		assert.Equal(t, 7, h.HomeSlot(7), "hash below table size")
		assert.Equal(t, 3, h.HomeSlot(103), "hash above table size")
		assert.Equal(t, 0, h.HomeSlot(0), "zero hash")
	})

	t.Run("handles the biggest hash values", func(t *testing.T) {
		// Prepare
		h := NewLinearProbing(101)

		// Execute
		slot := h.HomeSlot(^uint64(0))

		// Check
		assert.GreaterOrEqual(t, slot, 0, "slot not negative")
		assert.Less(t, slot, 101, "slot less than table size")
	})
}

func TestLinearProbing_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbing(13)
		tableSize := h.GetTableSize()

		homeSlot := h.HomeSlot(11)

		visit := make([]int, tableSize)

		// Execute
		for i := 0; i < tableSize; i++ {
			probe := h.ProbeIteration(homeSlot, i)
			assert.GreaterOrEqualf(t, probe, 0, "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := 0; i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})

	t.Run("wraps around at the end of the table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbing(5)

		// Execute & Check
		assert.Equal(t, 4, h.ProbeIteration(4, 0), "home slot first")
		assert.Equal(t, 0, h.ProbeIteration(4, 1), "wraps to first slot")
		assert.Equal(t, 3, h.ProbeIteration(4, 4), "last probe is slot before home")
	})
}

func TestLinearProbing_Distance(t *testing.T) {
	t.Run("measures distance along the probe sequence", func(t *testing.T) {
		// Prepare
		h := NewLinearProbing(8)

		// Execute & Check
		assert.Equal(t, 0, h.Distance(3, 3), "home slot")
		assert.Equal(t, 2, h.Distance(3, 5), "forward")
		assert.Equal(t, 6, h.Distance(3, 1), "wrapped")
	})
}
