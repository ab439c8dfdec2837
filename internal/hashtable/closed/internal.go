package closed

import (
	"github.com/gostonefire/searchtable/internal/model"
	"github.com/gostonefire/searchtable/variant"
)

// probingForGet - Is the Linear Probing Collision Resolution Technique algorithm for getting an entry.
// It returns the slot number of the active entry with the key, or -1 if probing reached an empty slot or went
// through the entire table without a match.
func (C *Table[K, V]) probingForGet(key K) (slotNo int) {
	homeSlot := C.probing.HomeSlot(C.hashFunc(key))
	tableSize := C.probing.GetTableSize()

	for i := 0; i < tableSize; i++ {
		probe := C.probing.ProbeIteration(homeSlot, i)

		switch C.slots[probe].state {
		case model.SlotEmpty:
			return -1

		case model.SlotActive:
			if C.slots[probe].entry.Key == key {
				return probe
			}
		}
	}

	return -1
}

// probingForSet - Is the Linear Probing Collision Resolution Technique algorithm for finding a slot for set.
// An active slot with the same key is always preferred, so keys stay unique. Otherwise the first tombstone
// passed is reused, or the empty slot that ended the probing.
//
// It returns:
//   - slotNo is the slot to update or claim
//   - found is true if slotNo holds an active entry with the same key
//   - err is of type variant.TableFull if there is no slot to claim
func (C *Table[K, V]) probingForSet(key K) (slotNo int, found bool, err error) {
	deletedSlot := -1
	homeSlot := C.probing.HomeSlot(C.hashFunc(key))
	tableSize := C.probing.GetTableSize()

	for i := 0; i < tableSize; i++ {
		probe := C.probing.ProbeIteration(homeSlot, i)

		switch C.slots[probe].state {
		case model.SlotEmpty:
			if deletedSlot >= 0 {
				slotNo = deletedSlot
			} else {
				slotNo = probe
			}
			return

		case model.SlotActive:
			if C.slots[probe].entry.Key == key {
				slotNo = probe
				found = true
				return
			}

		case model.SlotDeleted:
			if deletedSlot < 0 {
				deletedSlot = probe
			}
		}
	}

	// A full cycle without any empty slot, reuse a tombstone if we passed one
	if deletedSlot >= 0 {
		slotNo = deletedSlot
		return
	}

	err = variant.TableFull{}
	return
}

// updateUtilizationInfo - Moves one slot between the empty, active and deleted counters
func (C *Table[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.SlotEmpty:
		C.nEmpty--
	case model.SlotActive:
		C.nActive--
	case model.SlotDeleted:
		C.nDeleted--
	}

	switch toState {
	case model.SlotEmpty:
		C.nEmpty++
	case model.SlotActive:
		C.nActive++
	case model.SlotDeleted:
		C.nDeleted++
	}
}
