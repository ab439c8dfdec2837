package closed

import (
	"github.com/cockroachdb/errors"
	"github.com/gostonefire/searchtable/entry"
	"github.com/gostonefire/searchtable/hashfunc"
	"github.com/gostonefire/searchtable/internal/conf"
	"github.com/gostonefire/searchtable/internal/hash"
	"github.com/gostonefire/searchtable/internal/model"
	"github.com/gostonefire/searchtable/variant"
)

// slot - One position in the table, the entry is only meaningful when state is model.SlotActive
type slot[K comparable, V any] struct {
	state uint8
	entry entry.Entry[K, V]
}

// Table - Represents an implementation of the Closed Hashing (open addressing) Collision Resolution Technique.
// It uses one fixed size array of slots where each slot holds at most one entry. In case of a collision, it
// probes linearly through the array looking for an empty slot. Removed entries leave a tombstone behind so
// that probe sequences passing the slot stay intact.
// Once all slots are active the table will accept no more new keys.
type Table[K comparable, V any] struct {
	slots    []slot[K, V]
	probing  *hash.LinearProbing
	hashFunc hashfunc.HashFunc[K]
	policy   variant.DuplicatePolicy
	nEmpty   int
	nActive  int
	nDeleted int
}

// NewTable - Returns a pointer to a new closed hash table.
//   - capacity is the fixed number of slots, zero gives conf.DefaultCapacity
//   - hashFunc is the hash function to use, nil gives hashfunc.Default for the key type
//   - policy is the duplicate policy, variant.Shadow is not supported
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is either of type variant.UnsupportedPolicy or a standard error if the configuration is invalid
func NewTable[K comparable, V any](capacity int, hashFunc hashfunc.HashFunc[K], policy variant.DuplicatePolicy) (table *Table[K, V], err error) {
	if capacity < 0 {
		err = errors.Newf("capacity must be a positive value, got %d", capacity)
		return
	}
	if capacity == 0 {
		capacity = conf.DefaultCapacity
	}

	policy, err = variant.Resolve(variant.ClosedHashTable, policy)
	if err != nil {
		return
	}

	// If no hash function was given then use the default for the key type
	if hashFunc == nil {
		hashFunc, err = hashfunc.Default[K]()
		if err != nil {
			return
		}
	}

	table = &Table[K, V]{
		slots:    make([]slot[K, V], capacity),
		probing:  hash.NewLinearProbing(capacity),
		hashFunc: hashFunc,
		policy:   policy,
		nEmpty:   capacity,
	}

	return
}

// Find - Returns a pointer to the entry with the given key, or nil if there is none.
// The pointer is only valid until the next Insert, Remove or Clear.
func (C *Table[K, V]) Find(key K) (e *entry.Entry[K, V]) {
	slotNo := C.probingForGet(key)
	if slotNo >= 0 {
		e = &C.slots[slotNo].entry
	}

	return
}

// Insert - Adds the entry to the table, or applies the duplicate policy if the key is already present.
//   - e is the entry to add
//
// It returns:
//   - err is of type variant.TableFull if a full probe cycle found no slot to claim
func (C *Table[K, V]) Insert(e entry.Entry[K, V]) (err error) {
	slotNo, found, err := C.probingForSet(e.Key)
	if err != nil {
		return
	}

	if found {
		if C.policy == variant.Overwrite {
			C.slots[slotNo].entry.Value = e.Value
		}
		return
	}

	fromState := C.slots[slotNo].state
	C.slots[slotNo] = slot[K, V]{state: model.SlotActive, entry: e}
	C.updateUtilizationInfo(fromState, model.SlotActive)

	return
}

// Remove - Removes the entry with the given key by leaving a tombstone in its slot.
// It returns true if an entry was removed, removing an absent key is a no-op.
func (C *Table[K, V]) Remove(key K) (removed bool) {
	slotNo := C.probingForGet(key)
	if slotNo < 0 {
		return
	}

	C.slots[slotNo] = slot[K, V]{state: model.SlotDeleted}
	C.updateUtilizationInfo(model.SlotActive, model.SlotDeleted)
	removed = true

	return
}

// Len - Returns the number of active entries
func (C *Table[K, V]) Len() int {
	return C.nActive
}

// Capacity - Returns the fixed number of slots
func (C *Table[K, V]) Capacity() int {
	return len(C.slots)
}

// Clear - Drops every entry and tombstone, the capacity stays the same
func (C *Table[K, V]) Clear() {
	C.slots = make([]slot[K, V], len(C.slots))
	C.nEmpty = len(C.slots)
	C.nActive = 0
	C.nDeleted = 0
}

// Stat - Walks through all slots and produce a model.TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per home slot,
//     false will set TableStat.BucketDistribution to nil.
func (C *Table[K, V]) Stat(includeDistribution bool) (stat model.TableStat) {
	stat.Capacity = len(C.slots)
	if includeDistribution {
		stat.BucketDistribution = make([]int, len(C.slots))
	}

	for i := range C.slots {
		switch C.slots[i].state {
		case model.SlotEmpty:
			stat.EmptySlots++
		case model.SlotDeleted:
			stat.DeletedSlots++
		case model.SlotActive:
			stat.Records++
			stat.UsedBuckets++
			homeSlot := C.probing.HomeSlot(C.hashFunc(C.slots[i].entry.Key))
			if d := C.probing.Distance(homeSlot, i); d > stat.LongestRun {
				stat.LongestRun = d
			}
			if includeDistribution {
				stat.BucketDistribution[homeSlot]++
			}
		}
	}

	return
}

// Verify - Checks that every active entry is reachable by probing from its key, that no key is active in
// more than one slot and that the utilization counters match the slots.
func (C *Table[K, V]) Verify() (err error) {
	var nEmpty, nActive, nDeleted int
	for i := range C.slots {
		switch C.slots[i].state {
		case model.SlotEmpty:
			nEmpty++
		case model.SlotDeleted:
			nDeleted++
		case model.SlotActive:
			nActive++
			key := C.slots[i].entry.Key
			if found := C.probingForGet(key); found != i {
				return errors.AssertionFailedf("key %v in slot %d is found by probing in slot %d", key, i, found)
			}
		default:
			return errors.AssertionFailedf("slot %d has unknown state %d", i, C.slots[i].state)
		}
	}

	if nEmpty != C.nEmpty || nActive != C.nActive || nDeleted != C.nDeleted {
		return errors.AssertionFailedf("utilization counters (%d, %d, %d) differ from slots (%d, %d, %d)",
			C.nEmpty, C.nActive, C.nDeleted, nEmpty, nActive, nDeleted)
	}

	return
}
