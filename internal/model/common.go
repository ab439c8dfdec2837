package model

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty uint8 = 0

// SlotActive - State indicating a slot that holds an entry
const SlotActive uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was removed (tombstone)
const SlotDeleted uint8 = 2

// TableStat - Statistics on the overall usage and distribution over slots or buckets of a hash table
//   - Records is the total number of entries stored
//   - Capacity is the number of slots (closed hashing) or buckets (open hashing)
//   - EmptySlots is the number of never used slots, closed hashing only
//   - DeletedSlots is the number of tombstones, closed hashing only
//   - UsedBuckets is the number of slots or buckets holding at least one entry
//   - LongestRun is the longest probe distance from a home slot (closed hashing) or the longest chain (open hashing)
//   - BucketDistribution is the number of entries whose key reduces to each slot or bucket index
type TableStat struct {
	Records            int
	Capacity           int
	EmptySlots         int
	DeletedSlots       int
	UsedBuckets        int
	LongestRun         int
	BucketDistribution []int
}

// LoadFactor - Returns the number of records per slot or bucket
func (T TableStat) LoadFactor() float64 {
	if T.Capacity == 0 {
		return 0
	}
	return float64(T.Records) / float64(T.Capacity)
}
