package hash

// SeparateChaining - Bucket selection for separate chaining, the bucket is the hash value modulo the number
// of buckets.
type SeparateChaining struct {
	tableSize int
}

// NewSeparateChaining - Returns a pointer to a new SeparateChaining instance
func NewSeparateChaining(tableSize int) *SeparateChaining {
	return &SeparateChaining{tableSize: tableSize}
}

// GetTableSize - Returns the number of buckets
func (S *SeparateChaining) GetTableSize() int {
	return S.tableSize
}

// BucketIndex - Reduces a hash value to a bucket index between 0 and table size - 1
func (S *SeparateChaining) BucketIndex(hashValue uint64) int {
	return int(hashValue % uint64(S.tableSize))
}
