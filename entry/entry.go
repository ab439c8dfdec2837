package entry

// Entry - A key and value pair as stored by every search table.
// The key must not be changed once the entry is stored, the value may be updated in place through the
// pointer returned from a Find.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// New - Returns a new Entry given key and value
func New[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}
