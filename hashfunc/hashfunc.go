package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
	"hash/crc32"
)

// HashFunc - Function type that permits a user of the hash tables to supply a hash function suited for
// the particular key type and distribution of keys.
// It must be deterministic and consistent with key equality, i.e. equal keys must give equal hash values.
// The table reduces the returned value to a slot or bucket index by modulo of its capacity.
type HashFunc[K any] func(key K) uint64

// Identity - Returns the integer key itself as hash value. This is the default for integer keys.
// Negative keys are reinterpreted as their two's complement bit pattern.
func Identity[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

// CRC32String - Hashes a string key using crc32.ChecksumIEEE
func CRC32String(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// CRC32Bytes - Hashes a byte slice using crc32.ChecksumIEEE.
// Byte slices are not comparable, so this is meant for building hash functions of composite keys.
func CRC32Bytes(key []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(key))
}

// XXHashString - Hashes a string key using xxhash. This is the default for string keys.
func XXHashString(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXHashBytes - Hashes a byte slice using xxhash.
func XXHashBytes(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Default - Returns the hash function used when none is supplied at table construction.
// Built in integer kinds get Identity, strings get XXHashString. Any other key type requires the caller to
// supply a hash function, and an error is returned.
func Default[K comparable]() (hashFunc HashFunc[K], err error) {
	var zero K
	switch any(zero).(type) {
	case int:
		hashFunc = func(key K) uint64 { return Identity(any(key).(int)) }
	case int8:
		hashFunc = func(key K) uint64 { return Identity(any(key).(int8)) }
	case int16:
		hashFunc = func(key K) uint64 { return Identity(any(key).(int16)) }
	case int32:
		hashFunc = func(key K) uint64 { return Identity(any(key).(int32)) }
	case int64:
		hashFunc = func(key K) uint64 { return Identity(any(key).(int64)) }
	case uint:
		hashFunc = func(key K) uint64 { return Identity(any(key).(uint)) }
	case uint8:
		hashFunc = func(key K) uint64 { return Identity(any(key).(uint8)) }
	case uint16:
		hashFunc = func(key K) uint64 { return Identity(any(key).(uint16)) }
	case uint32:
		hashFunc = func(key K) uint64 { return Identity(any(key).(uint32)) }
	case uint64:
		hashFunc = func(key K) uint64 { return any(key).(uint64) }
	case uintptr:
		hashFunc = func(key K) uint64 { return Identity(any(key).(uintptr)) }
	case string:
		hashFunc = func(key K) uint64 { return XXHashString(any(key).(string)) }
	default:
		err = errors.Newf("no default hash function for key type %T, a hash function has to be supplied", zero)
	}

	return
}
