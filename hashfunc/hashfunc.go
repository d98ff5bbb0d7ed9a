package hashfunc

// HashAlgorithm - Interface that permits an implementation using the StringHashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new string hash table. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten by the
	// number of buckets that is supplied when creating the table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be deterministic and free of side effects.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// The table allocates exactly this many buckets, so if an implementation rounds the size given in SetTableSize
	// (to a power of 2, a prime or similar) it must be reflected here.
	GetTableSize() int64
}
