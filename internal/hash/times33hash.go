package hash

// Times33HashAlgorithm - The internally used bucket selection algorithm. It walks the key byte by byte keeping an
// accumulator updated as acc = (byte + acc*33) mod tableSize, where the multiplication by 33 is done as a left shift
// by 5 (times 32) plus the accumulator once more. Taking the modulus at every step keeps the accumulator bounded and
// lands it directly within the bucket range.
//
// The algorithm is not seeded, so keys can be chosen to force long chains.
type Times33HashAlgorithm struct {
	tableSize uint64
}

// NewTimes33HashAlgorithm - Returns a pointer to a new Times33HashAlgorithm instance
func NewTimes33HashAlgorithm(tableSize int64) *Times33HashAlgorithm {
	ha := &Times33HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, the size is used as is.
//   - tableSize is the number of buckets the table will address
func (T *Times33HashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	T.tableSize = uint64(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (T *Times33HashAlgorithm) HashFunc1(key []byte) int64 {
	var h uint64
	for _, c := range key {
		h = (uint64(c) + (h << 5) + h) % T.tableSize
	}

	return int64(h)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (T *Times33HashAlgorithm) GetTableSize() int64 {
	return int64(T.tableSize)
}
