package stringhashtable

import (
	"github.com/andreafortunato/stringhashtable/hashfunc"
	"github.com/andreafortunato/stringhashtable/internal/hash"
)

// NewTimes33HashAlgorithm - Returns the internal hash algorithm, the same as used when NewStringHashTable is given nil
func NewTimes33HashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewTimes33HashAlgorithm(tableSize)
}

// NewCRC32HashAlgorithm - Returns a hash algorithm based on crc32.ChecksumIEEE modulo the table size
func NewCRC32HashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewCRC32HashAlgorithm(tableSize)
}
