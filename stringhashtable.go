package stringhashtable

import (
	"fmt"
	"github.com/andreafortunato/stringhashtable/hashfunc"
	"github.com/andreafortunato/stringhashtable/internal/conf"
	"github.com/andreafortunato/stringhashtable/internal/hash"
)

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of keys stored
//   - DistinctEntries is the number of buckets holding at least one key
//   - Collisions is the number of keys that are not the head of their bucket chain
//   - LongestChain is the number of keys in the longest bucket chain
//   - BucketDistribution is the number of keys stored in each available bucket
type TableStat struct {
	Records            int64
	DistinctEntries    int64
	Collisions         int64
	LongestChain       int64
	BucketDistribution []int64
}

// StringHashTable - The main implementation struct.
// It is not safe for concurrent use, callers sharing a table between goroutines must synchronize access themselves.
type StringHashTable struct {
	buckets         []*Entry
	size            int64
	distinctEntries int64
	collisions      int64
	hashAlgorithm   hashfunc.HashAlgorithm
	internalAlg     bool
	closed          bool
}

// NewStringHashTable - Returns a new string hash table with a fixed number of buckets. The number of buckets never
// changes, so a too low number will result in long chains which still works but requires more key comparisons.
//   - size is the number of buckets, it must be at least 2
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - table is a pointer to a StringHashTable struct
//   - err is of type ConstructionError if the table could not be created
func NewStringHashTable(size int64, hashAlgorithm hashfunc.HashAlgorithm) (table *StringHashTable, err error) {
	// Check if size is valid
	if size < conf.MinTableSize {
		err = ConstructionError{msg: fmt.Sprintf("size must be at least %d, got %d", conf.MinTableSize, size)}
		return
	}
	if size > conf.MaxTableSize {
		err = ConstructionError{msg: fmt.Sprintf("size must be at most %d, got %d", conf.MaxTableSize, size)}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewTimes33HashAlgorithm(size)
		internalAlg = true
	}

	numberOfBuckets, err := applyTableSize(hashAlgorithm, size)
	if err != nil {
		return
	}
	if numberOfBuckets < conf.MinTableSize || numberOfBuckets > conf.MaxTableSize {
		err = ConstructionError{msg: fmt.Sprintf("hash algorithm reports an unusable table size of %d", numberOfBuckets)}
		return
	}

	buckets, err := allocateBuckets(numberOfBuckets)
	if err != nil {
		return
	}

	table = &StringHashTable{
		buckets:       buckets,
		size:          numberOfBuckets,
		hashAlgorithm: hashAlgorithm,
		internalAlg:   internalAlg,
	}

	return
}

// applyTableSize - Hands size to the hash algorithm and returns the table size it reports, turning a panicking
// algorithm (a typed nil pointer for instance) into a ConstructionError
func applyTableSize(hashAlgorithm hashfunc.HashAlgorithm, size int64) (numberOfBuckets int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			numberOfBuckets = 0
			err = ConstructionError{msg: fmt.Sprintf("unable to set table size on hash algorithm: %v", r)}
		}
	}()

	hashAlgorithm.SetTableSize(size)
	numberOfBuckets = hashAlgorithm.GetTableSize()

	return
}

// allocateBuckets - Allocates the bucket array, turning a failed allocation into a ConstructionError
func allocateBuckets(numberOfBuckets int64) (buckets []*Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = ConstructionError{msg: fmt.Sprintf("unable to allocate %d buckets: %v", numberOfBuckets, r)}
		}
	}()

	buckets = make([]*Entry, numberOfBuckets)

	return
}

// Size - Returns the number of buckets in the table
func (S *StringHashTable) Size() int64 {
	return S.size
}

// DistinctEntries - Returns the number of buckets that hold at least one key, this is not the number of keys stored
func (S *StringHashTable) DistinctEntries() int64 {
	return S.distinctEntries
}

// Collisions - Returns the number of keys that are not the head of their bucket chain
func (S *StringHashTable) Collisions() int64 {
	return S.collisions
}

// Len - Returns the number of keys stored
func (S *StringHashTable) Len() int64 {
	return S.distinctEntries + S.collisions
}

// InternalAlgorithm - Returns true if the table uses the internal times 33 hash algorithm
func (S *StringHashTable) InternalAlgorithm() bool {
	return S.internalAlg
}

// Close - Wipes every entry still in the table and releases the bucket array. Any operation on a closed table
// fails with InvalidArgument. Calling Close more than once has no further effect.
func (S *StringHashTable) Close() {
	if S == nil || S.closed {
		return
	}

	for i, head := range S.buckets {
		S.buckets[i] = nil
		iter := newChainEntries(head)
		for iter.hasNext() {
			entry, _ := iter.next()
			entry.wipe()
		}
	}

	S.buckets = nil
	S.distinctEntries = 0
	S.collisions = 0
	S.closed = true
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
// For big tables the TableStat.BucketDistribution slice can be memory heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length Size with number of keys per bucket, false will set TableStat.BucketDistribution to nil.
func (S *StringHashTable) Stat(includeDistribution bool) (tableStat *TableStat, err error) {
	if err = S.checkOpen(); err != nil {
		return
	}

	var ts TableStat
	var chainLength int64

	if includeDistribution {
		ts.BucketDistribution = make([]int64, S.size)
	}

	// Iterate over every available bucket
	for i, head := range S.buckets {
		if head == nil {
			continue
		}
		ts.DistinctEntries++

		chainLength = 0
		iter := newChainEntries(head)
		for iter.hasNext() {
			_, err = iter.next()
			if err != nil {
				return
			}
			chainLength++
		}

		ts.Records += chainLength
		ts.Collisions += chainLength - 1
		if chainLength > ts.LongestChain {
			ts.LongestChain = chainLength
		}
		if includeDistribution {
			ts.BucketDistribution[i] = chainLength
		}
	}

	tableStat = &ts
	return
}

// checkOpen - Returns an InvalidArgument error if the table is nil or has been closed
func (S *StringHashTable) checkOpen() (err error) {
	if S == nil || S.closed {
		err = InvalidArgument{msg: "table is closed"}
	}

	return
}
