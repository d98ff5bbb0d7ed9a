package stringhashtable

import (
	"fmt"
	"github.com/andreafortunato/stringhashtable/internal/conf"
	"github.com/andreafortunato/stringhashtable/internal/utils"
)

// Get - Gets the entry that corresponds to the given key.
//   - key is the identifier of an entry, it can not be nil or longer than 64 bytes
//
// It returns:
//   - entry is the matching entry if found, if not found an error of type NoRecordFound is returned.
//   - err is either of type NoRecordFound or InvalidArgument, if something went wrong
func (S *StringHashTable) Get(key []byte) (entry *Entry, err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	iter := newChainEntries(S.buckets[bucketNo])
	for iter.hasNext() {
		entry, err = iter.next()
		if err != nil {
			return
		}
		if utils.IsEqual(key, entry.key) {
			return
		}
	}

	entry = nil
	err = NoRecordFound{}

	return
}

// Insert - Updates an existing entry with a new value or adds it if no existing is found with same key.
// A new key that lands in an empty bucket becomes the head of that bucket, otherwise it is appended at the tail
// of the bucket chain and counted as a collision.
//   - key is the identifier of an entry, it can not be nil or longer than 64 bytes (longer keys are rejected, never truncated)
//   - value is the value to store along with the key
//
// It returns:
//   - entry is the inserted or updated entry
//   - err is of type InvalidArgument if the key or table can not be used
func (S *StringHashTable) Insert(key []byte, value uint32) (entry *Entry, err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	// First entry in the bucket becomes its head
	if S.buckets[bucketNo] == nil {
		entry = newEntry(S.copyKey(key), value)
		S.buckets[bucketNo] = entry
		S.distinctEntries++
		return
	}

	// Search the chain for a matching key, keeping the tail in case we need to append
	var tail *Entry
	iter := newChainEntries(S.buckets[bucketNo])
	for iter.hasNext() {
		tail, err = iter.next()
		if err != nil {
			return
		}
		if utils.IsEqual(key, tail.key) {
			tail.value = value
			entry = tail
			return
		}
	}

	entry = newEntry(S.copyKey(key), value)
	tail.next = entry
	S.collisions++

	return
}

// Delete - Removes the entry corresponding to key from the table and returns its value. Before the entry is
// released its key bytes and the entry record itself are overwritten with zeros.
//   - key is the identifier of an entry, it can not be nil or longer than 64 bytes
//
// It returns:
//   - value is the value of the removed entry, if not found an error of type NoRecordFound is returned and the table is left unchanged.
//   - err is either of type NoRecordFound or InvalidArgument, if something went wrong
func (S *StringHashTable) Delete(key []byte) (value uint32, err error) {
	if err = S.checkKey(key); err != nil {
		return
	}

	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	// Search the chain tracking the previous entry
	var previous *Entry
	current := S.buckets[bucketNo]
	for current != nil && !utils.IsEqual(key, current.key) {
		previous = current
		current = current.next
	}

	if current == nil {
		err = NoRecordFound{}
		return
	}

	switch {
	case previous == nil && current.next == nil:
		// Sole entry in the bucket
		S.buckets[bucketNo] = nil
		S.distinctEntries--
	case previous == nil:
		// Head with successors, promote the successor
		S.buckets[bucketNo] = current.next
		S.collisions--
	default:
		previous.next = current.next
		S.collisions--
	}

	value = current.value
	current.wipe()

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of an entry
func (S *StringHashTable) GetBucketNo(key []byte) (bucketNo int64, err error) {
	if err = S.checkOpen(); err != nil {
		return
	}

	bucketNo = S.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= S.size {
		err = fmt.Errorf("received bucket number %d from hash algorithm is outside permitted range [0, %d)", bucketNo, S.size)
		return
	}

	return
}

// checkKey - Returns an InvalidArgument error if the table is closed or the key can not be stored
func (S *StringHashTable) checkKey(key []byte) (err error) {
	if err = S.checkOpen(); err != nil {
		return
	}

	if key == nil {
		err = InvalidArgument{msg: "key can not be nil"}
		return
	}

	if len(key) > conf.MaxKeyLength {
		err = InvalidArgument{msg: fmt.Sprintf("key length %d exceeds max key length %d", len(key), conf.MaxKeyLength)}
		return
	}

	return
}

// copyKey - Returns a private copy of an already validated key
func (S *StringHashTable) copyKey(key []byte) (keyCopy []byte) {
	keyCopy, _ = utils.BoundedCopy(key, conf.MaxKeyLength)
	return
}
