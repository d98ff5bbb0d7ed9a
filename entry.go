package stringhashtable

import "github.com/andreafortunato/stringhashtable/internal/utils"

// Entry - One key/value node in a bucket chain. The entry is owned by its predecessor, which is either the bucket
// itself (chain head) or the previous entry in the chain.
// A pointer to an Entry stays valid until the key is deleted or the table is closed, after which
// Key returns "" and Value returns 0.
type Entry struct {
	key   []byte
	value uint32
	next  *Entry
}

// newEntry - Returns a pointer to a new Entry, key must already be a private bounded copy
func newEntry(key []byte, value uint32) *Entry {
	return &Entry{key: key, value: value}
}

// Key - Returns the key of the entry
func (E *Entry) Key() string {
	return string(E.key)
}

// Value - Returns the value of the entry
func (E *Entry) Value() uint32 {
	return E.value
}

// wipe - Overwrites the key bytes and the entry record with zero values. The entry must already be unlinked.
func (E *Entry) wipe() {
	utils.Wipe(E.key)
	*E = Entry{}
}

// ChainEntries - Is used to iterate over the entries of a bucket chain one by one.
type ChainEntries struct {
	current *Entry
}

// newChainEntries - Returns a pointer to a new ChainEntries struct starting at head
func newChainEntries(head *Entry) *ChainEntries {

	return &ChainEntries{
		current: head,
	}
}

// hasNext - Returns true if there are more entries to be fetched from a call to next.
func (C *ChainEntries) hasNext() bool {
	return C.current != nil
}

// next - Returns entry.
// It returns:
//   - entry is the next entry in the chain.
//   - err is of type NoRecordFound if there are no more entries when calling this function.
func (C *ChainEntries) next() (entry *Entry, err error) {
	if C.current == nil {
		err = NoRecordFound{}
		return
	}

	entry = C.current
	C.current = entry.next

	return
}
