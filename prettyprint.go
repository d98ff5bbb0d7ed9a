package stringhashtable

import (
	"bufio"
	"fmt"
	"github.com/andreafortunato/stringhashtable/internal/conf"
	"github.com/andreafortunato/stringhashtable/internal/utils"
	"io"
	"strings"
)

// PrettyPrint - Returns the layout of the table as text, see WritePrettyPrint for the format
func (S *StringHashTable) PrettyPrint() string {
	var sb strings.Builder
	_ = S.WritePrettyPrint(&sb)
	return sb.String()
}

// WritePrettyPrint - Writes one line per bucket, in bucket order, to w.
// The bucket number is right aligned to the number of digits in the table size plus one and followed by " --> ".
// A bucket with entries prints them in chain order as {(key, value), (key, value)}. An empty bucket prints as NULL
// if it is the first or the last bucket, or if it is next to a bucket with entries. Any other run of empty buckets
// is collapsed into a single truncation marker, " [...]" or wider for tables with many digits in their size.
//
// A nil or closed table writes a single line saying it does not exist.
func (S *StringHashTable) WritePrettyPrint(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if S.checkOpen() != nil {
		_, err = fmt.Fprintln(bw, conf.NotExistText)
		return
	}

	padding := utils.Digits(S.size) + 1
	marker := truncationMarker(padding)

	var dots bool
	var consecutiveEmpty int64
	for i := int64(0); i < S.size; i++ {
		head := S.buckets[i]
		if head != nil {
			consecutiveEmpty = 0
			dots = false
			if err = S.writeChain(bw, padding, i, head); err != nil {
				return
			}
			continue
		}

		consecutiveEmpty++
		switch {
		case i == 0 || i == S.size-1 || consecutiveEmpty == 1 || S.buckets[i+1] != nil:
			_, err = fmt.Fprintf(bw, "%*d --> NULL\n", padding, i)
		case !dots:
			_, err = fmt.Fprintln(bw, marker)
			dots = true
		}
		if err != nil {
			return
		}
	}

	return
}

// writeChain - Writes one bucket line with all entries of the chain starting at head
func (S *StringHashTable) writeChain(w io.Writer, padding int, bucketNo int64, head *Entry) (err error) {
	var entry *Entry

	_, err = fmt.Fprintf(w, "%*d --> {", padding, bucketNo)
	if err != nil {
		return
	}

	iter := newChainEntries(head)
	for iter.hasNext() {
		if entry != nil {
			if _, err = io.WriteString(w, ", "); err != nil {
				return
			}
		}
		entry, err = iter.next()
		if err != nil {
			return
		}
		if _, err = fmt.Fprintf(w, "(%s, %d)", entry.key, entry.value); err != nil {
			return
		}
	}

	_, err = io.WriteString(w, "}\n")

	return
}

// truncationMarker - Returns the marker for collapsed empty buckets, at least three dots and as many as padding - 3
func truncationMarker(padding int) string {
	if padding < 7 {
		return " [...]"
	}

	return " [" + strings.Repeat(".", padding-3) + "]"
}
