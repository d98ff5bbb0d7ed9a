package stringhashtable

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/andreafortunato/stringhashtable/internal/conf"
	"io"
	"os"
	"strings"
)

// LoadKeys - Reads newline delimited keys from r and inserts each one with value 0. Line endings ("\n" or "\r\n")
// are not part of the key and empty lines are skipped. Keys already in the table keep their entry and get their
// value set to 0.
//   - r is the source of keys, each line can be at most 64 bytes
//
// It returns:
//   - keys is the number of lines that were inserted
//   - err is a wrapped InvalidArgument naming the line if a key can not be stored, or the error from reading r
func (S *StringHashTable) LoadKeys(r io.Reader) (keys int64, err error) {
	if err = S.checkOpen(); err != nil {
		return
	}

	scanner := bufio.NewScanner(r)
	// Room for an over-length line to be reported as such rather than as a scanner error
	scanner.Buffer(make([]byte, 0, 4*conf.MaxKeyLength), 64*1024)

	var lineNo int64
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		_, err = S.Insert([]byte(line), 0)
		if err != nil {
			err = fmt.Errorf("error while inserting key from line %d: %w", lineNo, err)
			return
		}
		keys++
	}

	if err = scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = InvalidArgument{msg: fmt.Sprintf("key length exceeds max key length %d", conf.MaxKeyLength)}
			err = fmt.Errorf("error while inserting key from line %d: %w", lineNo+1, err)
			return
		}
		err = fmt.Errorf("error while reading keys after line %d: %w", lineNo, err)
	}

	return
}

// LoadKeysFromFile - Opens fileName and loads its keys the same way as LoadKeys
func (S *StringHashTable) LoadKeysFromFile(fileName string) (keys int64, err error) {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	keys, err = S.LoadKeys(f)

	return
}
