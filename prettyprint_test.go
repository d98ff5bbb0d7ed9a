//go:build unit

package stringhashtable

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// failingWriter - Test writer that always fails
type failingWriter struct{}

func (F failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestStringHashTable_PrettyPrint(t *testing.T) {
	t.Run("prints an empty table", func(t *testing.T) {
		// Prepare
		sht, err := NewStringHashTable(16, nil)
		require.NoError(t, err, "creates string hash table")

		// Execute
		text := sht.PrettyPrint()

		// Check
		assert.Equal(t, "  0 --> NULL\n [...]\n 15 --> NULL\n", text, "only first and last bucket printed")
	})

	t.Run("prints the golden table", func(t *testing.T) {
		// Prepare
		sht := newGoldenTable(t)
		expected := "" +
			"  0 --> {(7i2pefipwc, 0), (ouam4phm2c, 0), (wrrw5arl6d, 0)}\n" +
			"  1 --> NULL\n" +
			" [...]\n" +
			"  4 --> NULL\n" +
			"  5 --> {(7lc5pgl8kd, 0)}\n" +
			"  6 --> {(hn1gybiuy6, 0)}\n" +
			"  7 --> {(8ct4xaucod, 0)}\n" +
			"  8 --> NULL\n" +
			"  9 --> {(6kkd8e0zq1, 0), (5wr2vyui8t, 0)}\n" +
			" 10 --> {(mmnoy7c6yq, 0)}\n" +
			" 11 --> NULL\n" +
			" [...]\n" +
			" 13 --> NULL\n" +
			" 14 --> {(93i5i8sx17, 0)}\n" +
			" 15 --> {(e2xztziqtj, 0), (yeqmy6bjmk, 0)}\n"

		// Execute
		text := sht.PrettyPrint()

		// Check
		assert.Equal(t, expected, text, "correct layout")
	})

	t.Run("prints the golden table after deletes and updates", func(t *testing.T) {
		// Prepare
		sht := newGoldenTable(t)
		for _, key := range []string{"7lc5pgl8kd", "6kkd8e0zq1", "e2xztziqtj", "yeqmy6bjmk"} {
			_, err := sht.Delete([]byte(key))
			require.NoError(t, err, "deletes key")
		}
		_, err := sht.Insert([]byte("ouam4phm2c"), 37)
		require.NoError(t, err, "updates key")
		_, err = sht.Insert([]byte("93i5i8sx17"), 55)
		require.NoError(t, err, "updates key")
		_, err = sht.Insert([]byte("5wr2vyui8t"), 79)
		require.NoError(t, err, "updates key")

		expected := "" +
			"  0 --> {(7i2pefipwc, 0), (ouam4phm2c, 37), (wrrw5arl6d, 0)}\n" +
			"  1 --> NULL\n" +
			" [...]\n" +
			"  5 --> NULL\n" +
			"  6 --> {(hn1gybiuy6, 0)}\n" +
			"  7 --> {(8ct4xaucod, 0)}\n" +
			"  8 --> NULL\n" +
			"  9 --> {(5wr2vyui8t, 79)}\n" +
			" 10 --> {(mmnoy7c6yq, 0)}\n" +
			" 11 --> NULL\n" +
			" [...]\n" +
			" 13 --> NULL\n" +
			" 14 --> {(93i5i8sx17, 55)}\n" +
			" 15 --> NULL\n"

		// Execute
		text := sht.PrettyPrint()

		// Check
		assert.Equal(t, expected, text, "correct layout")
	})

	t.Run("collapses interior empty buckets", func(t *testing.T) {
		// Prepare
		sht, err := NewStringHashTable(10, nil)
		require.NoError(t, err, "creates string hash table")
		_, err = sht.Insert([]byte("e"), 1) // bucket 1
		require.NoError(t, err, "inserts key")
		_, err = sht.Insert([]byte("b"), 2) // bucket 8
		require.NoError(t, err, "inserts key")

		expected := "" +
			"  0 --> NULL\n" +
			"  1 --> {(e, 1)}\n" +
			"  2 --> NULL\n" +
			" [...]\n" +
			"  7 --> NULL\n" +
			"  8 --> {(b, 2)}\n" +
			"  9 --> NULL\n"

		// Execute
		text := sht.PrettyPrint()

		// Check
		assert.Equal(t, expected, text, "boundary and adjacent buckets explicit, interior collapsed")
	})

	t.Run("widens the truncation marker for large tables", func(t *testing.T) {
		// Prepare
		sht, err := NewStringHashTable(1000000, &fixedSizeHashAlgorithm{tableSize: 1000000, bucketNo: 500000})
		require.NoError(t, err, "creates string hash table")
		_, err = sht.Insert([]byte("k"), 1)
		require.NoError(t, err, "inserts key")

		expected := "" +
			"       0 --> NULL\n" +
			" [.....]\n" +
			"  499999 --> NULL\n" +
			"  500000 --> {(k, 1)}\n" +
			"  500001 --> NULL\n" +
			" [.....]\n" +
			"  999999 --> NULL\n"

		// Execute
		text := sht.PrettyPrint()

		// Check
		assert.Equal(t, expected, text, "marker scales with digit count")
	})

	t.Run("prints a two bucket table", func(t *testing.T) {
		// Prepare
		sht, err := NewStringHashTable(2, nil)
		require.NoError(t, err, "creates string hash table")
		_, err = sht.Insert([]byte{}, 3)
		require.NoError(t, err, "inserts empty key")

		// Execute
		text := sht.PrettyPrint()

		// Check
		assert.Equal(t, " 0 --> {(, 3)}\n 1 --> NULL\n", text, "correct layout")
	})

	t.Run("prints a nil or closed table", func(t *testing.T) {
		// Prepare
		var nilTable *StringHashTable
		sht, err := NewStringHashTable(16, nil)
		require.NoError(t, err, "creates string hash table")
		sht.Close()

		// Execute and Check
		assert.Equal(t, "This hash table does not exist.\n", nilTable.PrettyPrint(), "nil table")
		assert.Equal(t, "This hash table does not exist.\n", sht.PrettyPrint(), "closed table")
	})

	t.Run("returns writer errors", func(t *testing.T) {
		// Prepare
		sht := newGoldenTable(t)

		// Execute
		err := sht.WritePrettyPrint(failingWriter{})

		// Check
		assert.Error(t, err, "write error returned")
	})
}

func TestTruncationMarker(t *testing.T) {
	t.Run("has at least three dots", func(t *testing.T) {
		// Prepare
		padding := []int{2, 3, 6, 7, 8, 11}
		markers := []string{" [...]", " [...]", " [...]", " [....]", " [.....]", " [........]"}

		// Execute and Check
		for i := 0; i < len(padding); i++ {
			assert.Equal(t, markers[i], truncationMarker(padding[i]), "correct marker")
		}
	})
}
