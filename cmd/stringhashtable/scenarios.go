package main

import (
	"fmt"
	"github.com/andreafortunato/stringhashtable"
	"io"
	"strings"
)

var twelveKeys = []string{
	"8ct4xaucod", "7i2pefipwc", "mmnoy7c6yq", "ouam4phm2c", "e2xztziqtj", "wrrw5arl6d",
	"7lc5pgl8kd", "93i5i8sx17", "6kkd8e0zq1", "yeqmy6bjmk", "hn1gybiuy6", "5wr2vyui8t",
}

var twelveDeletes = []string{"7lc5pgl8kd", "6kkd8e0zq1", "e2xztziqtj", "yeqmy6bjmk"}

var twelveUpdates = []struct {
	key   string
	value uint32
}{
	{key: "ouam4phm2c", value: 37},
	{key: "93i5i8sx17", value: 55},
	{key: "5wr2vyui8t", value: 79},
}

// printTable - Pretty prints the table followed by two empty lines
func printTable(out io.Writer, sht *stringhashtable.StringHashTable) (err error) {
	if err = sht.WritePrettyPrint(out); err != nil {
		return
	}
	_, err = io.WriteString(out, "\n\n")

	return
}

// twelveStrings - Adds 12 unique strings to a 16 bucket table, deletes 4 of them and changes the value of 3,
// pretty printing the whole table after every single step.
func twelveStrings(out io.Writer) (err error) {
	sht, err := stringhashtable.NewStringHashTable(16, nil)
	if err != nil {
		return
	}
	defer sht.Close()

	if _, err = fmt.Fprintln(out, "Empty hashtable"); err != nil {
		return
	}
	if err = printTable(out, sht); err != nil {
		return
	}

	if _, err = fmt.Fprintf(out, "\nInsert strings (%s), with value '0', in the hash table:\n", strings.Join(twelveKeys, ", ")); err != nil {
		return
	}
	for _, key := range twelveKeys {
		if _, err = sht.Insert([]byte(key), 0); err != nil {
			return
		}
		if err = printTable(out, sht); err != nil {
			return
		}
	}

	if _, err = fmt.Fprintf(out, "\nDelete strings (%s) from the hash table:\n", strings.Join(twelveDeletes, ", ")); err != nil {
		return
	}
	for _, key := range twelveDeletes {
		if _, err = sht.Delete([]byte(key)); err != nil {
			return
		}
		if err = printTable(out, sht); err != nil {
			return
		}
	}

	if _, err = fmt.Fprintln(out, "\nChange value of strings (ouam4phm2c -> 37, 93i5i8sx17 -> 55, 5wr2vyui8t -> 79) in the hash table:"); err != nil {
		return
	}
	for _, update := range twelveUpdates {
		if _, err = sht.Insert([]byte(update.key), update.value); err != nil {
			return
		}
		if err = printTable(out, sht); err != nil {
			return
		}
	}

	return
}

// bulkStrings - Loads every key of the configured key file into a table and prints it
func bulkStrings(out io.Writer, cfg config) (err error) {
	sht, err := stringhashtable.NewStringHashTable(cfg.buckets, nil)
	if err != nil {
		return
	}
	defer sht.Close()

	keys, err := sht.LoadKeysFromFile(cfg.keyFile)
	if err != nil {
		err = fmt.Errorf("there was an error while loading %s: %w", cfg.keyFile, err)
		return
	}

	if !cfg.quiet {
		if err = printTable(out, sht); err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(out, "Loaded %d keys into %d buckets: %d distinct entries, %d collisions\n",
		keys, sht.Size(), sht.DistinctEntries(), sht.Collisions())

	return
}
