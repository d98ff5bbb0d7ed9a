package main

import (
	"bufio"
	"fmt"
	"github.com/xyproto/env/v2"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// config - Driver settings taken from the environment
//   - keyFile is the file read by the bulk scenario, one key per line
//   - buckets is the number of buckets of the bulk scenario table
//   - quiet skips printing the bulk scenario table
type config struct {
	keyFile string
	buckets int64
	quiet   bool
}

func loadConfig() config {
	// env caches the environment on first use, reload so every call sees the current values
	env.Load()

	return config{
		keyFile: env.Str("STRINGHASHTABLE_KEYFILE", "rnd_str.txt"),
		buckets: env.Int64("STRINGHASHTABLE_BUCKETS", 262144),
		quiet:   env.Bool("STRINGHASHTABLE_QUIET"),
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[ERROR] ")

	if err := run(os.Stdin, os.Stdout, loadConfig()); err != nil {
		log.Fatal(err)
	}
}

// run - Prints the menu, reads a choice between 1 and 3 from in and runs the chosen scenario
func run(in io.Reader, out io.Writer, cfg config) (err error) {
	_, err = fmt.Fprintf(out, "Welcome to the String Hash Table implementation in Go!\n\n"+
		"There are two test functions available:\n"+
		"  1) Test with 12 different strings, each 10 characters long\n"+
		"  2) Test with the strings, up to 64 characters long, written in a file called %q\n"+
		"  3) Exit\n", cfg.keyFile)
	if err != nil {
		return
	}

	option, err := readOption(bufio.NewReader(in), out)
	if err != nil {
		return
	}

	switch option {
	case 1:
		err = twelveStrings(out)
	case 2:
		err = bulkStrings(out, cfg)
	case 3:
		_, err = fmt.Fprintln(out, "\nGoodbye! :)")
	}

	return
}

// readOption - Prompts until a line holding a number between 1 and 3 is read
func readOption(r *bufio.Reader, out io.Writer) (option int, err error) {
	for {
		if _, err = fmt.Fprint(out, "Please, choose an option [1,2,3]: "); err != nil {
			return
		}

		var line string
		line, err = r.ReadString('\n')
		if line == "" && err != nil {
			err = fmt.Errorf("there was an error while trying to read the option: %w", err)
			return
		}

		option, err = strconv.Atoi(strings.TrimSpace(line))
		if err == nil && option >= 1 && option <= 3 {
			return
		}
	}
}
