// Command twobit prints a FASTA-style record for a coordinate range of a
// named sequence in a .2bit file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/genomedb/twobit"
)

func printSequence(seq string) {
	for i := 0; i < len(seq); i += 50 {
		end := i + 50
		if end > len(seq) {
			end = len(seq)
		}
		fmt.Println(seq[i:end])
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <2bit filename> <name> <start> <end>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	name := flag.Arg(1)

	var start, end uint32
	if _, err := fmt.Sscanf(flag.Arg(2), "%d", &start); err != nil {
		log.Fatalf("invalid start coordinate %q: %v", flag.Arg(2), err)
	}
	if _, err := fmt.Sscanf(flag.Arg(3), "%d", &end); err != nil {
		log.Fatalf("invalid end coordinate %q: %v", flag.Arg(3), err)
	}

	tb, err := twobit.Open(filename)
	if err != nil {
		log.Fatalf("%s: %v", filename, err)
	}
	defer tb.Close()

	if _, ok := tb.SequenceLen(name); !ok {
		fmt.Fprintf(os.Stderr, "unknown sequence: %s\n", name)
		os.Exit(1)
	}

	seq, ok := tb.Sequence(name, start, end)
	if !ok {
		fmt.Fprintln(os.Stderr, "nothing")
		os.Exit(1)
	}

	fmt.Printf(">%s:%d-%d\n", name, start, end+1)
	printSequence(seq)
}
