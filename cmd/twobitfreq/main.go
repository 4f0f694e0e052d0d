// Command twobitfreq prints the A/C/G/T base frequencies of a named
// sequence in a .2bit file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/genomedb/twobit"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <2bit filename> <name>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	name := flag.Arg(1)

	tb, err := twobit.Open(filename)
	if err != nil {
		log.Fatalf("%s: %v", filename, err)
	}
	defer tb.Close()

	freqs, ok := tb.BaseFrequencies(name)
	if !ok {
		fmt.Printf("Unknown sequence: %s\n", name)
		os.Exit(1)
	}

	fmt.Printf("%s base frequencies (ACGT): %v %v %v %v\n", name, freqs[0], freqs[1], freqs[2], freqs[3])
}
