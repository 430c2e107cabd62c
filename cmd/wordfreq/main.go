package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dendrascience/dendra-textkit/textutil"
)

// This utility prints the most frequent words of a text file.
// Words are lowercased, stripped of . , " ! - and kept only when longer
// than the -m threshold. Output is one "word<TAB>count" pair per line.

var (
	fileName  = flag.String("f", "", "The text file to read.")
	minLength = flag.Int("m", 0, "Keep words longer than this many characters.")
	topN      = flag.Int("n", textutil.DefaultTopN, "Number of words to print.")
)

func main() {
	flag.Parse()
	if *fileName == "" {
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	words, err := textutil.ReadLongWords(*fileName, *minLength)
	if err != nil {
		log.Fatal(err)
	}
	for _, wc := range textutil.TopWords(words, *topN) {
		fmt.Printf("%s\t%d\n", wc.Word, wc.Count)
	}
}
