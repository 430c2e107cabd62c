package textutil

import (
	"cmp"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Punctuation is the set of characters ReadLongWords removes before splitting.
const Punctuation = `.,"!-`

// DefaultTopN is the number of entries TopWords callers usually ask for.
const DefaultTopN = 10

// WordCount is a word and how often it occurred.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// StripPunctuation removes every character of Punctuation from s.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, s)
}

// ReadLongWords reads filename and returns its words longer than minLength
// characters, lowercased, in text order with duplicates kept.
func ReadLongWords(filename string, minLength int) ([]string, error) {
	content, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	return longWords(string(content), minLength), nil
}

// LongWords is ReadLongWords over an arbitrary reader.
func LongWords(r io.Reader, minLength int) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return longWords(string(content), minLength), nil
}

func longWords(text string, minLength int) []string {
	lower := cases.Lower(language.Und)

	var words []string
	for _, word := range strings.Fields(StripPunctuation(text)) {
		// length is taken before lowercasing
		if utf8.RuneCountInString(word) > minLength {
			words = append(words, lower.String(word))
		}
	}
	return words
}

// CountWords returns the number of occurrences of each distinct word.
func CountWords(words []string) map[string]int {
	counts := make(map[string]int)
	for _, word := range words {
		counts[word]++
	}
	return counts
}

// TopWords returns the n most frequent words by descending count. Words with
// equal counts keep the order in which they first appear in words.
func TopWords(words []string, n int) []WordCount {
	if n <= 0 {
		return []WordCount{}
	}

	counts := CountWords(words)
	ranked := make([]WordCount, 0, len(counts))
	for _, word := range words {
		if c, ok := counts[word]; ok {
			ranked = append(ranked, WordCount{Word: word, Count: c})
			delete(counts, word)
		}
	}

	slices.SortStableFunc(ranked, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
