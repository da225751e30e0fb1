// Command dictprep normalizes a raw word list into a sieve dictionary:
// lines are trimmed, lower-cased, restricted to alphabetic words within the
// length window, and deduplicated preserving order.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/samber/lo"
)

func main() {
	in := flag.String("in", "", "raw word list to read")
	out := flag.String("out", "", "normalized word list to write")
	minLen := flag.Int("min", 5, "minimum word length to keep")
	maxLen := flag.Int("max", 5, "maximum word length to keep")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatal("both -in and -out are required")
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}

	lines := strings.Split(string(raw), "\n")
	words := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		word := strings.ToLower(strings.TrimSpace(line))
		if len(word) < *minLen || len(word) > *maxLen {
			return "", false
		}
		for i := 0; i < len(word); i++ {
			if word[i] < 'a' || word[i] > 'z' {
				return "", false
			}
		}
		return word, true
	})
	words = lo.Uniq(words)

	if err := os.WriteFile(*out, []byte(strings.Join(words, "\n")+"\n"), 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("kept %d of %d lines", len(words), len(lines))
}
