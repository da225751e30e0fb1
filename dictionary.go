package main

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// scanWords streams each trimmed, lower-cased, non-empty line of r to fn.
// fn returning false stops the scan early, so callers can cap output
// without reading the rest of the source.
func scanWords(r io.Reader, fn func(word string) bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !fn(word) {
			return nil
		}
	}
	return scanner.Err()
}

// loadDictionary reads the whole word source into memory. The server uses
// this once at startup and shares the list read-only across requests; the
// CLI streams instead via scanWords.
func loadDictionary(path string) ([]string, error) {
	logInfo("Loading dictionary from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	if err := scanWords(f, func(word string) bool {
		words = append(words, word)
		return true
	}); err != nil {
		return nil, err
	}
	logInfo("Successfully loaded %d words", len(words))
	return words, nil
}
