package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestScanWordsEarlyStop stops reading once the callback declines more.
func TestScanWordsEarlyStop(t *testing.T) {
	var seen []string
	err := scanWords(strings.NewReader(testDictionary), func(word string) bool {
		seen = append(seen, word)
		return len(seen) < 2
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertWords(t, seen, []string{"spire", "crate"})
}

// TestScanWordsNormalizes trims and lower-cases each line.
func TestScanWordsNormalizes(t *testing.T) {
	var seen []string
	err := scanWords(strings.NewReader(" SPIRE \n\n\tcrate\n"), func(word string) bool {
		seen = append(seen, word)
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertWords(t, seen, []string{"spire", "crate"})
}

// TestLoadDictionary reads a word file into memory.
func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(testDictionary), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	words, err := loadDictionary(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 7 {
		t.Errorf("expected 7 words, got %d: %v", len(words), words)
	}
	if words[0] != "spire" || words[6] != "since" {
		t.Errorf("file order not preserved: %v", words)
	}
}

// TestLoadDictionaryMissingFile propagates the I/O error.
func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := loadDictionary(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for a missing dictionary")
	}
}
