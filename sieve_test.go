package main

import (
	"strings"
	"testing"
)

const testDictionary = "spire\ncrate\nplate\nridge\nrinse\nshire\nsince\n"

// TestSieveWorkedScenario runs the irate/xx..o scenario end to end.
func TestSieveWorkedScenario(t *testing.T) {
	attempts := mustAttempts(t, TestGuessIrate, TestFeedbackIrate)

	cs, candidates, err := Sieve(attempts, strings.NewReader(testDictionary), SieveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs == nil {
		t.Fatal("expected a constraint table")
	}

	want := []string{"spire", "ridge", "rinse", "shire"}
	assertWords(t, candidates, want)
}

// TestSieveOrderPreservation checks that unranked output follows scan order.
func TestSieveOrderPreservation(t *testing.T) {
	_, candidates, err := Sieve(nil, strings.NewReader(testDictionary), SieveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertWords(t, candidates, []string{"spire", "crate", "plate", "ridge", "rinse", "shire", "since"})
}

// TestSieveLimitExact emits exactly limit candidates, no more.
func TestSieveLimitExact(t *testing.T) {
	_, candidates, err := Sieve(nil, strings.NewReader(testDictionary), SieveOptions{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertWords(t, candidates, []string{"spire", "crate"})
}

// TestSieveSortThenLimit ranks the full survivor list before capping.
func TestSieveSortThenLimit(t *testing.T) {
	cs, candidates, err := Sieve(nil, strings.NewReader(testDictionary), SieveOptions{Sort: true, Limit: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %v", candidates)
	}
	for i := 1; i < len(candidates); i++ {
		if cs.scoreWord(candidates[i-1]) < cs.scoreWord(candidates[i]) {
			t.Errorf("candidates not in descending score order: %v", candidates)
		}
	}
}

// TestSieveDirtyInput trims per-line whitespace and skips blank lines.
func TestSieveDirtyInput(t *testing.T) {
	source := "  spire  \n\n\tCRATE\n\n"
	_, candidates, err := Sieve(nil, strings.NewReader(source), SieveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertWords(t, candidates, []string{"spire", "crate"})
}

// TestSieveContradiction returns no table and no candidates.
func TestSieveContradiction(t *testing.T) {
	attempts := mustAttempts(t, "aabb", "o.x.")

	cs, candidates, err := Sieve(attempts, strings.NewReader(testDictionary), SieveOptions{MinLength: 4, MaxLength: 4})
	if err == nil {
		t.Fatal("expected contradiction error")
	}
	if cs != nil || candidates != nil {
		t.Errorf("no partial results expected, got table=%v candidates=%v", cs, candidates)
	}
}

// TestSieveWordsMatchesStreaming compares both pipeline entry points.
func TestSieveWordsMatchesStreaming(t *testing.T) {
	attempts := mustAttempts(t, TestGuessIrate, TestFeedbackIrate)
	words := strings.Fields(testDictionary)

	_, streamed, err := Sieve(attempts, strings.NewReader(testDictionary), SieveOptions{Sort: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, preloaded, err := SieveWords(attempts, words, SieveOptions{Sort: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertWords(t, streamed, preloaded)
}

func assertWords(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}
