package main

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// ConstraintSet is the per-letter constraint table plus the accepted length
// window. It is built by Fold and treated as read-only afterwards, so a
// finished set can be shared across goroutines.
type ConstraintSet struct {
	letters   [AlphabetSize]LetterConstraint
	minLength int
	maxLength int
}

// ContradictionError reports a letter asserted both eliminated and present.
// Well-formed feedback can never produce this, so folding stops rather than
// silently filtering with a broken table.
type ContradictionError struct {
	Attempt int    // zero-based index of the offending attempt
	Letter  byte
	Signal  string // "confirmed", "misplaced" or "excluded"
}

func (e *ContradictionError) Error() string {
	if e.Signal == "excluded" {
		return fmt.Sprintf("attempt %d: letter %q eliminated but already marked present", e.Attempt+1, e.Letter)
	}
	return fmt.Sprintf("attempt %d: letter %q marked %s but already eliminated", e.Attempt+1, e.Letter, e.Signal)
}

// NewConstraintSet returns an empty table accepting words within [minLength, maxLength].
func NewConstraintSet(minLength, maxLength int) *ConstraintSet {
	cs := &ConstraintSet{
		minLength: minLength,
		maxLength: maxLength,
	}
	for i := range cs.letters {
		cs.letters[i] = LetterConstraint{
			Letter:    byte('a' + i),
			Frequency: letterFrequencies[i],
			Confirmed: make(map[int]struct{}),
			Rejected:  make(map[int]struct{}),
		}
	}
	return cs
}

// isAlphabetic reports whether c is a supported (lower-case ASCII) letter.
func isAlphabetic(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func (cs *ConstraintSet) entry(c byte) *LetterConstraint {
	return &cs.letters[c-'a']
}

// Fold accumulates every attempt into the table, in input order. Within one
// attempt the eliminations are recorded before the confirmed and misplaced
// signals are checked, so a letter that is both eliminated and kept in the
// same guess trips the contradiction check. The check runs both ways: an
// elimination of a letter that an earlier attempt already confirmed or
// misplaced is just as impossible as the reverse. Position inserts are
// deduplicated, which makes folding the same attempt twice a no-op.
func (cs *ConstraintSet) Fold(attempts []Attempt) error {
	for n, attempt := range attempts {
		excluded, misplaced, confirmed := attempt.signals()

		for _, sig := range excluded {
			e := cs.entry(sig.letter)
			if len(e.Confirmed) > 0 || len(e.Rejected) > 0 {
				return &ContradictionError{Attempt: n, Letter: sig.letter, Signal: "excluded"}
			}
			e.Excluded = true
		}
		for _, sig := range confirmed {
			e := cs.entry(sig.letter)
			if e.Excluded {
				return &ContradictionError{Attempt: n, Letter: sig.letter, Signal: "confirmed"}
			}
			e.Confirmed[sig.index] = struct{}{}
		}
		for _, sig := range misplaced {
			e := cs.entry(sig.letter)
			if e.Excluded {
				return &ContradictionError{Attempt: n, Letter: sig.letter, Signal: "misplaced"}
			}
			e.Rejected[sig.index] = struct{}{}
		}
	}
	return nil
}

// MandatoryLetters returns the letters known to be somewhere in the
// solution: every letter with at least one confirmed or rejected position.
func (cs *ConstraintSet) MandatoryLetters() map[byte]struct{} {
	required := make(map[byte]struct{})
	for i := range cs.letters {
		e := &cs.letters[i]
		if len(e.Confirmed) > 0 || len(e.Rejected) > 0 {
			required[e.Letter] = struct{}{}
		}
	}
	return required
}

// Test reports whether word is still a viable solution under the
// accumulated constraints.
//
// The mandatory-letter check is presence-only: a letter confirmed in two
// positions is satisfied by a single occurrence, so words that need a
// repeated letter are under-constrained. Known heuristic limitation.
func (cs *ConstraintSet) Test(word string) bool {
	if len(word) < cs.minLength || len(word) > cs.maxLength {
		return false
	}
	pending := cs.MandatoryLetters()
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !isAlphabetic(c) {
			return false
		}
		e := cs.entry(c)
		if e.Excluded {
			return false
		}
		if _, bad := e.Rejected[i]; bad {
			return false
		}
		if cs.slotOwnedByOther(i, c) {
			return false
		}
		delete(pending, c)
	}
	return len(pending) == 0
}

// slotOwnedByOther reports whether any letter other than c is confirmed at
// position i. When two different letters end up confirmed at the same
// index, every candidate fails here: whichever letter the word carries, the
// other one still claims the slot.
func (cs *ConstraintSet) slotOwnedByOther(i int, c byte) bool {
	for j := range cs.letters {
		other := &cs.letters[j]
		if other.Letter == c {
			continue
		}
		if _, ok := other.Confirmed[i]; ok {
			return true
		}
	}
	return false
}

// Dump renders the table one line per letter, alphabetically, for the
// diagnostic output that precedes the candidate list.
func (cs *ConstraintSet) Dump() []string {
	lines := make([]string, 0, AlphabetSize)
	for i := range cs.letters {
		e := &cs.letters[i]
		lines = append(lines, fmt.Sprintf("%c excluded=%-5t confirmed=%v rejected=%v",
			e.Letter, e.Excluded, sortedPositions(e.Confirmed), sortedPositions(e.Rejected)))
	}
	return lines
}

// sortedPositions flattens a position set into ascending order for display.
func sortedPositions(set map[int]struct{}) []int {
	positions := lo.Keys(set)
	sort.Ints(positions)
	return positions
}
