package main

import (
	"io"

	"github.com/samber/lo"
)

// SieveOptions configures one filtering run.
type SieveOptions struct {
	MinLength int  // inclusive lower bound on candidate length
	MaxLength int  // inclusive upper bound on candidate length
	Limit     int  // maximum candidates to emit, 0 means unlimited
	Sort      bool // rank survivors by frequency score before emitting
}

// withDefaults fills in the standard 5-letter window when a bound is unset.
func (o SieveOptions) withDefaults() SieveOptions {
	if o.MinLength <= 0 {
		o.MinLength = DefaultMinLength
	}
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxLength
	}
	return o
}

// Sieve folds the attempts into a fresh constraint table and streams the
// word source through it, one candidate at a time and in source order.
// Folding completes before the first candidate is read. A fold failure
// returns before any word is consumed; a source read failure returns the
// already-built table so callers can still show the diagnostic dump.
func Sieve(attempts []Attempt, source io.Reader, opts SieveOptions) (*ConstraintSet, []string, error) {
	opts = opts.withDefaults()

	cs := NewConstraintSet(opts.MinLength, opts.MaxLength)
	if err := cs.Fold(attempts); err != nil {
		return nil, nil, err
	}

	var candidates []string
	err := scanWords(source, func(word string) bool {
		if !cs.Test(word) {
			return true
		}
		candidates = append(candidates, word)
		// Ranking needs the full survivor list, so the scan only stops
		// early when emission order is the scan order.
		return opts.Sort || opts.Limit <= 0 || len(candidates) < opts.Limit
	})
	if err != nil {
		return cs, nil, err
	}
	return cs, capAndRank(cs, candidates, opts), nil
}

// SieveWords runs the same pipeline over an in-memory word list, for
// callers that filter one preloaded dictionary repeatedly.
func SieveWords(attempts []Attempt, words []string, opts SieveOptions) (*ConstraintSet, []string, error) {
	opts = opts.withDefaults()

	cs := NewConstraintSet(opts.MinLength, opts.MaxLength)
	if err := cs.Fold(attempts); err != nil {
		return nil, nil, err
	}

	candidates := lo.Filter(words, func(word string, _ int) bool {
		return cs.Test(word)
	})
	return cs, capAndRank(cs, candidates, opts), nil
}

// capAndRank applies the optional ranking pass and the exact output cap.
func capAndRank(cs *ConstraintSet, candidates []string, opts SieveOptions) []string {
	if opts.Sort {
		candidates = cs.Rank(candidates)
	}
	if opts.Limit > 0 && len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}
	return candidates
}
