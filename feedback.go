package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// NewAttempt validates and normalizes one guess/feedback pair. The guess is
// trimmed and lower-cased; the feedback markers are checked against the
// supported set before anything is folded.
func NewAttempt(guess, feedback string) (Attempt, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	feedback = strings.TrimSpace(feedback)

	if len(feedback) != len(guess) {
		return Attempt{}, fmt.Errorf("%s got %q/%q", ErrorLengthMismatch, guess, feedback)
	}
	for i := 0; i < len(guess); i++ {
		if !isAlphabetic(guess[i]) {
			return Attempt{}, fmt.Errorf("%s got %q at position %d of %q", ErrorGuessAlphabet, guess[i], i, guess)
		}
		switch feedback[i] {
		case MarkerEliminated, MarkerMisplaced, MarkerConfirmed:
		default:
			return Attempt{}, fmt.Errorf("%s got %q at position %d of %q", ErrorUnknownMarker, feedback[i], i, feedback)
		}
	}
	return Attempt{Guess: guess, Feedback: feedback}, nil
}

// ParseAttempts pairs up an alternating guess/feedback argument list into
// validated attempts. An odd argument count is a usage error.
func ParseAttempts(args []string) ([]Attempt, error) {
	if len(args)%2 != 0 {
		return nil, errors.New(ErrorOddAttempts)
	}
	attempts := make([]Attempt, 0, len(args)/2)
	for _, pair := range lo.Chunk(args, 2) {
		attempt, err := NewAttempt(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, nil
}

// signals splits the attempt into its excluded, misplaced and confirmed
// (index, letter) pairs. Pure derivation; alphabet checks happened in
// NewAttempt.
func (a Attempt) signals() (excluded, misplaced, confirmed []positionSignal) {
	for i := 0; i < len(a.Guess); i++ {
		sig := positionSignal{index: i, letter: a.Guess[i]}
		switch a.Feedback[i] {
		case MarkerEliminated:
			excluded = append(excluded, sig)
		case MarkerMisplaced:
			misplaced = append(misplaced, sig)
		case MarkerConfirmed:
			confirmed = append(confirmed, sig)
		}
	}
	return excluded, misplaced, confirmed
}
