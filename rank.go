package main

import (
	"sort"

	"github.com/samber/lo"
)

// scoredWord pairs a candidate with its frequency-sum score.
type scoredWord struct {
	word  string
	score float64
}

// scoreWord sums the frequency weights of a word's distinct letters.
// Duplicate letters count once.
func (cs *ConstraintSet) scoreWord(word string) float64 {
	total := 0.0
	for _, c := range lo.Uniq([]byte(word)) {
		if isAlphabetic(c) {
			total += cs.entry(c).Frequency
		}
	}
	return total
}

// Rank orders candidates by descending distinct-letter frequency score.
// The sort is stable, so equal scores keep their first-seen order and the
// result is deterministic for a given input sequence.
func (cs *ConstraintSet) Rank(words []string) []string {
	scored := lo.Map(words, func(word string, _ int) scoredWord {
		return scoredWord{word: word, score: cs.scoreWord(word)}
	})
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return lo.Map(scored, func(s scoredWord, _ int) string {
		return s.word
	})
}
