package main

// Attempt is one guess and its aligned per-character feedback markers.
type Attempt struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

// positionSignal ties one guess position to the letter seen there.
type positionSignal struct {
	index  int
	letter byte
}

// LetterConstraint accumulates everything known about a single letter
// across all folded attempts.
type LetterConstraint struct {
	Letter    byte             // 'a' through 'z'
	Frequency float64          // static English-corpus weight
	Excluded  bool             // letter provably absent from the solution
	Confirmed map[int]struct{} // positions where the letter is known correct
	Rejected  map[int]struct{} // positions where the letter is present but wrong
}

// FilterRequest is the JSON body accepted by POST /filter.
type FilterRequest struct {
	Attempts  []Attempt `json:"attempts"`
	MinLength int       `json:"min"`
	MaxLength int       `json:"max"`
	Limit     int       `json:"limit"`
	Sort      bool      `json:"sort"`
}

// FilterResponse carries the constraint table dump and the surviving
// candidates back to the client.
type FilterResponse struct {
	Constraints []string `json:"constraints"`
	Candidates  []string `json:"candidates"`
	Total       int      `json:"total"`
}

type contextKey string
