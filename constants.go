package main

// Feedback marker characters, one per guess position
const (
	MarkerEliminated = '.' // letter is not in the solution
	MarkerMisplaced  = 'x' // letter is in the solution, not here
	MarkerConfirmed  = 'o' // letter is correct here
)

// Sieve configuration defaults
const (
	DefaultMinLength = 5 // Minimum candidate word length
	DefaultMaxLength = 5 // Maximum candidate word length
	AlphabetSize     = 26
)

// Route constants
const (
	RouteFilter      = "/filter"
	RouteConstraints = "/constraints"
	RouteHealth      = "/healthz"
)

// Error message constants
const (
	ErrorLengthMismatch = "Feedback length must match guess length."
	ErrorUnknownMarker  = "Unknown feedback marker."
	ErrorGuessAlphabet  = "Guess contains a non-alphabetic character."
	ErrorOddAttempts    = "Attempts must be alternating guess/feedback pairs."
	ErrorNoDictionary   = "Dictionary path is required."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

// letterFrequencies holds the relative frequency of each letter 'a' through
// 'z' in English text, in percent. Read-only after process start.
var letterFrequencies = [AlphabetSize]float64{
	8.167,  // a
	1.492,  // b
	2.782,  // c
	4.253,  // d
	12.702, // e
	2.228,  // f
	2.015,  // g
	6.094,  // h
	6.966,  // i
	0.153,  // j
	0.772,  // k
	4.025,  // l
	2.406,  // m
	6.749,  // n
	7.507,  // o
	1.929,  // p
	0.095,  // q
	5.987,  // r
	6.327,  // s
	9.056,  // t
	2.758,  // u
	0.978,  // v
	2.360,  // w
	0.150,  // x
	1.974,  // y
	0.074,  // z
}
