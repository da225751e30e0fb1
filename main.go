package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		dictionary = flag.String("dictionary", getEnvString("WORDSIFT_DICTIONARY", ""), "path to the newline-delimited word list")
		minLength  = flag.Int("min", getEnvInt("WORDSIFT_MIN_LEN", DefaultMinLength), "minimum candidate length")
		maxLength  = flag.Int("max", getEnvInt("WORDSIFT_MAX_LEN", DefaultMaxLength), "maximum candidate length")
		limit      = flag.Int("limit", 0, "maximum number of candidates to emit, 0 for unlimited")
		sortOutput = flag.Bool("sort", false, "rank candidates by letter-frequency score")
		serve      = flag.Bool("serve", false, "run the HTTP filter service instead of a one-shot run")
		port       = flag.String("port", getEnvString("PORT", "8080"), "HTTP port for -serve")
	)
	flag.Parse()

	if *dictionary == "" {
		logFatal(ErrorNoDictionary)
	}

	if *serve {
		words, err := loadDictionary(*dictionary)
		if err != nil {
			logFatal("Failed to load dictionary: %v", err)
		}
		app := newApp(words, *dictionary)
		logInfo("Starting wordsift in %s mode", map[bool]string{true: "production", false: "development"}[app.IsProduction])
		app.startServer(app.newRouter(), *port)
		return
	}

	runFilter(flag.Args(), *dictionary, SieveOptions{
		MinLength: *minLength,
		MaxLength: *maxLength,
		Limit:     *limit,
		Sort:      *sortOutput,
	})
}

// runFilter is the one-shot CLI path: parse the attempts, then filter the
// dictionary to stdout. Fatal exits happen out here so filterTo's deferred
// close always runs first.
func runFilter(args []string, dictionary string, opts SieveOptions) {
	attempts, err := ParseAttempts(args)
	if err != nil {
		logFatal("Invalid attempts: %v", err)
	}
	if err := filterTo(os.Stdout, attempts, dictionary, opts); err != nil {
		logFatal("Filtering failed: %v", err)
	}
}

// filterTo folds the attempts, streams the dictionary through the
// constraint table, and writes the diagnostic dump followed by the
// surviving candidates to w. Validation and contradiction failures return
// before anything is written; a dictionary read failure returns after the
// dump.
func filterTo(w io.Writer, attempts []Attempt, dictionary string, opts SieveOptions) error {
	f, err := os.Open(dictionary)
	if err != nil {
		return err
	}
	defer f.Close()

	cs, candidates, err := Sieve(attempts, f, opts)
	if cs != nil {
		for _, line := range cs.Dump() {
			fmt.Fprintln(w, line)
		}
	}
	if err != nil {
		return err
	}
	for _, word := range candidates {
		fmt.Fprintln(w, word)
	}
	return nil
}
