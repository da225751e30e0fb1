package main

import (
	"testing"
	"time"
)

// TestFormatUptime checks the human-readable duration formatting.
func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 5 * time.Second, want: "5 seconds"},
		{d: 1 * time.Second, want: "1 second"},
		{d: 3*time.Minute + 1*time.Second, want: "3 minutes, 1 second"},
		{d: 2*time.Hour + 1*time.Minute + 30*time.Second, want: "2 hours, 1 minute, 30 seconds"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.d); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestPlural checks the pluralization helper.
func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Error("plural(1) should be empty")
	}
	if plural(0) != "s" || plural(2) != "s" {
		t.Error("plural(n != 1) should be \"s\"")
	}
}

// TestGetEnvInt checks fallback and parse behaviour.
func TestGetEnvInt(t *testing.T) {
	t.Setenv("WORDSIFT_TEST_INT", "42")
	if got := getEnvInt("WORDSIFT_TEST_INT", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	t.Setenv("WORDSIFT_TEST_INT", "not-a-number")
	if got := getEnvInt("WORDSIFT_TEST_INT", 7); got != 7 {
		t.Errorf("expected fallback 7, got %d", got)
	}
	if got := getEnvInt("WORDSIFT_TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("expected fallback 7 for unset var, got %d", got)
	}
}

// TestGetEnvString checks fallback behaviour.
func TestGetEnvString(t *testing.T) {
	t.Setenv("WORDSIFT_TEST_STRING", "words.txt")
	if got := getEnvString("WORDSIFT_TEST_STRING", "fallback"); got != "words.txt" {
		t.Errorf("expected words.txt, got %q", got)
	}
	if got := getEnvString("WORDSIFT_TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

// TestGetEnvDuration checks fallback and parse behaviour.
func TestGetEnvDuration(t *testing.T) {
	t.Setenv("WORDSIFT_TEST_DURATION", "90s")
	if got := getEnvDuration("WORDSIFT_TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("expected 90s, got %v", got)
	}
	t.Setenv("WORDSIFT_TEST_DURATION", "soon")
	if got := getEnvDuration("WORDSIFT_TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("expected fallback 1m, got %v", got)
	}
}
