package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/loganhotz/hangman/game"
)

// playedTracker builds a finished session for output tests
func playedTracker(t *testing.T, phrase, guesses string, abandon bool) *game.Tracker {
	t.Helper()
	tracker, err := game.NewTracker(phrase, 6)
	if err != nil {
		t.Fatalf("NewTracker(%q): %v", phrase, err)
	}
	for _, r := range guesses {
		if _, err := tracker.Guess(r); err != nil {
			t.Fatalf("Guess(%q): %v", r, err)
		}
	}
	if abandon {
		tracker.Abandon()
	}
	return tracker
}

// TestPhraseFromArgs verifies command line words join into one phrase
func TestPhraseFromArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no_args", nil, ""},
		{"single_word", []string{"cat"}, "cat"},
		{"multi_word", []string{"Roo?", "And", "Ginger?!"}, "Roo? And Ginger?!"},
		{"blank_args", []string{"", ""}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := phraseFromArgs(tc.args); got != tc.want {
				t.Errorf("phraseFromArgs(%v) = %q, want %q", tc.args, got, tc.want)
			}
		})
	}
}

// TestPromptPhrase verifies interactive acquisition reads one trimmed line
func TestPromptPhrase(t *testing.T) {
	var out bytes.Buffer
	phrase, err := promptPhrase(strings.NewReader("  a secret phrase \n"), &out)
	if err != nil {
		t.Fatalf("promptPhrase: %v", err)
	}
	if phrase != "a secret phrase" {
		t.Errorf("phrase = %q, want trimmed input", phrase)
	}
	if !strings.Contains(out.String(), "Enter the secret phrase:") {
		t.Errorf("prompt output = %q, want the phrase prompt", out.String())
	}
}

// TestPromptPhraseClosedInput verifies a closed stdin is an error
func TestPromptPhraseClosedInput(t *testing.T) {
	var out bytes.Buffer
	if _, err := promptPhrase(strings.NewReader(""), &out); err == nil {
		t.Error("expected an error for closed input")
	}
}

// TestPrintOutcome verifies each verdict names the phrase
func TestPrintOutcome(t *testing.T) {
	cases := []struct {
		name     string
		tracker  *game.Tracker
		wantPart string
	}{
		{"won", playedTracker(t, "cat", "cat", false), "You guessed it!"},
		{"lost", playedTracker(t, "ox", "qwerty", false), "Out of lives!"},
		{"abandoned", playedTracker(t, "cat", "c", true), "Game abandoned."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			printOutcome(&out, tc.tracker)
			if !strings.Contains(out.String(), tc.wantPart) {
				t.Errorf("output %q, want it to contain %q", out.String(), tc.wantPart)
			}
			if !strings.Contains(out.String(), tc.tracker.Phrase()) {
				t.Errorf("output %q, want it to name the phrase", out.String())
			}
		})
	}
}

// TestPrintWelcome verifies the greeting and numbered rules render
func TestPrintWelcome(t *testing.T) {
	var out bytes.Buffer
	printWelcome(&out)

	if !strings.Contains(out.String(), welcomeText) {
		t.Errorf("output %q, want the welcome line", out.String())
	}
	for i, rule := range rulesText {
		want := fmt.Sprintf("%d. %s", i+1, rule)
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing rule %q", want)
		}
	}
}
