package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/loganhotz/hangman/audio"
	"github.com/loganhotz/hangman/config"
	"github.com/loganhotz/hangman/game"
	"github.com/loganhotz/hangman/scores"
)

// Line-mode copy, shown outside the screen session.
const welcomeText = "Welcome to Hangman!"

var rulesText = []string{
	"Guess the secret phrase one letter at a time.",
	"Each round, type a letter and press Enter to submit it.",
	"A wrong letter costs one life; spend them all and the figure hangs.",
	"Press Ctrl+Q at any time to leave the game.",
}

func main() {
	var screen tcell.Screen

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, or the trace lands on the alternate screen and vanishes.
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nHANGMAN CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Info().Int("lives", cfg.Lives).Msg("starting hangman")

	phrase := phraseFromArgs(os.Args[1:])
	if phrase == "" {
		printWelcome(os.Stdout)
		phrase, err = promptPhrase(os.Stdin, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "No phrase to play with: %v\n", err)
			os.Exit(1)
		}
	}

	tracker, err := game.NewTracker(phrase, cfg.Lives)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid phrase: %v\n", err)
		os.Exit(1)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen = s

	cues := audio.NewCues(cfg.Mute)
	if err := cues.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing silent")
	} else {
		defer cues.Close()
	}

	loop := game.NewLoop(screen, tracker, cues, log.Logger, game.Options{
		WaitOnExit: cfg.WaitOnExit,
	})
	runErr := loop.Run()

	// Leave the alternate screen before any line-mode output.
	screen.Fini()

	if runErr != nil {
		log.Error().Err(runErr).Msg("session aborted")
		fmt.Fprintf(os.Stderr, "Terminal session ended: %v\n", runErr)
		os.Exit(1)
	}

	printOutcome(os.Stdout, tracker)
	log.Info().
		Str("state", tracker.State().String()).
		Int("lives", tracker.Lives()).
		Int("guesses", len(tracker.Guesses())).
		Msg("session finished")

	if cfg.ScoresPath != "" {
		recordScore(cfg.ScoresPath, tracker)
	}
}

// phraseFromArgs joins the command line into a phrase, if one was given.
func phraseFromArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// printWelcome writes the greeting and rules ahead of the phrase prompt.
func printWelcome(out io.Writer) {
	fmt.Fprintln(out, welcomeText)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "The rules are simple:")
	for i, rule := range rulesText {
		fmt.Fprintf(out, "  %d. %s\n", i+1, rule)
	}
	fmt.Fprintln(out)
}

// promptPhrase asks for the secret phrase on the line terminal. The
// input is not masked; the expectation is that someone other than the
// player types it, same as passing it on the command line.
func promptPhrase(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the secret phrase: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read phrase: %w", err)
		}
		return "", errors.New("no phrase given")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// printOutcome writes the line-mode result once the screen session ends,
// so the verdict survives leaving the alternate screen.
func printOutcome(out io.Writer, tracker *game.Tracker) {
	switch tracker.State() {
	case game.StateWon:
		fmt.Fprintf(out, "You guessed it! The phrase was %q.\n", tracker.Phrase())
		fmt.Fprintf(out, "Lives to spare: %d.\n", tracker.Lives())
	case game.StateLost:
		fmt.Fprintf(out, "Out of lives! The phrase was %q.\n", tracker.Phrase())
	default:
		fmt.Fprintf(out, "Game abandoned. The phrase was %q.\n", tracker.Phrase())
	}
}

// recordScore appends the session to the ledger and prints the running
// tally. Ledger trouble never fails the game; it is logged and skipped.
func recordScore(path string, tracker *game.Tracker) {
	store, err := scores.OpenSQLite(path)
	if err != nil {
		log.Warn().Err(err).Msg("scores ledger unavailable")
		return
	}
	defer store.Close()

	outcome := tracker.State().String()
	if tracker.State() == game.StatePlaying {
		outcome = "abandoned"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := scores.Result{
		ID:        scores.NewID(),
		When:      time.Now().UTC(),
		Phrase:    tracker.Phrase(),
		Outcome:   outcome,
		LivesLeft: tracker.Lives(),
		Guesses:   len(tracker.Guesses()),
	}
	if err := store.Record(ctx, result); err != nil {
		log.Warn().Err(err).Msg("failed to record result")
		return
	}

	if sum, err := store.Summary(ctx); err == nil {
		fmt.Printf("Record: %d won, %d lost in %d games.\n", sum.Won, sum.Lost, sum.Games)
	}
}
