package game

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/loganhotz/hangman/board"
)

// Sounds is the cue surface the loop drives. Playback must never block
// the session; implementations are free to drop cues.
type Sounds interface {
	Correct()
	Incorrect()
	Reject()
	Won()
	Lost()
}

// Options adjust loop behavior around the session itself.
type Options struct {
	// WaitOnExit holds the farewell frame until a key is pressed, so the
	// result stays visible on alternate-screen terminals.
	WaitOnExit bool
}

// ErrScreenClosed reports the terminal event stream vanishing mid-session.
var ErrScreenClosed = errors.New("terminal event stream closed")

// Frame copy. The farewell line is chosen by how the session ended.
const (
	promptText      = "Guess: "
	guessListHeader = "Guesses"
	wonText         = "Congratulations, you guessed the secret phrase!"
	lostText        = "You were not able to figure out the secret phrase :("
	closingText     = "Thank you for playing."
	exitHintText    = "(press any key to exit)"
)

// Loop drives one full game session over a terminal screen: draw a frame,
// flush it in one batch, block for input, dispatch, repeat. Screen Init
// and Fini stay with the caller.
type Loop struct {
	screen  tcell.Screen
	board   *board.Board
	tracker *Tracker
	sounds  Sounds
	log     zerolog.Logger
	opts    Options
}

// NewLoop assembles a session loop around an initialized screen. sounds
// may be nil for a silent session.
func NewLoop(screen tcell.Screen, tracker *Tracker, sounds Sounds, log zerolog.Logger, opts Options) *Loop {
	return &Loop{
		screen:  screen,
		board:   board.New(tracker.Padding()),
		tracker: tracker,
		sounds:  sounds,
		log:     log,
		opts:    opts,
	}
}

// Run plays the session to completion and shows the farewell frame. It
// returns ErrScreenClosed if the terminal goes away, in which case no
// farewell is drawn.
func (l *Loop) Run() error {
	for !l.tracker.Done() {
		l.drawFrame()
		l.screen.Show()

		in, ok := readInput(l.screen)
		if !ok {
			return ErrScreenClosed
		}
		switch in.Kind {
		case InputQuit:
			l.log.Debug().Msg("quit requested")
			l.tracker.Abandon()
		case InputGuess:
			l.dispatch(in.Char)
		}
	}
	return l.farewell()
}

// drawFrame paints one play frame: gallows scene, guess history, masked
// phrase, prompt. Nothing reaches the terminal until Show runs.
func (l *Loop) drawFrame() {
	l.screen.Clear()
	l.board.DrawGallows(l.screen)
	l.board.DrawFigure(l.screen, l.tracker.Lives())
	l.drawGuessList()
	l.board.Print(l.screen, board.PhraseAnchor, l.tracker.HiddenPhrase())
	l.board.Print(l.screen, board.PromptAnchor, promptText)
	l.screen.ShowCursor(board.PromptAnchor.Col+len(promptText), board.PromptAnchor.Row)
}

// drawGuessList writes the guess history header and entries.
func (l *Loop) drawGuessList() {
	l.board.Print(l.screen, board.GuessAnchor, guessListHeader)
	entries := board.Position{Col: board.GuessAnchor.Col + 1, Row: board.GuessAnchor.Row + 1}
	l.board.Print(l.screen, entries, l.tracker.GuessList())
}

// dispatch runs one guess through the tracker and routes the result to
// the log and the sound cues. Rejected input leaves the session as it
// was; the rejection is feedback, not failure.
func (l *Loop) dispatch(r rune) {
	outcome, err := l.tracker.Guess(r)
	if err != nil {
		l.log.Debug().Err(err).Str("input", string(r)).Msg("guess rejected")
		if l.sounds != nil {
			l.sounds.Reject()
		}
		return
	}
	l.log.Debug().
		Str("guess", string(r)).
		Str("outcome", outcome.String()).
		Int("lives", l.tracker.Lives()).
		Msg("guess evaluated")

	if l.sounds == nil {
		return
	}
	switch outcome {
	case OutcomeCorrect:
		l.sounds.Correct()
	case OutcomeIncorrect:
		l.sounds.Incorrect()
	case OutcomeWon:
		l.sounds.Won()
	case OutcomeLost:
		l.sounds.Lost()
	}
}

// farewell redraws the final board and issues exactly one closing
// message. A win keeps the figure as it stood; a loss completes it and
// reveals the phrase; an abandoned session reveals the phrase without a
// verdict.
func (l *Loop) farewell() error {
	l.screen.Clear()
	l.screen.HideCursor()
	l.board.DrawGallows(l.screen)
	l.drawGuessList()

	switch l.tracker.State() {
	case StateWon:
		l.board.DrawFigure(l.screen, l.tracker.Lives())
		l.board.Print(l.screen, board.PhraseAnchor, l.tracker.HiddenPhrase())
		won := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		l.board.PrintStyled(l.screen, board.FarewellAnchor, wonText, won)
	case StateLost:
		l.board.DrawFigure(l.screen, 0)
		l.board.Print(l.screen, board.PhraseAnchor, l.tracker.Phrase())
		lost := tcell.StyleDefault.Foreground(tcell.ColorRed)
		l.board.PrintStyled(l.screen, board.FarewellAnchor, lostText, lost)
		l.board.Print(l.screen, board.ClosingAnchor, closingText)
	default:
		l.board.DrawFigure(l.screen, l.tracker.Lives())
		l.board.Print(l.screen, board.PhraseAnchor, l.tracker.Phrase())
		l.board.Print(l.screen, board.ClosingAnchor, closingText)
	}

	if l.opts.WaitOnExit {
		l.board.PrintStyled(l.screen, board.HintAnchor, exitHintText, tcell.StyleDefault.Dim(true))
	}
	l.screen.Show()

	if l.opts.WaitOnExit {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return ErrScreenClosed
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return nil
			}
		}
	}
	return nil
}
