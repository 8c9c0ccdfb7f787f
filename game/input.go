package game

import (
	"github.com/gdamore/tcell/v2"
)

// InputKind classifies what one round of typing reduced to
type InputKind uint8

const (
	InputNone  InputKind = iota // Nothing usable, repaint and re-prompt
	InputGuess                  // A character to run through the tracker
	InputQuit                   // Session quit request
)

// Input is the reduced result of one blocking input round.
type Input struct {
	Kind InputKind
	Char rune
}

// readInput blocks until one round of typing reduces to a result. Typed
// characters accumulate until Enter submits them and only the first one
// counts, matching the single-letter guess rule. Ctrl+Q, Ctrl+C and
// Escape request a session quit. A resize resyncs the screen and yields
// InputNone so the next loop pass repaints. A nil event means the event
// stream is gone, reported as ok false.
func readInput(screen tcell.Screen) (Input, bool) {
	var collected []rune
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return Input{}, false
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlQ, tcell.KeyCtrlC, tcell.KeyEscape:
				return Input{Kind: InputQuit}, true
			case tcell.KeyEnter:
				if len(collected) == 0 {
					return Input{Kind: InputNone}, true
				}
				return Input{Kind: InputGuess, Char: collected[0]}, true
			case tcell.KeyRune:
				collected = append(collected, ev.Rune())
			}
		case *tcell.EventResize:
			screen.Sync()
			return Input{Kind: InputNone}, true
		}
	}
}
