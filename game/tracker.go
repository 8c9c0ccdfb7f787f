package game

import (
	"errors"
	"fmt"
	"strings"
)

// State represents the lifecycle of one guessing session
type State uint8

const (
	StatePlaying State = iota // Accepting guesses
	StateWon                  // Every letter revealed
	StateLost                 // Lives exhausted
)

// String returns the display form of a state
func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Outcome classifies the effect of one guess, for UI and sound routing
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // Rejected input, nothing changed
	OutcomeCorrect                  // Letter present, positions revealed
	OutcomeIncorrect                // Letter absent, one life charged
	OutcomeWon                      // Guess completed the phrase
	OutcomeLost                     // Guess spent the final life
)

// String returns the display form of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

var (
	// ErrInvalidGuess rejects input outside the ASCII letter range.
	ErrInvalidGuess = errors.New("guess must be an ascii letter")

	// ErrDuplicateGuess rejects a letter already recorded this session.
	ErrDuplicateGuess = errors.New("letter already guessed")

	// ErrFinished rejects guesses after the session has ended.
	ErrFinished = errors.New("game already finished")
)

// Tracker owns all mutable state for one guessing session: the secret
// phrase, the ordered set of guessed letters, the lives counter, and the
// end-of-session flag. It is single-threaded by design and not reusable
// once Done reports true.
type Tracker struct {
	phrase  string
	folded  string // lowercase form of phrase, for containment checks
	guesses []rune
	lives   int
	state   State
	done    bool
}

// NewTracker validates phrase and opens a session with the given number
// of starting lives. The phrase must be pure ASCII, non-empty, and must
// contain at least one letter to guess.
func NewTracker(phrase string, lives int) (*Tracker, error) {
	if phrase == "" {
		return nil, errors.New("phrase is empty")
	}
	if lives < 1 {
		return nil, fmt.Errorf("lives must be positive, got %d", lives)
	}
	hasLetter := false
	for i := 0; i < len(phrase); i++ {
		if phrase[i] >= 128 {
			return nil, fmt.Errorf("phrase contains non-ascii byte %#x at offset %d", phrase[i], i)
		}
		if _, ok := foldLetter(rune(phrase[i])); ok {
			hasLetter = true
		}
	}
	if !hasLetter {
		return nil, errors.New("phrase has no letters to guess")
	}
	return &Tracker{
		phrase: phrase,
		folded: strings.ToLower(phrase),
		lives:  lives,
	}, nil
}

// Guess runs one character through the session: fold to lowercase, reject
// repeats, record, charge a life on a miss, then check the end conditions.
// The completion check runs last on every recorded guess, so a guess that
// both spends the final life and completes the phrase resolves as a win.
// Rejected input never changes session state.
func (t *Tracker) Guess(r rune) (Outcome, error) {
	if t.done {
		return OutcomeNone, ErrFinished
	}
	letter, ok := foldLetter(r)
	if !ok {
		return OutcomeNone, ErrInvalidGuess
	}
	if t.guessed(letter) {
		return OutcomeNone, ErrDuplicateGuess
	}
	t.guesses = append(t.guesses, letter)

	outcome := OutcomeCorrect
	if !strings.ContainsRune(t.folded, letter) {
		outcome = OutcomeIncorrect
		t.lives--
		if t.lives == 0 {
			outcome = OutcomeLost
			t.state = StateLost
			t.done = true
		}
	}
	if t.HiddenPhrase() == t.phrase {
		outcome = OutcomeWon
		t.state = StateWon
		t.done = true
	}
	return outcome, nil
}

// Abandon ends the session on the player's explicit quit request. The
// state stays as it was, so an abandoned game reports neither win nor
// loss.
func (t *Tracker) Abandon() {
	t.done = true
}

// HiddenPhrase renders the phrase with unguessed letters masked by '_'.
// A letter shows once its lowercase form has been guessed; every
// non-letter character passes through unchanged.
func (t *Tracker) HiddenPhrase() string {
	var sb strings.Builder
	sb.Grow(len(t.phrase))
	for _, r := range t.phrase {
		letter, ok := foldLetter(r)
		if !ok || t.guessed(letter) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Phrase returns the secret phrase.
func (t *Tracker) Phrase() string {
	return t.phrase
}

// Lives reports the lives remaining.
func (t *Tracker) Lives() int {
	return t.lives
}

// State reports the session lifecycle state.
func (t *Tracker) State() State {
	return t.state
}

// Done reports whether the session is over, by win, loss, or abandonment.
func (t *Tracker) Done() bool {
	return t.done
}

// Guesses returns the recorded letters in guess order.
func (t *Tracker) Guesses() []rune {
	out := make([]rune, len(t.guesses))
	copy(out, t.guesses)
	return out
}

// GuessList returns the comma-joined display form of the guess history.
func (t *Tracker) GuessList() string {
	var sb strings.Builder
	for i, g := range t.guesses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune(g)
	}
	return sb.String()
}

// Padding reports the cell width of the phrase, used to size the board.
func (t *Tracker) Padding() int {
	return len(t.phrase)
}

// guessed reports whether letter is already recorded.
func (t *Tracker) guessed(letter rune) bool {
	for _, g := range t.guesses {
		if g == letter {
			return true
		}
	}
	return false
}

// foldLetter maps an ASCII letter to its lowercase form, reporting
// whether r was a letter at all.
func foldLetter(r rune) (rune, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return r, true
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A'), true
	default:
		return 0, false
	}
}
