package board

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Position is a terminal cell coordinate, zero-indexed from the top-left.
type Position struct {
	Col int
	Row int
}

// Fixed anchors for the text column. The gallows scene floats right of the
// phrase; everything else keeps these positions regardless of phrase width.
var (
	// PromptAnchor is where the guess prompt begins.
	PromptAnchor = Position{Col: 1, Row: 2}

	// PhraseAnchor is where the hidden phrase is written.
	PhraseAnchor = Position{Col: 1, Row: 4}

	// GuessAnchor is where the guess list header is written.
	GuessAnchor = Position{Col: 1, Row: 8}

	// FarewellAnchor is where the end-of-game message is written.
	FarewellAnchor = Position{Col: 1, Row: 10}

	// ClosingAnchor is where the thank-you line is written.
	ClosingAnchor = Position{Col: 1, Row: 12}

	// HintAnchor is where the exit-key hint is written.
	HintAnchor = Position{Col: 1, Row: 14}
)

// gallowsOffset is the gap between the text column and the scaffold.
const gallowsOffset = 3

// gallowsRows holds the scaffold, indexed by screen row. Row 0 is blank so
// the beam hangs one line below the top edge.
var gallowsRows = strings.Split(`
  +---+
  |   |
  |
  |
  |
  |
==========`, "\n")

// bodyPart pairs a glyph with its placement relative to the board padding.
type bodyPart struct {
	glyph rune
	dCol  int
	row   int
}

// bodyParts lists the figure in draw order: head, torso, left arm, right
// arm, left leg, right leg. One part appears per life lost.
var bodyParts = [...]bodyPart{
	{glyph: 'O', dCol: 9, row: 3},
	{glyph: '|', dCol: 9, row: 4},
	{glyph: '/', dCol: 8, row: 4},
	{glyph: '\\', dCol: 10, row: 4},
	{glyph: '/', dCol: 8, row: 5},
	{glyph: '\\', dCol: 10, row: 5},
}

// FigureParts is the number of body parts a complete figure has.
const FigureParts = len(bodyParts)

// Canvas is the cell sink boards draw onto. tcell.Screen satisfies it, as
// does the simulation screen used in tests.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Board places the gallows scene relative to the phrase width so the
// figure never collides with the text column. It keeps no drawing state;
// every draw derives entirely from its arguments.
type Board struct {
	padding int
}

// New creates a board sized for a phrase occupying width cells.
func New(width int) *Board {
	return &Board{padding: width}
}

// Padding reports the phrase width the board was sized for.
func (b *Board) Padding() int {
	return b.padding
}

// DrawGallows draws the empty scaffold to the right of the text column.
func (b *Board) DrawGallows(c Canvas) {
	for row, line := range gallowsRows {
		b.Print(c, Position{Col: b.padding + gallowsOffset, Row: row}, line)
	}
}

// DrawFigure draws one body part per life already lost, in the fixed part
// order. Lives outside [0, FigureParts] clamp, so an over-provisioned
// lives counter simply delays the first part.
func (b *Board) DrawFigure(c Canvas, lives int) {
	lost := FigureParts - lives
	if lost < 0 {
		lost = 0
	} else if lost > FigureParts {
		lost = FigureParts
	}
	for _, part := range bodyParts[:lost] {
		c.SetContent(b.padding+part.dCol, part.row, part.glyph, nil, tcell.StyleDefault)
	}
}

// Print writes s one cell at a time starting at p, in the default style.
func (b *Board) Print(c Canvas, p Position, s string) {
	b.PrintStyled(c, p, s, tcell.StyleDefault)
}

// PrintStyled writes s one cell at a time starting at p.
func (b *Board) PrintStyled(c Canvas, p Position, s string, style tcell.Style) {
	for i, ch := range s {
		c.SetContent(p.Col+i, p.Row, ch, nil, style)
	}
}
