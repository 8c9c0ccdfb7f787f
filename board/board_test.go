package board

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// cellRune reads the primary rune at a simulation screen cell
func cellRune(screen tcell.SimulationScreen, col, row int) rune {
	ch, _, _, _ := screen.GetContent(col, row)
	return ch
}

// TestDrawGallowsPlacement verifies the scaffold lands right of the text column
func TestDrawGallowsPlacement(t *testing.T) {
	for _, padding := range []int{0, 3, 11} {
		t.Run(fmt.Sprintf("padding_%d", padding), func(t *testing.T) {
			screen := tcell.NewSimulationScreen("UTF-8")
			screen.Init()
			defer screen.Fini()
			screen.SetSize(80, 24)

			b := New(padding)
			b.DrawGallows(screen)

			p := padding
			checks := []struct {
				col, row int
				want     rune
			}{
				{p + 3, 0, ' '},  // top row stays blank
				{p + 5, 1, '+'},  // beam left joint
				{p + 9, 1, '+'},  // beam right joint
				{p + 9, 2, '|'},  // noose
				{p + 5, 2, '|'},  // post
				{p + 5, 3, '|'},
				{p + 5, 4, '|'},
				{p + 5, 5, '|'},
				{p + 5, 6, '|'},
				{p + 3, 7, '='},  // base left edge
				{p + 12, 7, '='}, // base right edge
			}
			for _, c := range checks {
				if got := cellRune(screen, c.col, c.row); got != c.want {
					t.Errorf("cell (%d,%d) = %q, want %q", c.col, c.row, got, c.want)
				}
			}
		})
	}
}

// TestDrawFigureProgression verifies one part appears per life lost, in order
func TestDrawFigureProgression(t *testing.T) {
	const padding = 5
	parts := []struct {
		name     string
		col, row int
		glyph    rune
	}{
		{"head", padding + 9, 3, 'O'},
		{"torso", padding + 9, 4, '|'},
		{"left arm", padding + 8, 4, '/'},
		{"right arm", padding + 10, 4, '\\'},
		{"left leg", padding + 8, 5, '/'},
		{"right leg", padding + 10, 5, '\\'},
	}

	cases := []struct {
		name  string
		lives int
		drawn int
	}{
		{"six_lives_bare_gallows", 6, 0},
		{"five_lives_head", 5, 1},
		{"four_lives_torso", 4, 2},
		{"three_lives_left_arm", 3, 3},
		{"two_lives_right_arm", 2, 4},
		{"one_life_left_leg", 1, 5},
		{"zero_lives_complete", 0, 6},
		{"over_provisioned_lives", 9, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			screen := tcell.NewSimulationScreen("UTF-8")
			screen.Init()
			defer screen.Fini()
			screen.SetSize(80, 24)

			b := New(padding)
			b.DrawFigure(screen, tc.lives)

			for i, part := range parts {
				got := cellRune(screen, part.col, part.row)
				if i < tc.drawn && got != part.glyph {
					t.Errorf("%s: cell (%d,%d) = %q, want %q", part.name, part.col, part.row, got, part.glyph)
				}
				if i >= tc.drawn && got != ' ' {
					t.Errorf("%s: cell (%d,%d) = %q, want blank", part.name, part.col, part.row, got)
				}
			}
		})
	}
}

// TestDrawFigureIdempotent verifies repeated draws never advance the figure
func TestDrawFigureIdempotent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	const padding = 4
	b := New(padding)
	b.DrawFigure(screen, 5)
	b.DrawFigure(screen, 5)
	b.DrawFigure(screen, 5)

	if got := cellRune(screen, padding+9, 3); got != 'O' {
		t.Errorf("head cell = %q, want 'O'", got)
	}
	if got := cellRune(screen, padding+9, 4); got != ' ' {
		t.Errorf("torso cell = %q, want blank after repeated single-loss draws", got)
	}
}

// TestPrint verifies cursor-addressed string placement and styling
func TestPrint(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(80, 24)

	b := New(0)
	b.Print(screen, Position{Col: 2, Row: 9}, "a, b")

	want := "a, b"
	for i, ch := range want {
		if got := cellRune(screen, 2+i, 9); got != ch {
			t.Errorf("cell (%d,9) = %q, want %q", 2+i, got, ch)
		}
	}
	if got := cellRune(screen, 2+len(want), 9); got != ' ' {
		t.Errorf("cell past end = %q, want blank", got)
	}

	bold := tcell.StyleDefault.Bold(true)
	b.PrintStyled(screen, Position{Col: 1, Row: 10}, "won", bold)
	_, _, style, _ := screen.GetContent(1, 10)
	if style != bold {
		t.Errorf("styled cell kept style %v, want bold", style)
	}
}

// TestBoardPadding verifies the stored phrase width and part budget
func TestBoardPadding(t *testing.T) {
	if got := New(7).Padding(); got != 7 {
		t.Errorf("Padding() = %d, want 7", got)
	}
	if FigureParts != 6 {
		t.Errorf("FigureParts = %d, want 6", FigureParts)
	}
}
