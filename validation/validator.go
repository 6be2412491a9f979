// Package validation inspects finished canvases for structural problems.
package validation

import (
	"fmt"

	"textcanvas/canvas"
)

// Checker validates a canvas. It always checks that wide glyphs are
// intact; line checks additionally verify that line-drawing glyphs only
// reach towards neighbours that reach back.
type Checker struct {
	issues     []Issue
	lineChecks bool
}

// Issue is one problem with its location.
type Issue struct {
	X, Y    int
	Char    rune
	Context string
	Message string
}

func (i Issue) String() string {
	if i.Context != "" {
		return fmt.Sprintf("(%d,%d) %q: %s [%s]", i.X, i.Y, i.Char, i.Message, i.Context)
	}
	return fmt.Sprintf("(%d,%d) %q: %s", i.X, i.Y, i.Char, i.Message)
}

// NewChecker creates a checker with line checks enabled.
func NewChecker() *Checker {
	return &Checker{lineChecks: true}
}

// SetLineChecks enables or disables line connectivity checks.
func (v *Checker) SetLineChecks(on bool) {
	v.lineChecks = on
}

// Check returns the issues found on c. A released canvas has none.
func (v *Checker) Check(c *canvas.Canvas) []Issue {
	v.issues = nil
	if c.Released() {
		return nil
	}

	for y := 0; y < c.Height(); y++ {
		row, err := c.Row(y)
		if err != nil {
			break
		}
		for x, cell := range row {
			v.checkWide(row, x, y, cell.Rune)
			if v.lineChecks {
				v.checkLine(c, x, y, cell.Rune)
			}
		}
	}
	return v.issues
}

func (v *Checker) checkWide(row []canvas.Cell, x, y int, r rune) {
	switch {
	case r == canvas.Continuation:
		if x == 0 || row[x-1].Rune == canvas.Continuation || canvas.RuneWidth(row[x-1].Rune) != 2 {
			v.addIssue(x, y, r, "", "continuation without a wide glyph on its left")
		}
	case canvas.RuneWidth(r) == 2:
		if x+1 >= len(row) {
			v.addIssue(x, y, r, "", "wide glyph in the last column")
		} else if row[x+1].Rune != canvas.Continuation {
			v.addIssue(x, y, r, fmt.Sprintf("east=%q", row[x+1].Rune), "wide glyph missing its right half")
		}
	}
}

// checkLine reports arms of r that point at a line glyph which does not
// reach back. Blanks, text and other glyphs end a line without error.
func (v *Checker) checkLine(c *canvas.Canvas, x, y int, r rune) {
	up, down, left, right, ok := canvas.LineArms(r)
	if !ok {
		return
	}

	neighbour := func(dx, dy int) (rune, bool) {
		nx, ny := x+dx, y+dy
		if nx < 0 || ny < 0 || nx >= c.Width() || ny >= c.Height() {
			return 0, false
		}
		cell, err := c.Cell(nx, ny)
		return cell.Rune, err == nil
	}

	check := func(reaches bool, dx, dy int, dir string, back func(u, d, l, r bool) bool) {
		if !reaches {
			return
		}
		n, inside := neighbour(dx, dy)
		if !inside {
			return
		}
		nu, nd, nl, nr, isLine := canvas.LineArms(n)
		if isLine && !back(nu, nd, nl, nr) {
			v.addIssue(x, y, r, fmt.Sprintf("%s=%q", dir, n), "line cannot connect to the "+dir)
		}
	}

	check(up, 0, -1, "north", func(_, d, _, _ bool) bool { return d })
	check(down, 0, 1, "south", func(u, _, _, _ bool) bool { return u })
	check(left, -1, 0, "west", func(_, _, _, r bool) bool { return r })
	check(right, 1, 0, "east", func(_, _, l, _ bool) bool { return l })
}

func (v *Checker) addIssue(x, y int, r rune, context, message string) {
	v.issues = append(v.issues, Issue{X: x, Y: y, Char: r, Context: context, Message: message})
}
