package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Box drawing runes
var boxRunes = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

// Region is a clipped rectangle of the screen, coordinates relative to its origin
type Region struct {
	Screen tcell.Screen
	X, Y   int
	W, H   int
}

// Sub returns a nested region clipped to r
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = min(w, r.W-x)
	h = min(h, r.H-y)
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: max(w, 0), H: max(h, 0)}
}

// Contains reports whether absolute screen cell (x, y) lies in r
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell sets one cell, out-of-bounds writes are dropped
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints the region with ch
func (r Region) Fill(ch rune, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ch, style)
		}
	}
}

// Text draws s at (x, y) and returns the columns used; wide runes occupy two cells
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, style)
		}
		col += w
	}
	return col
}

// TextRight draws s right-aligned on row y
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-runewidth.StringWidth(s), y, s, style)
}

// TextCenter draws s centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-runewidth.StringWidth(s))/2, y, s, style)
}

// Box draws a single-line border on the region edge
func (r Region) Box(style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	r.Cell(0, 0, boxRunes[boxTL], style)
	r.Cell(r.W-1, 0, boxRunes[boxTR], style)
	r.Cell(0, r.H-1, boxRunes[boxBL], style)
	r.Cell(r.W-1, r.H-1, boxRunes[boxBR], style)
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, boxRunes[boxH], style)
		r.Cell(x, r.H-1, boxRunes[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, boxRunes[boxV], style)
		r.Cell(r.W-1, y, boxRunes[boxV], style)
	}
}

// WrapText wraps s at word boundaries so that no row exceeds width display cells
// An empty string yields one empty row
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var rows []string
	start := 0
	lastSpace := -1
	cols := 0

	for i := 0; i < len(runes); i++ {
		w := runewidth.RuneWidth(runes[i])
		if cols+w > width && i > start {
			wrapAt := i
			if lastSpace > start {
				wrapAt = lastSpace
			}
			rows = append(rows, string(runes[start:wrapAt]))
			start = wrapAt
			if runes[start] == ' ' {
				start++
			}
			lastSpace = -1
			if start > i {
				// Space at the wrap point is dropped
				cols = 0
				continue
			}
			cols = runewidth.StringWidth(string(runes[start:i]))
		}
		if runes[i] == ' ' {
			lastSpace = i
		}
		cols += w
	}
	if start < len(runes) || len(rows) == 0 {
		rows = append(rows, string(runes[start:]))
	}
	return rows
}
