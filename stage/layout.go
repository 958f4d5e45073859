package stage

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orchead/input"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button is one on-screen control
type Button struct {
	Name  string
	Label string
	Rect  Rect
}

// Layout places the fixed regions for a screen size
type Layout struct {
	Width, Height int

	HUD       int // Row of the counters line
	Orc       Rect
	NoticeRow int
	QuoteRow  int
	Buttons   []Button
}

const buttonGap = 2

// ButtonLabels returns the button labels for the current chaos state
func ButtonLabels(chaos bool) []Button {
	chaosLabel := "Enable Chaos"
	if chaos {
		chaosLabel = "Disable Chaos"
	}
	return []Button{
		{Name: input.ButtonSummon, Label: "F1 Summon Uruk-hai"},
		{Name: input.ButtonHorn, Label: "F2 Sound the Horn"},
		{Name: input.ButtonChaos, Label: "F3 " + chaosLabel},
		{Name: input.ButtonParty, Label: "F4 Party"},
	}
}

// NewLayout computes regions for a width x height screen
func NewLayout(width, height int, buttons []Button) Layout {
	artW, artH := artSize()
	l := Layout{
		Width:  width,
		Height: height,
		HUD:    0,
	}

	orcY := (height - artH) / 2
	if orcY < 2 {
		orcY = 2
	}
	l.Orc = Rect{X: (width - artW) / 2, Y: orcY, W: artW, H: artH}
	l.QuoteRow = orcY - 1
	l.NoticeRow = orcY + artH + 1

	row := height - 2
	if row <= l.NoticeRow {
		row = l.NoticeRow + 1
	}
	total := -buttonGap
	for _, b := range buttons {
		total += runewidth.StringWidth(b.Label) + 2 + buttonGap
	}
	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	for _, b := range buttons {
		w := runewidth.StringWidth(b.Label) + 2
		b.Rect = Rect{X: x, Y: row, W: w, H: 1}
		l.Buttons = append(l.Buttons, b)
		x += w + buttonGap
	}
	return l
}

// HitOrc reports whether (x, y) lands on the orc head
func (l Layout) HitOrc(x, y int) bool {
	return l.Orc.Contains(x, y)
}

// HitButton returns the control under (x, y)
func (l Layout) HitButton(x, y int) (string, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Name, true
		}
	}
	return "", false
}

// centerX returns the column that centers s on a width-wide row
func centerX(width int, s string) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}
