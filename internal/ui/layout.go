// Package ui computes widget geometry for the deck window.
package ui

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Center returns the middle point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Circle is a circular hit area.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether (x, y) lies inside or on c.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Button identifies a transport control.
type Button int

const (
	NoButton Button = iota
	PrevButton
	PlayButton
	NextButton
	OpenButton
)

const (
	margin      = 20.0
	buttonW     = 56.0
	buttonH     = 40.0
	openW       = 120.0
	rowH        = 28.0
	panelOffset = 60.0
)

// Layout places every widget for a given window size.
type Layout struct {
	Record   Circle
	ToneArm  Rect // pivot at X,Y; length W
	Title    Rect
	Progress Rect
	Buttons  map[Button]Rect
	Rows     []Rect // visible track row slots
	More     Rect   // "+N more" line; zero when every track fits
	Overflow bool
}

// NewLayout builds the layout for a width x height window with rows track
// rows and a record of the given radius. When the tracks do not fit, the last
// slot becomes the More line and the list is scrolled with a List.
func NewLayout(width, height int, radius float64, rows int) Layout {
	w, h := float64(width), float64(height)
	cx := margin + radius + panelOffset/2
	cy := h / 2

	panelX := cx + radius + panelOffset
	panelW := w - panelX - margin

	l := Layout{
		Record:   Circle{X: cx, Y: cy, R: radius},
		ToneArm:  Rect{X: cx + radius*0.95, Y: cy - radius*0.9, W: radius * 0.95, H: 8},
		Title:    Rect{X: panelX, Y: margin * 3, W: panelW, H: 40},
		Progress: Rect{X: panelX, Y: margin*3 + 56, W: panelW, H: 10},
		Buttons:  make(map[Button]Rect, 4),
	}

	by := l.Progress.Y + l.Progress.H + margin*2
	for i, b := range []Button{PrevButton, PlayButton, NextButton} {
		l.Buttons[b] = Rect{X: panelX + float64(i)*(buttonW+margin/2), Y: by, W: buttonW, H: buttonH}
	}
	l.Buttons[OpenButton] = Rect{X: panelX + panelW - openW, Y: by, W: openW, H: buttonH}

	ry := by + buttonH + margin*2
	slots := int((h - margin - ry) / rowH)
	if slots < 1 {
		slots = 1
	}
	visible := rows
	if rows > slots {
		visible = slots - 1
		l.Overflow = true
		l.More = Rect{X: panelX, Y: ry + float64(visible)*rowH, W: panelW, H: rowH - 4}
	}
	for i := 0; i < visible; i++ {
		l.Rows = append(l.Rows, Rect{X: panelX, Y: ry + float64(i)*rowH, W: panelW, H: rowH - 4})
	}
	return l
}

// OnMore reports whether (x, y) is over the More line.
func (l Layout) OnMore(x, y float64) bool {
	return l.Overflow && l.More.Contains(x, y)
}

// ButtonAt returns the button under (x, y).
func (l Layout) ButtonAt(x, y float64) Button {
	for b, r := range l.Buttons {
		if r.Contains(x, y) {
			return b
		}
	}
	return NoButton
}

// RowAt returns the index of the track row under (x, y), or -1.
func (l Layout) RowAt(x, y float64) int {
	for i, r := range l.Rows {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Interactive reports whether (x, y) is over a clickable widget or the record.
func (l Layout) Interactive(x, y float64) bool {
	return l.ButtonAt(x, y) != NoButton || l.RowAt(x, y) >= 0 || l.OnMore(x, y) || l.Record.Contains(x, y)
}
