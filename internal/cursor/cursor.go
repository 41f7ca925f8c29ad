// Package cursor implements the HUD cursor: a dot pinned to the pointer and a
// bracket that trails it.
package cursor

// Cursor holds dot and bracket positions in screen coordinates.
type Cursor struct {
	factor float64

	dotX, dotY         float64
	bracketX, bracketY float64

	Hovering bool // pointer is over an interactive widget
}

// New creates a cursor whose bracket closes factor of the remaining gap each tick.
func New(factor float64) *Cursor {
	return &Cursor{factor: factor}
}

// Move pins the dot to the pointer.
func (c *Cursor) Move(x, y float64) {
	c.dotX, c.dotY = x, y
}

// Tick eases the bracket toward the dot.
func (c *Cursor) Tick() {
	c.bracketX += (c.dotX - c.bracketX) * c.factor
	c.bracketY += (c.dotY - c.bracketY) * c.factor
}

// Dot returns the dot position.
func (c *Cursor) Dot() (float64, float64) { return c.dotX, c.dotY }

// Bracket returns the trailing bracket position.
func (c *Cursor) Bracket() (float64, float64) { return c.bracketX, c.bracketY }

// Ease moves current a factor of the way toward target. The tone arm uses
// the same easing as the bracket.
func Ease(current, target, factor float64) float64 {
	return current + (target-current)*factor
}
