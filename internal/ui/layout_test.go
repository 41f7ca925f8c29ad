package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 20))
	assert.False(t, r.Contains(31, 15))
	assert.False(t, r.Contains(15, 9))

	cx, cy := r.Center()
	assert.Equal(t, 20.0, cx)
	assert.Equal(t, 15.0, cy)
}

func TestCircleContains(t *testing.T) {
	c := Circle{X: 0, Y: 0, R: 5}
	assert.True(t, c.Contains(3, 4))
	assert.True(t, c.Contains(0, 0))
	assert.False(t, c.Contains(4, 4))
}

func TestLayoutHitTesting(t *testing.T) {
	l := NewLayout(1024, 640, 200, 4)
	require.Len(t, l.Rows, 4)

	assert.Equal(t, 320.0, l.Record.Y)
	assert.True(t, l.Interactive(l.Record.X, l.Record.Y))

	for _, b := range []Button{PrevButton, PlayButton, NextButton, OpenButton} {
		x, y := l.Buttons[b].Center()
		assert.Equal(t, b, l.ButtonAt(x, y))
		assert.Equal(t, -1, l.RowAt(x, y))
	}

	x, y := l.Rows[2].Center()
	assert.Equal(t, 2, l.RowAt(x, y))
	assert.Equal(t, NoButton, l.ButtonAt(x, y))

	assert.False(t, l.Interactive(1020, 5))
}

func TestLayoutPanelRightOfRecord(t *testing.T) {
	l := NewLayout(1024, 640, 200, 1)
	assert.Greater(t, l.Title.X, l.Record.X+l.Record.R)
	assert.LessOrEqual(t, l.Title.X+l.Title.W, 1024.0)
}

func TestLayoutOverflowShowsMoreLine(t *testing.T) {
	l := NewLayout(1024, 640, 200, 100)
	require.True(t, l.Overflow)
	require.NotEmpty(t, l.Rows)
	assert.Less(t, len(l.Rows), 100)

	last := l.Rows[len(l.Rows)-1]
	assert.Greater(t, l.More.Y, last.Y)
	assert.LessOrEqual(t, l.More.Y+l.More.H, 640.0)

	x, y := l.More.Center()
	assert.True(t, l.OnMore(x, y))
	assert.True(t, l.Interactive(x, y))
	assert.Equal(t, -1, l.RowAt(x, y))
}

func TestLayoutWithoutOverflow(t *testing.T) {
	l := NewLayout(1024, 640, 200, 4)
	assert.False(t, l.Overflow)
	assert.Equal(t, Rect{}, l.More)
	assert.False(t, l.OnMore(0, 0))
}
