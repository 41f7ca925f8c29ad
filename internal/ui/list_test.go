package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListRevealKeepsTrackInView(t *testing.T) {
	l := List{Visible: 5, Total: 20}

	l.Reveal(3)
	assert.Equal(t, 0, l.Top)

	l.Reveal(7)
	assert.Equal(t, 3, l.Top)
	assert.Equal(t, 7, l.Track(4))

	l.Reveal(1)
	assert.Equal(t, 1, l.Top)

	l.Reveal(19)
	assert.Equal(t, 15, l.Top)
}

func TestListScrollClamps(t *testing.T) {
	l := List{Visible: 5, Total: 8}

	l.Scroll(10)
	assert.Equal(t, 3, l.Top)
	l.Scroll(-10)
	assert.Equal(t, 0, l.Top)

	short := List{Visible: 5, Total: 2}
	short.Scroll(3)
	assert.Equal(t, 0, short.Top)
	assert.Equal(t, -1, short.Track(2))
	assert.Zero(t, short.Hidden())
}

func TestListPageWraps(t *testing.T) {
	l := List{Visible: 4, Total: 10}

	l.Page()
	assert.Equal(t, 4, l.Top)
	l.Page()
	assert.Equal(t, 6, l.Top)
	l.Page()
	assert.Equal(t, 0, l.Top)
	assert.Equal(t, 6, l.Hidden())
}

func TestListTrackOutOfRange(t *testing.T) {
	l := List{Top: 2, Visible: 3, Total: 10}
	assert.Equal(t, 2, l.Track(0))
	assert.Equal(t, -1, l.Track(3))
	assert.Equal(t, -1, l.Track(-1))
}
