package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/vinyl-deck/internal/rotation"
)

func TestTrackerMouseSequence(t *testing.T) {
	var tr Tracker
	a := assert.New(t)

	ev := tr.Update(Raw{Source: SourceMouse, X: 10, Y: 20})
	a.Equal(Move, ev.Kind)

	ev = tr.Update(Raw{Source: SourceMouse, X: 10, Y: 20})
	a.Equal(None, ev.Kind)

	ev = tr.Update(Raw{Source: SourceMouse, Pressed: true, X: 10, Y: 20})
	a.Equal(Down, ev.Kind)
	a.Equal(rotation.PointerSample{X: 10, Y: 20}, ev.Sample)
	a.True(tr.Pressed())

	ev = tr.Update(Raw{Source: SourceMouse, Pressed: true, X: 15, Y: 25})
	a.Equal(Move, ev.Kind)
	a.Equal(rotation.PointerSample{X: 15, Y: 25}, ev.Sample)

	ev = tr.Update(Raw{Source: SourceMouse, X: 16, Y: 26})
	a.Equal(Up, ev.Kind)
	a.Equal(rotation.PointerSample{X: 16, Y: 26}, ev.Sample)
	a.False(tr.Pressed())
}

func TestTrackerTouchReleaseKeepsLastPosition(t *testing.T) {
	var tr Tracker

	tr.Update(Raw{Source: SourceTouch, Pressed: true, X: 100, Y: 100})
	tr.Update(Raw{Source: SourceTouch, Pressed: true, X: 120, Y: 90})

	// touches lifted; the host falls back to a stale cursor position
	ev := tr.Update(Raw{Source: SourceMouse, X: 0, Y: 0})
	assert.Equal(t, Up, ev.Kind)
	assert.Equal(t, SourceTouch, ev.Source)
	assert.Equal(t, rotation.PointerSample{X: 120, Y: 90}, ev.Sample)
}

func TestTrackerRejectsMalformedSamples(t *testing.T) {
	var tr Tracker

	ev := tr.Update(Raw{Source: SourceTouch, Pressed: true, X: math.NaN(), Y: 4})
	assert.Equal(t, None, ev.Kind)
	assert.False(t, tr.Pressed())

	tr.Update(Raw{Source: SourceMouse, Pressed: true, X: 1, Y: 1})
	ev = tr.Update(Raw{Source: SourceMouse, Pressed: true, X: math.Inf(1), Y: 1})
	assert.Equal(t, None, ev.Kind)
	assert.True(t, tr.Pressed())

	ev = tr.Update(Raw{Source: SourceMouse, X: math.NaN(), Y: math.NaN()})
	assert.Equal(t, Up, ev.Kind)
	assert.Equal(t, rotation.PointerSample{X: 1, Y: 1}, ev.Sample)
	assert.Equal(t, 3, tr.Rejected())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "none", None.String())
}

func TestTrackerPosition(t *testing.T) {
	var tr Tracker
	_, ok := tr.Position()
	assert.False(t, ok)

	tr.Update(Raw{Source: SourceMouse, X: 7, Y: 9})
	tr.Update(Raw{Source: SourceMouse, X: math.NaN(), Y: 1})

	p, ok := tr.Position()
	assert.True(t, ok)
	assert.Equal(t, rotation.PointerSample{X: 7, Y: 9}, p)
}
