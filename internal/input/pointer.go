// Package input turns polled mouse and touch state into a single stream of
// pointer events for the primary pointer.
package input

import (
	"math"

	"github.com/iburimskiy/vinyl-deck/internal/rotation"
)

// Source identifies which device produced a frame.
type Source int

const (
	SourceNone Source = iota
	SourceMouse
	SourceTouch
)

// Kind of pointer event.
type Kind int

const (
	None Kind = iota
	Down
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// Raw is one polled frame of the primary pointer.
type Raw struct {
	Source  Source
	Pressed bool
	X, Y    float64
}

// Event is a pointer transition in screen coordinates.
type Event struct {
	Kind   Kind
	Sample rotation.PointerSample
	Source Source
}

// Tracker keeps edge-detection state between frames.
type Tracker struct {
	down     bool
	source   Source
	last     rotation.PointerSample
	hasLast  bool
	rejected int
}

// Update consumes one frame and returns the resulting event, if any.
func (t *Tracker) Update(raw Raw) Event {
	if !valid(raw.X) || !valid(raw.Y) {
		t.rejected++
		// a release needs no coordinates; reuse the last good sample
		if t.down && !raw.Pressed {
			return t.release()
		}
		return Event{}
	}
	s := rotation.PointerSample{X: raw.X, Y: raw.Y}

	switch {
	case raw.Pressed && !t.down:
		t.down = true
		t.source = raw.Source
		t.last, t.hasLast = s, true
		return Event{Kind: Down, Sample: s, Source: raw.Source}
	case !raw.Pressed && t.down:
		// a lifted touch has no position; keep the last one
		if raw.Source == SourceMouse && t.source == SourceMouse {
			t.last = s
		}
		return t.release()
	case t.hasLast && s == t.last:
		return Event{}
	default:
		t.last, t.hasLast = s, true
		return Event{Kind: Move, Sample: s, Source: raw.Source}
	}
}

func (t *Tracker) release() Event {
	t.down = false
	ev := Event{Kind: Up, Sample: t.last, Source: t.source}
	t.source = SourceNone
	return ev
}

// Pressed reports whether the primary pointer is down.
func (t *Tracker) Pressed() bool { return t.down }

// Position returns the last accepted sample.
func (t *Tracker) Position() (rotation.PointerSample, bool) { return t.last, t.hasLast }

// Rejected counts frames dropped for malformed coordinates.
func (t *Tracker) Rejected() int { return t.rejected }

func valid(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
