// Package rotation tracks the angle of a circular element that can be dragged
// around its center, coasts with momentum after release, and spins at a
// constant rate while playback is on.
package rotation

import "math"

// Playback reports whether simulated playback is active. The engine only
// observes it.
type Playback interface {
	IsPlaying() bool
}

// Sink applies the current angle visually.
type Sink interface {
	SetRotation(deg float64)
}

// Bounds exposes the center of the rotating element, sampled on demand.
type Bounds interface {
	Center() (x, y float64)
}

// Params are the engine tunables.
type Params struct {
	Friction   float64 // velocity multiplier per momentum tick, in (0, 1)
	Threshold  float64 // momentum stops when |velocity| drops below this
	SpinRate   float64 // degrees per tick while playing
	PulseTicks int     // ticks of suspended spin after Pulse
}

// DefaultParams matches the deck's embedded defaults.
func DefaultParams() Params {
	return Params{
		Friction:   0.94,
		Threshold:  0.08,
		SpinRate:   3,
		PulseTicks: 6,
	}
}

// State is a snapshot of the rotation.
type State struct {
	Angle            float64 // cumulative degrees, never normalized
	Velocity         float64 // degrees per tick
	Dragging         bool
	LastPointerAngle float64
}

// Engine owns one State. Drive it from a single goroutine: pointer handlers
// and Tick must not run concurrently.
type Engine struct {
	params   Params
	playback Playback
	sink     Sink
	bounds   Bounds

	state    State
	momentum bool // a momentum tick is pending
	pulse    int  // remaining ticks of suspended spin
}

// New creates an engine at angle 0. sink may be nil.
func New(params Params, playback Playback, bounds Bounds, sink Sink) *Engine {
	return &Engine{
		params:   params,
		playback: playback,
		bounds:   bounds,
		sink:     sink,
	}
}

func (e *Engine) center() PointerSample {
	x, y := e.bounds.Center()
	return PointerSample{X: x, Y: y}
}

func (e *Engine) render() {
	if e.sink != nil {
		e.sink.SetRotation(e.state.Angle)
	}
}

// BeginDrag starts a drag session at p. It is ignored while playing.
func (e *Engine) BeginDrag(p PointerSample) {
	if e.playback.IsPlaying() {
		return
	}
	e.state.Dragging = true
	e.state.LastPointerAngle = ComputeAngle(p, e.center())
	// catching the record stops it; a release without movement must not relaunch
	e.state.Velocity = 0
	e.momentum = false
	e.pulse = 0
}

// ContinueDrag rotates by the wrap-corrected angle travelled since the last
// sample. The delta becomes the launch velocity for momentum.
func (e *Engine) ContinueDrag(p PointerSample) {
	if !e.state.Dragging {
		return
	}
	current := ComputeAngle(p, e.center())
	delta := WrapDelta(current - e.state.LastPointerAngle)

	e.state.Angle += delta
	e.state.Velocity = delta
	e.state.LastPointerAngle = current
	e.render()
}

// EndDrag finishes the drag session and arms the momentum loop. The first
// momentum step happens on the next Tick.
func (e *Engine) EndDrag() {
	if !e.state.Dragging {
		return
	}
	e.state.Dragging = false
	e.momentum = true
}

// CancelMomentum drops any pending momentum tick. Velocity is left as is.
func (e *Engine) CancelMomentum() {
	e.momentum = false
}

// Pulse suspends the playback spin for the configured number of ticks.
func (e *Engine) Pulse() {
	if e.playback.IsPlaying() && !e.state.Dragging {
		e.pulse = e.params.PulseTicks
	}
}

// Tick advances one display refresh. It reports whether the angle changed.
func (e *Engine) Tick() bool {
	if e.state.Dragging {
		return false
	}

	if e.playback.IsPlaying() {
		if e.momentum {
			e.momentum = false
			e.state.Velocity = 0
		}
		if e.pulse > 0 {
			e.pulse--
			return false
		}
		e.state.Angle += e.params.SpinRate
		e.render()
		return true
	}
	e.pulse = 0

	if !e.momentum {
		return false
	}
	if math.Abs(e.state.Velocity) < e.params.Threshold {
		e.state.Velocity = 0
		e.momentum = false
		return false
	}
	e.state.Angle += e.state.Velocity
	e.state.Velocity *= e.params.Friction
	e.render()
	return true
}

// State returns a copy of the current rotation state.
func (e *Engine) State() State { return e.state }

// Angle returns the cumulative rotation in degrees.
func (e *Engine) Angle() float64 { return e.state.Angle }

// Dragging reports whether a drag session is in progress.
func (e *Engine) Dragging() bool { return e.state.Dragging }

// MomentumActive reports whether a momentum tick is pending.
func (e *Engine) MomentumActive() bool { return e.momentum }

// Spinning reports whether the next Tick applies the playback spin.
func (e *Engine) Spinning() bool {
	return e.playback.IsPlaying() && !e.state.Dragging && e.pulse == 0
}
