package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAngle(t *testing.T) {
	center := PointerSample{X: 100, Y: 100}
	cases := []struct {
		name string
		p    PointerSample
		want float64
	}{
		{"right", PointerSample{X: 150, Y: 100}, 0},
		{"below", PointerSample{X: 100, Y: 150}, 90},
		{"above", PointerSample{X: 100, Y: 50}, -90},
		{"left", PointerSample{X: 50, Y: 100}, 180},
		{"lower left", PointerSample{X: 50, Y: 150}, 135},
		{"on center", PointerSample{X: 100, Y: 100}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, ComputeAngle(c.p, center), 1e-9)
		})
	}
}

func TestComputeAngleNeverReturnsMinus180(t *testing.T) {
	negZero := math.Copysign(0, -1)
	got := ComputeAngle(PointerSample{X: -1, Y: negZero}, PointerSample{})
	assert.Equal(t, 180.0, got)
}

func TestWrapDelta(t *testing.T) {
	a := assert.New(t)
	a.Equal(20.0, WrapDelta(-340))
	a.Equal(-20.0, WrapDelta(340))
	a.Equal(90.0, WrapDelta(90))
	a.Equal(180.0, WrapDelta(180))
	a.Equal(-180.0, WrapDelta(-180))
	a.Equal(0.0, WrapDelta(0))
}

func TestWrapDeltaRangeAndCongruence(t *testing.T) {
	for a1 := -179.5; a1 <= 180; a1 += 7.25 {
		for a2 := -179.5; a2 <= 180; a2 += 5.5 {
			d := a2 - a1
			got := WrapDelta(d)
			if got < -180 || got > 180 {
				t.Fatalf("WrapDelta(%f) = %f out of range", d, got)
			}
			diff := math.Mod(got-d, 360)
			if math.Abs(diff) > 1e-9 {
				t.Fatalf("WrapDelta(%f) = %f not congruent mod 360", d, got)
			}
		}
	}
}
