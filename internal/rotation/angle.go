package rotation

import "math"

// PointerSample is a pointer position in screen coordinates, already unified
// from mouse or touch input.
type PointerSample struct {
	X, Y float64
}

// ComputeAngle returns the angle of p around center in degrees, range (-180, 180].
func ComputeAngle(p, center PointerSample) float64 {
	deg := math.Atan2(p.Y-center.Y, p.X-center.X) * (180 / math.Pi)
	// atan2 yields -180 for a negative zero y; fold it onto the open end
	if deg == -180 {
		deg = 180
	}
	return deg
}

// WrapDelta corrects a raw difference between two ComputeAngle results so it
// follows the shorter path across the -180/180 seam.
func WrapDelta(d float64) float64 {
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}
