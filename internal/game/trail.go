package game

// angleTrail records the last N record angles in a ring buffer so the
// renderer can draw a motion trail behind the index mark.
type angleTrail struct {
	buffer    []float64
	nextIndex int
	filled    int
}

func newAngleTrail(ringSize int) *angleTrail {
	return &angleTrail{
		buffer: make([]float64, ringSize),
	}
}

func (t *angleTrail) push(deg float64) {
	t.buffer[t.nextIndex] = deg
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// snapshot returns up to the last n angles (most recent last).
func (t *angleTrail) snapshot(n int) []float64 {
	if n > t.filled {
		n = t.filled
	}
	out := make([]float64, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
