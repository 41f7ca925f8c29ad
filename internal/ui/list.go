package ui

// List is a scroll window over a track list shown in Visible row slots.
type List struct {
	Top     int // index of the track in the first slot
	Visible int
	Total   int
}

// Clamp keeps Top inside the list.
func (l *List) Clamp() {
	if l.Top > l.Total-l.Visible {
		l.Top = l.Total - l.Visible
	}
	if l.Top < 0 {
		l.Top = 0
	}
}

// Scroll moves the window by n rows.
func (l *List) Scroll(n int) {
	l.Top += n
	l.Clamp()
}

// Reveal scrolls the least needed to bring track i into view.
func (l *List) Reveal(i int) {
	if l.Visible < 1 {
		return
	}
	if i < l.Top {
		l.Top = i
	}
	if i >= l.Top+l.Visible {
		l.Top = i - l.Visible + 1
	}
	l.Clamp()
}

// Page advances one window, wrapping back to the start after the end.
func (l *List) Page() {
	if l.Top+l.Visible >= l.Total {
		l.Top = 0
		return
	}
	l.Scroll(l.Visible)
}

// Track maps a row slot to a track index, or -1 for an empty slot.
func (l *List) Track(slot int) int {
	if slot < 0 || slot >= l.Visible {
		return -1
	}
	i := l.Top + slot
	if i >= l.Total {
		return -1
	}
	return i
}

// Hidden counts tracks outside the window.
func (l *List) Hidden() int {
	if h := l.Total - l.Visible; h > 0 {
		return h
	}
	return 0
}
