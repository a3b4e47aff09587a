package model

import "time"

const defaultTrendCap = 60

// TrendPoint is a single timestamped pull count held in the trend window.
type TrendPoint struct {
	Timestamp time.Time
	PullCount int64
}

// TrendWindow is a fixed-size ring buffer of TrendPoints. When the buffer is
// full, new pushes overwrite the oldest entry. It feeds the sparkline in the
// trend viewer, which only ever shows the most recent points.
type TrendWindow struct {
	buf  []TrendPoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewTrendWindow creates a TrendWindow with the given capacity.
// If capacity <= 0, the defaultTrendCap (60) is used.
func NewTrendWindow(capacity int) *TrendWindow {
	if capacity <= 0 {
		capacity = defaultTrendCap
	}
	return &TrendWindow{
		buf: make([]TrendPoint, capacity),
	}
}

// Push appends a new point to the window, overwriting the oldest if full.
func (w *TrendWindow) Push(p TrendPoint) {
	w.buf[w.head] = p
	w.head = (w.head + 1) % len(w.buf)
	if w.size < len(w.buf) {
		w.size++
	}
}

// Len returns the number of valid entries in the window.
func (w *TrendWindow) Len() int {
	return w.size
}

// Counts returns the pull counts in chronological order (oldest first).
func (w *TrendWindow) Counts() []float64 {
	out := make([]float64, w.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (w.head - w.size + len(w.buf)) % len(w.buf)
	for i := 0; i < w.size; i++ {
		out[i] = float64(w.buf[(start+i)%len(w.buf)].PullCount)
	}
	return out
}

// Latest returns the most recently pushed point and true, or the zero point
// and false when the window is empty.
func (w *TrendWindow) Latest() (TrendPoint, bool) {
	if w.size == 0 {
		return TrendPoint{}, false
	}
	return w.buf[(w.head-1+len(w.buf))%len(w.buf)], true
}
