package quotes

// RecentWindow is a bounded FIFO of recently returned quotes. Membership is
// by string value.
type RecentWindow struct {
	buf    []string
	start  int
	n      int
	counts map[string]int
}

// NewRecentWindow creates a window holding at most limit quotes. A limit
// below one falls back to DefaultRecentLimit.
func NewRecentWindow(limit int) *RecentWindow {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	return &RecentWindow{
		buf:    make([]string, limit),
		counts: make(map[string]int, limit),
	}
}

// Push appends q, evicting the oldest entry when the window is full.
func (w *RecentWindow) Push(q string) {
	if w.n == len(w.buf) {
		oldest := w.buf[w.start]
		if w.counts[oldest]--; w.counts[oldest] == 0 {
			delete(w.counts, oldest)
		}
		w.buf[w.start] = ""
		w.start = (w.start + 1) % len(w.buf)
		w.n--
	}
	w.buf[(w.start+w.n)%len(w.buf)] = q
	w.n++
	w.counts[q]++
}

// Contains reports whether q is in the window.
func (w *RecentWindow) Contains(q string) bool {
	return w.counts[q] > 0
}

// Reset empties the window.
func (w *RecentWindow) Reset() {
	clear(w.buf)
	clear(w.counts)
	w.start, w.n = 0, 0
}

// Len returns the number of quotes held.
func (w *RecentWindow) Len() int {
	return w.n
}

// Cap returns the window capacity.
func (w *RecentWindow) Cap() int {
	return len(w.buf)
}

// Items returns the held quotes, oldest first.
func (w *RecentWindow) Items() []string {
	out := make([]string, w.n)
	for i := range w.n {
		out[i] = w.buf[(w.start+i)%len(w.buf)]
	}
	return out
}
