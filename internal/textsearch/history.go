package textsearch

// lineHistory keeps the most recent lines that were not printed yet so they can
// be shown as leading context once a match turns up.
type lineHistory struct {
	buf   []string
	head  int
	count int
}

func newLineHistory(capacity int) *lineHistory {
	if capacity < 0 {
		capacity = 0
	}
	return &lineHistory{buf: make([]string, capacity)}
}

func (h *lineHistory) len() int {
	return h.count
}

// push appends line, dropping the oldest entry when full. A zero-capacity history
// never retains anything.
func (h *lineHistory) push(line string) {
	capacity := len(h.buf)
	if capacity == 0 {
		return
	}
	tail := (h.head + h.count) % capacity
	h.buf[tail] = line
	if h.count < capacity {
		h.count++
		return
	}
	h.head = (h.head + 1) % capacity
}

// drain returns the retained lines oldest first and empties the history.
func (h *lineHistory) drain() []string {
	if h.count == 0 {
		return nil
	}
	out := make([]string, 0, h.count)
	for i := 0; i < h.count; i++ {
		idx := (h.head + i) % len(h.buf)
		out = append(out, h.buf[idx])
		h.buf[idx] = ""
	}
	h.head = 0
	h.count = 0
	return out
}
