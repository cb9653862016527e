package scope

// ring is a fixed-size window of float64 samples. It starts zero-filled, so
// it is always full: head is both the oldest slot and the next one written.
type ring struct {
	data []float64
	head int
}

func newRing(size int) *ring {
	if size < 0 {
		size = 0
	}
	return &ring{data: make([]float64, size)}
}

// push overwrites the oldest sample with v.
func (r *ring) push(v float64) {
	if len(r.data) == 0 {
		return
	}
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
}

// at returns the sample at position i, where 0 is the oldest retained.
func (r *ring) at(i int) float64 {
	if i < 0 || i >= len(r.data) {
		return 0
	}
	return r.data[(r.head+i)%len(r.data)]
}

// values returns the window oldest first.
func (r *ring) values() []float64 {
	out := make([]float64, len(r.data))
	for i := range out {
		out[i] = r.at(i)
	}
	return out
}

// CoreHistory keeps one rolling window of CPU percentages per core.
// The window width is fixed at construction, one slot per screen column.
type CoreHistory struct {
	width int
	cores []*ring
}

// NewCoreHistory creates zero-filled windows for the given number of cores.
func NewCoreHistory(cores, width int) *CoreHistory {
	if cores < 0 {
		cores = 0
	}
	if width < 0 {
		width = 0
	}
	h := &CoreHistory{width: width, cores: make([]*ring, cores)}
	for i := range h.cores {
		h.cores[i] = newRing(width)
	}
	return h
}

// Push appends value to one core's window, dropping its oldest sample.
// Cores that did not exist at construction are ignored.
func (h *CoreHistory) Push(core int, value float64) {
	if core < 0 || core >= len(h.cores) {
		return
	}
	h.cores[core].push(value)
}

// PushSample pushes cpu[i] into core i. Cores missing from the sample keep
// their window unchanged.
func (h *CoreHistory) PushSample(cpu []float64) {
	for i, v := range cpu {
		h.Push(i, v)
	}
}

// ValueAt returns a core's sample for a screen column: column 0 is the
// oldest retained sample, column width-1 the newest. Out of range reads
// return 0.
func (h *CoreHistory) ValueAt(core, col int) float64 {
	if core < 0 || core >= len(h.cores) {
		return 0
	}
	return h.cores[core].at(col)
}

// Cores returns the number of windows.
func (h *CoreHistory) Cores() int {
	return len(h.cores)
}

// Width returns the window length.
func (h *CoreHistory) Width() int {
	return h.width
}

// MemoryWave is a rolling window of memory utilization fractions (0..1).
type MemoryWave struct {
	r *ring
}

// NewMemoryWave creates a zero-filled window.
func NewMemoryWave(width int) *MemoryWave {
	return &MemoryWave{r: newRing(width)}
}

// Push appends a fraction, dropping the oldest.
func (w *MemoryWave) Push(fraction float64) {
	w.r.push(fraction)
}

// ValueAt returns the fraction for a screen column, oldest at column 0.
func (w *MemoryWave) ValueAt(col int) float64 {
	return w.r.at(col)
}

// Values returns a copy of the window, oldest first.
func (w *MemoryWave) Values() []float64 {
	return w.r.values()
}

// Width returns the window length.
func (w *MemoryWave) Width() int {
	return len(w.r.data)
}
