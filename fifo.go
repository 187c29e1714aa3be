package pagesim

// fifo evicts the page that has been resident the longest. Arrival
// order lives in a fixed ring of capacity slots, oldest at start.
type fifo struct {
	ring     []Page
	start    int
	size     int
	resident map[Page]struct{}
}

func newFIFO(capacity int) *fifo {
	return &fifo{
		ring:     make([]Page, capacity),
		resident: make(map[Page]struct{}, capacity),
	}
}

func (f *fifo) Reference(page Page) Outcome {
	if _, ok := f.resident[page]; ok {
		return Outcome{Hit: true}
	}

	var out Outcome
	if f.size == len(f.ring) {
		out.Victim = f.ring[f.start]
		out.Evicted = true
		delete(f.resident, out.Victim)
		f.start = (f.start + 1) % len(f.ring)
		f.size--
	}
	f.ring[(f.start+f.size)%len(f.ring)] = page
	f.size++
	f.resident[page] = struct{}{}
	return out
}

// Resident returns pages oldest first.
func (f *fifo) Resident() []Page {
	ret := make([]Page, 0, f.size)
	for i := 0; i < f.size; i++ {
		ret = append(ret, f.ring[(f.start+i)%len(f.ring)])
	}
	return ret
}

func (f *fifo) Len() int { return f.size }
