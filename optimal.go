package pagesim

import (
	"fmt"
	"slices"
)

// optimal is Belady's clairvoyant MIN policy. It has to be fed the
// same trace it was built with, one reference at a time, so that it
// knows where in the trace it stands.
type optimal struct {
	capacity int
	future   lookahead
	cursor   int
	// resident is kept sorted ascending; that is both the display order
	// and the iteration order used to break victim ties.
	resident []Page
	members  map[Page]struct{}
}

func newOptimal(capacity int, trace Trace) *optimal {
	return &optimal{
		capacity: capacity,
		future:   lookahead{trace: trace},
		resident: make([]Page, 0, capacity),
		members:  make(map[Page]struct{}, capacity),
	}
}

func (o *optimal) Reference(page Page) Outcome {
	cur := o.cursor
	if cur >= o.future.trace.Len() {
		panic(fmt.Sprintf("optimal policy referenced past end of its %d-page trace", o.future.trace.Len()))
	}
	if got := o.future.trace.At(cur); got != page {
		panic(fmt.Sprintf("optimal policy fed page %d at step %d, trace has %d", page, cur+1, got))
	}
	o.cursor++

	if _, ok := o.members[page]; ok {
		return Outcome{Hit: true}
	}

	var out Outcome
	if len(o.resident) == o.capacity {
		out.Victim = o.future.victim(o.resident, cur)
		out.Evicted = true
		o.remove(out.Victim)
	}
	o.insert(page)
	return out
}

func (o *optimal) insert(page Page) {
	i, _ := slices.BinarySearch(o.resident, page)
	o.resident = slices.Insert(o.resident, i, page)
	o.members[page] = struct{}{}
}

func (o *optimal) remove(page Page) {
	i, found := slices.BinarySearch(o.resident, page)
	if !found {
		panic(fmt.Sprintf("optimal policy lost track of resident page %d", page))
	}
	o.resident = slices.Delete(o.resident, i, i+1)
	delete(o.members, page)
}

// Resident returns pages in ascending order.
func (o *optimal) Resident() []Page {
	return slices.Clone(o.resident)
}

func (o *optimal) Len() int { return len(o.resident) }
