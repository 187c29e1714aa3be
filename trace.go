package pagesim

// Page identifies a virtual page. Values are opaque: negatives and
// repeats are legal and no value is reserved.
type Page int

// Trace is an immutable, ordered sequence of page references.
type Trace struct {
	pages []Page
}

// NewTrace copies pages into a new trace.
func NewTrace(pages ...Page) Trace {
	cp := make([]Page, len(pages))
	copy(cp, pages)
	return Trace{pages: cp}
}

// TraceOf builds a trace from plain ints.
func TraceOf(pages ...int) Trace {
	cp := make([]Page, len(pages))
	for i, p := range pages {
		cp[i] = Page(p)
	}
	return Trace{pages: cp}
}

func (t Trace) Len() int { return len(t.pages) }

// At returns the reference at 0-based position i.
func (t Trace) At(i int) Page { return t.pages[i] }

// Pages returns a copy of the references.
func (t Trace) Pages() []Page {
	cp := make([]Page, len(t.pages))
	copy(cp, t.pages)
	return cp
}

// Distinct counts the distinct pages referenced.
func (t Trace) Distinct() int {
	seen := make(map[Page]struct{}, len(t.pages))
	for _, p := range t.pages {
		seen[p] = struct{}{}
	}
	return len(seen)
}
