package pagesim

import "fmt"

// lookahead answers "when is this page referenced next" against a trace.
type lookahead struct {
	trace Trace
}

// nextUse returns the position of the first reference to page at or
// after from. ok is false when the page never occurs again.
func (la lookahead) nextUse(page Page, from int) (pos int, ok bool) {
	n := la.trace.Len()
	if from < 0 || from > n {
		panic(fmt.Sprintf("lookahead from %d outside trace of length %d", from, n))
	}
	for i := from; i < n; i++ {
		if la.trace.pages[i] == page {
			return i, true
		}
	}
	return 0, false
}

// victim picks which of the candidates to evict when the reference at
// position cur faults. A candidate with no later use wins at once.
// Otherwise the one used farthest in the future wins, and the earliest
// candidate in iteration order breaks ties.
func (la lookahead) victim(candidates []Page, cur int) Page {
	if len(candidates) == 0 {
		panic("lookahead victim requested with no resident pages")
	}
	victim := candidates[0]
	farthest := -1
	for _, p := range candidates {
		pos, ok := la.nextUse(p, cur+1)
		if !ok {
			return p
		}
		if pos > farthest {
			farthest = pos
			victim = p
		}
	}
	return victim
}
