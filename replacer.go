package pagesim

import (
	"fmt"
	"strings"
)

// Outcome is the answer a Policy gives for one reference.
type Outcome struct {
	Hit bool
	// Victim is only meaningful when Evicted is set.
	Victim  Page
	Evicted bool
}

// Policy is a page replacement policy bound to a single simulation.
// Implementations own their resident set and are not safe for
// concurrent use.
type Policy interface {
	// Reference feeds the next page of the trace to the policy and
	// reports whether it hit and which page, if any, was evicted.
	Reference(page Page) Outcome

	// Resident returns the resident pages in the policy's display order.
	Resident() []Page

	// Len is the number of resident pages.
	Len() int
}

// Kind selects a replacement policy.
type Kind int

const (
	FIFO Kind = iota
	LRU
	Optimal
)

// Kinds lists every supported policy in display order.
func Kinds() []Kind { return []Kind{FIFO, LRU, Optimal} }

func (k Kind) String() string {
	switch k {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Optimal:
		return "Optimal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts fifo, lru, optimal or opt in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "optimal", "opt":
		return Optimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// New builds an empty policy of the given kind. The trace is only
// consulted by Optimal, which must be fed exactly that trace in order.
func New(kind Kind, capacity int, trace Trace) (Policy, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	switch kind {
	case FIFO:
		return newFIFO(capacity), nil
	case LRU:
		return newLRU(capacity), nil
	case Optimal:
		return newOptimal(capacity, trace), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, kind)
}
