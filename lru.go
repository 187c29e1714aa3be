package pagesim

const nilIndex = -1

type lruEntry struct {
	page Page
	prev int
	next int
}

// lru keeps resident pages in a doubly linked recency list whose nodes
// live in an index-addressed arena. head is the most recently used
// entry, tail the least. index maps a resident page to its arena slot,
// so both promotion and eviction are O(1).
type lru struct {
	capacity int
	entries  []lruEntry
	index    map[Page]int
	head     int
	tail     int
}

func newLRU(capacity int) *lru {
	return &lru{
		capacity: capacity,
		entries:  make([]lruEntry, 0, capacity),
		index:    make(map[Page]int, capacity),
		head:     nilIndex,
		tail:     nilIndex,
	}
}

func (l *lru) Reference(page Page) Outcome {
	if i, ok := l.index[page]; ok {
		if i != l.head {
			l.unlink(i)
			l.pushFront(i)
		}
		return Outcome{Hit: true}
	}

	var (
		out  Outcome
		slot int
	)
	if len(l.index) == l.capacity {
		// reuse the tail's slot for the incoming page
		slot = l.tail
		out.Victim = l.entries[slot].page
		out.Evicted = true
		delete(l.index, out.Victim)
		l.unlink(slot)
		l.entries[slot].page = page
	} else {
		slot = len(l.entries)
		l.entries = append(l.entries, lruEntry{page: page, prev: nilIndex, next: nilIndex})
	}
	l.pushFront(slot)
	l.index[page] = slot
	return out
}

func (l *lru) unlink(i int) {
	e := &l.entries[i]
	if e.prev != nilIndex {
		l.entries[e.prev].next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nilIndex {
		l.entries[e.next].prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nilIndex, nilIndex
}

func (l *lru) pushFront(i int) {
	e := &l.entries[i]
	e.prev = nilIndex
	e.next = l.head
	if l.head != nilIndex {
		l.entries[l.head].prev = i
	} else {
		l.tail = i
	}
	l.head = i
}

// Resident walks the list from most to least recently used.
func (l *lru) Resident() []Page {
	ret := make([]Page, 0, len(l.index))
	for i := l.head; i != nilIndex; i = l.entries[i].next {
		ret = append(ret, l.entries[i].page)
	}
	return ret
}

func (l *lru) Len() int { return len(l.index) }
