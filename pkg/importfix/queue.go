package importfix

import "sort"

// Queue is an immutable set of unqualified names awaiting an import line.
// Names are held in lexicographic order; Pop returns the head together with
// the remainder and never modifies the receiver.
type Queue struct {
	names []string
}

// NewQueue constructs a queue from the given symbols.  Empty strings and
// duplicates are dropped.
func NewQueue(symbols ...string) Queue {
	seen := make(map[string]bool, len(symbols))
	names := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		names = append(names, sym)
	}
	sort.Strings(names)
	return Queue{names: names}
}

// Pop returns the first name and the queue without it.  Popping an empty
// queue returns "" and the empty queue.
func (q Queue) Pop() (string, Queue) {
	if len(q.names) == 0 {
		return "", q
	}
	return q.names[0], Queue{names: q.names[1:]}
}

// Len returns the number of names remaining.
func (q Queue) Len() int {
	return len(q.names)
}

// Names returns a copy of the remaining names.
func (q Queue) Names() []string {
	return append([]string(nil), q.names...)
}
