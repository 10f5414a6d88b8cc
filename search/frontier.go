package search

// frontierEntry is one immutable discovered-but-not-expanded node on the
// A* frontier. Entries are fully formed when pushed and never mutated in
// place; a state reached again by a cheaper edge gets a new entry and the
// stale one is discarded at pop time by the closed-set check.
type frontierEntry[S comparable, A comparable] struct {
	f      float64
	g      float64
	state  S
	parent int // index into the engine's node table, -1 for the root
	action A
	seq    uint64 // insertion order, breaks f ties FIFO
	index  int
}

// frontier is a container/heap min-heap ordered by f, then by insertion
// sequence so that behavior is deterministic among equal keys.
type frontier[S comparable, A comparable] []*frontierEntry[S, A]

func (q frontier[S, A]) Len() int { return len(q) }

func (q frontier[S, A]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier[S, A]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier[S, A]) Push(x any) {
	entry := x.(*frontierEntry[S, A])
	entry.index = len(*q)
	*q = append(*q, entry)
}

func (q *frontier[S, A]) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil // avoid memory leak
	entry.index = -1
	*q = old[:n-1]
	return entry
}
