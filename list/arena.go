package list

// null is the reserved slot meaning "no node". Real nodes start at slot 1,
// which keeps the zero List usable without initialization.
const null = 0

type node[T any] struct {
	value T
	prev  int
	next  int
	gen   uint32
	live  bool
}

// handle names a node inside one arena. It goes stale once the node is released.
type handle[T any] struct {
	owner *arena[T]
	slot  int
	gen   uint32
}

// arena owns every node of a list. Links between nodes are slot indices.
type arena[T any] struct {
	nodes []node[T]
	free  []int
}

func (a *arena[T]) lazyInit() {
	if a.nodes == nil {
		a.nodes = make([]node[T], 1)
	}
}

func (a *arena[T]) grow(capacity int) {
	a.lazyInit()
	if capacity+1 > cap(a.nodes) {
		nodes := make([]node[T], len(a.nodes), capacity+1)
		copy(nodes, a.nodes)
		a.nodes = nodes
	}
}

// alloc stores v in a free slot and returns the slot, unlinked.
func (a *arena[T]) alloc(v T) int {
	a.lazyInit()
	var slot int
	if n := len(a.free); n > 0 {
		slot = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[T]{})
		slot = len(a.nodes) - 1
	}
	n := &a.nodes[slot]
	n.value, n.prev, n.next, n.live = v, null, null, true
	return slot
}

// release detaches slot for good: links and value are cleared and every
// handle to it becomes stale.
func (a *arena[T]) release(slot int) T {
	n := &a.nodes[slot]
	v := n.value
	var zero T
	n.value, n.prev, n.next, n.live = zero, null, null, false
	n.gen++
	a.free = append(a.free, slot)
	return v
}

// reset releases every live node. Slots are kept for reuse and their
// generations still advance, so handles taken before the reset stay stale.
func (a *arena[T]) reset() {
	a.free = a.free[:0]
	for slot := len(a.nodes) - 1; slot > null; slot-- {
		if a.nodes[slot].live {
			a.release(slot)
		} else {
			a.free = append(a.free, slot)
		}
	}
}

func (a *arena[T]) at(slot int) *node[T] {
	return &a.nodes[slot]
}

func (a *arena[T]) handle(slot int) handle[T] {
	return handle[T]{owner: a, slot: slot, gen: a.nodes[slot].gen}
}

// resolve returns the slot behind h, or false if h is foreign to this
// arena or its node has been released.
func (a *arena[T]) resolve(h handle[T]) (int, bool) {
	if h.owner != a || h.slot <= null || h.slot >= len(a.nodes) {
		return null, false
	}
	n := &a.nodes[h.slot]
	if !n.live || n.gen != h.gen {
		return null, false
	}
	return h.slot, true
}
