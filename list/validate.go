package list

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate walks the chain in both directions and reports every broken
// invariant. A nil result means the list is well formed.
func (l *List[T]) Validate() error {
	var err error
	violation := func(format string, args ...any) {
		err = multierr.Append(err, &InvariantError{Op: "validate", Reason: fmt.Sprintf(format, args...)})
	}

	if l.length < 0 {
		violation("negative length %d", l.length)
	}
	if (l.length == 0) != (l.first == null) || (l.length == 0) != (l.last == null) {
		violation("length %d with first=%d last=%d", l.length, l.first, l.last)
		return err
	}
	if l.length == 0 {
		return err
	}
	if p := l.nodes.at(l.first).prev; p != null {
		violation("first node has predecessor %d", p)
	}
	if n := l.nodes.at(l.last).next; n != null {
		violation("last node has successor %d", n)
	}

	// Forward walk bounded so a cycle cannot hang the check.
	count, slot, prev := 0, l.first, null
	for slot != null && count <= l.length {
		n := l.nodes.at(slot)
		if !n.live {
			violation("slot %d is linked but released", slot)
		}
		if n.prev != prev {
			violation("slot %d has predecessor %d, expected %d", slot, n.prev, prev)
		}
		prev, slot = slot, n.next
		count++
	}
	if count != l.length {
		violation("forward walk visited %d nodes, length is %d", count, l.length)
	}
	if prev != l.last {
		violation("forward walk ended at %d, last is %d", prev, l.last)
	}

	count, slot = 0, l.last
	for slot != null && count <= l.length {
		slot = l.nodes.at(slot).prev
		count++
	}
	if count != l.length {
		violation("backward walk visited %d nodes, length is %d", count, l.length)
	}
	return err
}
