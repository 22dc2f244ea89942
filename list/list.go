// Package list implements a doubly linked list with indexed access.
//
// Nodes live in an arena owned by the list and are linked by slot index, so
// no node reference ever escapes the container. Indexed operations walk from
// whichever end is nearer; both ends are reached in constant time.
//
// A List is not safe for concurrent use.
package list

import (
	"github.com/fzft/go-dlist/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sequence is the read-only view of an indexed container.
type Sequence[T any] interface {
	Len() int
	Get(index int) (T, error)
}

var _ Sequence[int] = (*List[int])(nil)

// List is a doubly linked list of T. The zero value is an empty list ready to use.
type List[T any] struct {
	nodes  arena[T]
	first  int // slot of the first node, null iff length == 0
	last   int // slot of the last node, null iff length == 0
	length int
	logger *zap.Logger
}

func New[T any](opts ...Option) *List[T] {
	o := buildOptions(opts)
	l := &List[T]{logger: o.logger}
	if o.capacity > 0 {
		l.nodes.grow(o.capacity)
	}
	return l
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.length
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	slot, err := l.nodeAt("get", index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.nodes.at(slot).value, nil
}

// Set replaces the element at index with v and returns the element it replaced.
func (l *List[T]) Set(index int, v T) (T, error) {
	slot, err := l.nodeAt("set", index)
	if err != nil {
		var zero T
		return zero, err
	}
	n := l.nodes.at(slot)
	old := n.value
	n.value = v
	return old, nil
}

// Append adds v after the last element.
func (l *List[T]) Append(v T) {
	l.append(v)
}

// Prepend adds v before the first element.
func (l *List[T]) Prepend(v T) {
	l.prepend(v)
}

// Insert places v at index, shifting the elements at index and after one
// position later. index may equal Len, which appends.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.length {
		return l.indexError("insert", index, true)
	}
	if index == l.length {
		l.append(v)
		return nil
	}
	slot, err := l.nodeAt("insert", index)
	if err != nil {
		return err
	}
	l.insertBefore(v, l.nodes.handle(slot))
	return nil
}

// Remove deletes the element at index and returns it. Later elements shift
// one position earlier.
func (l *List[T]) Remove(index int) (T, error) {
	slot, err := l.nodeAt("remove", index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.removeNode(l.nodes.handle(slot)), nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.nodes.reset()
	l.first, l.last = null, null
	l.length = 0
}

// Values returns the elements from first to last in a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for slot := l.first; slot != null; slot = l.nodes.at(slot).next {
		values = append(values, l.nodes.at(slot).value)
	}
	return values
}

// nodeAt returns the slot holding index, walking from the nearer end.
func (l *List[T]) nodeAt(op string, index int) (int, error) {
	if index < 0 || index >= l.length {
		return null, l.indexError(op, index, false)
	}
	if index <= l.length/2 {
		slot := l.first
		for i := 0; i < index; i++ {
			slot = l.nodes.at(slot).next
		}
		return slot, nil
	}
	slot := l.last
	for i := l.length - 1; i > index; i-- {
		slot = l.nodes.at(slot).prev
	}
	return slot, nil
}

func (l *List[T]) append(v T) handle[T] {
	slot := l.nodes.alloc(v)
	if l.last == null {
		l.first, l.last = slot, slot
	} else {
		l.nodes.at(slot).prev = l.last
		l.nodes.at(l.last).next = slot
		l.last = slot
	}
	l.length++
	return l.nodes.handle(slot)
}

func (l *List[T]) prepend(v T) handle[T] {
	slot := l.nodes.alloc(v)
	if l.first == null {
		l.first, l.last = slot, slot
	} else {
		l.nodes.at(slot).next = l.first
		l.nodes.at(l.first).prev = slot
		l.first = slot
	}
	l.length++
	return l.nodes.handle(slot)
}

// insertBefore links a new node holding v directly in front of mark.
// mark must be a live node of this list.
func (l *List[T]) insertBefore(v T, mark handle[T]) handle[T] {
	target := l.mustResolve("insert before", mark)
	if target == l.first {
		return l.prepend(v)
	}
	prev := l.nodes.at(target).prev
	slot := l.nodes.alloc(v)
	n := l.nodes.at(slot)
	n.prev, n.next = prev, target
	l.nodes.at(prev).next = slot
	l.nodes.at(target).prev = slot
	l.length++
	return l.nodes.handle(slot)
}

// removeNode unlinks the node behind h and returns its value. h must be a
// live node of this list and is stale afterwards.
func (l *List[T]) removeNode(h handle[T]) T {
	slot := l.mustResolve("remove node", h)
	n := l.nodes.at(slot)
	switch {
	case l.first == slot && l.last == slot:
		l.first, l.last = null, null
	case l.first == slot:
		l.first = n.next
		l.nodes.at(l.first).prev = null
	case l.last == slot:
		l.last = n.prev
		l.nodes.at(l.last).next = null
	default:
		l.nodes.at(n.prev).next = n.next
		l.nodes.at(n.next).prev = n.prev
	}
	l.length--
	return l.nodes.release(slot)
}

func (l *List[T]) mustResolve(op string, h handle[T]) int {
	slot, ok := l.nodes.resolve(h)
	if !ok {
		err := &InvariantError{Op: op, Reason: "node does not belong to this list"}
		l.log().Error("node handle rejected",
			zap.String("op", op),
			zap.Int("slot", h.slot),
			zap.Uint32("gen", h.gen),
			zap.Bool("foreign", h.owner != &l.nodes),
		)
		panic(err)
	}
	return slot
}

func (l *List[T]) indexError(op string, index int, inclusive bool) error {
	if ce := l.log().Check(zapcore.DebugLevel, "index out of range"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("index", index),
			zap.Int("len", l.length),
		)
	}
	return &IndexError{Op: op, Index: index, Len: l.length, Inclusive: inclusive}
}

func (l *List[T]) log() *zap.Logger {
	if l.logger == nil {
		return log.Logger
	}
	return l.logger
}
