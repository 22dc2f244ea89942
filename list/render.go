package list

import (
	"fmt"
	"strings"
)

// String renders the elements first to last as "[a, b, c]".
func (l *List[T]) String() string {
	return l.render(l.first, func(n *node[T]) int { return n.next })
}

// StringReverse renders the elements last to first in the same format as String.
func (l *List[T]) StringReverse() string {
	return l.render(l.last, func(n *node[T]) int { return n.prev })
}

func (l *List[T]) render(start int, step func(*node[T]) int) string {
	var b strings.Builder
	b.WriteByte('[')
	for slot := start; slot != null; {
		n := l.nodes.at(slot)
		if slot != start {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.value)
		slot = step(n)
	}
	b.WriteByte(']')
	return b.String()
}
