package ringlist

// node узел списка. Узел-страж списка тоже имеет этот тип, но значения не содержит.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	value T
}

// unlink исключение узла из кольца со сшивкой соседей.
func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.cleanup()
}

func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
