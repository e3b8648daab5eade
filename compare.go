package ringlist

import "golang.org/x/exp/constraints"

// Compare трёхзначное сравнение упорядоченных значений.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ComparePtr то же самое что и Compare, но для значений по указателям.
// nil меньше любого не-nil указателя.
func ComparePtr[T constraints.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return Compare(*a, *b)
}
