package domain

// Identifiable is any entity addressed by a string ID.
type Identifiable interface {
	GetID() string
}

// FindItemIndexByID scans items in order and returns the index of the first
// entity whose ID matches, or -1 when absent.
func FindItemIndexByID[T Identifiable](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// MoveItem returns a new slice with the element at from removed and
// reinserted at to. The input slice is not modified.
// Both indices must be valid positions; callers check bounds first.
func MoveItem[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	moved := items[from]
	out = append(out, moved)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = moved
	return out
}

// InBounds reports whether i is a valid position in a sequence of length n.
func InBounds(i, n int) bool {
	return i >= 0 && i < n
}
