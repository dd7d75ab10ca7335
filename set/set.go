package set

// Set is the behaviour shared by the hash and ordered implementations.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Contains(item T) bool
	Len() int
	Clear()
}

// InsertSlice inserts every item and reports whether the set changed.
func InsertSlice[T comparable](s Set[T], items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
