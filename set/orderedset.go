package set

import (
	"golang.org/x/exp/constraints"
)

type node[K constraints.Signed] struct {
	// parent is a back reference only, a node is owned by the slot that
	// points down to it.
	parent *node[K]
	left   *node[K]
	right  *node[K]
	value  K
}

// OrderedSet is a set of signed integers stored in an unbalanced binary
// search tree. The shape of the tree is decided by insertion order alone,
// nothing is ever rotated.
//
// The zero value is an empty set. An OrderedSet must not be used from more
// than one goroutine at a time.
type OrderedSet[K constraints.Signed] struct {
	root *node[K]
	size int
}

// IntSet is the set the command line driver works with.
type IntSet = OrderedSet[int64]

var _ Set[int64] = (*OrderedSet[int64])(nil)

// NewOrderedSet returns an empty set.
func NewOrderedSet[K constraints.Signed]() *OrderedSet[K] {
	return &OrderedSet[K]{}
}

// NewIntSet returns an empty set of int64 keys.
func NewIntSet() *IntSet {
	return NewOrderedSet[int64]()
}

// Insert adds item as a new leaf. It is a no-op if item is already present.
func (s *OrderedSet[K]) Insert(item K) (modified bool) {
	// dst is the slot the new leaf goes into, which also covers the empty
	// tree where the slot is the root itself.
	dst := &s.root
	var parent *node[K]

	for *dst != nil {
		parent = *dst
		if item == parent.value {
			return false
		}

		if item < parent.value {
			dst = &parent.left
		} else {
			dst = &parent.right
		}
	}

	*dst = &node[K]{parent: parent, value: item}
	s.size++

	return true
}

// Remove deletes item and reports whether it was present.
//
// A node with a left subtree is replaced by its in-order predecessor, a node
// with only a right subtree by its in-order successor and a leaf is simply
// unlinked.
func (s *OrderedSet[K]) Remove(item K) bool {
	x := s.find(item)
	if x == nil {
		return false
	}

	var y *node[K]

	switch {
	case x.left != nil:
		y = x.left
		for y.right != nil {
			y = y.right
		}

		if y == x.left {
			x.left = y.left
		} else {
			y.parent.right = y.left
		}

		if y.left != nil {
			y.left.parent = y.parent
		}
	case x.right != nil:
		y = x.right
		for y.left != nil {
			y = y.left
		}

		if y == x.right {
			x.right = y.right
		} else {
			y.parent.left = y.right
		}

		if y.right != nil {
			y.right.parent = y.parent
		}
	}

	s.replace(x, y)
	s.size--

	return true
}

func (s *OrderedSet[K]) Contains(item K) bool {
	return s.find(item) != nil
}

// Len is O(1), the count is maintained on every mutation.
func (s *OrderedSet[K]) Len() int {
	return s.size
}

// Clear releases every node. Children are always detached before their
// parent, and the walk backtracks through parent links so it needs neither
// recursion nor an auxiliary stack. The set is empty and reusable afterwards.
func (s *OrderedSet[K]) Clear() {
	x := s.root

	for x != nil {
		switch {
		case x.left != nil:
			x = x.left
		case x.right != nil:
			x = x.right
		default:
			p := x.parent
			if p != nil {
				if x == p.left {
					p.left = nil
				} else {
					p.right = nil
				}
			}

			x.parent = nil
			x = p
		}
	}

	s.root = nil
	s.size = 0
}

func (s *OrderedSet[K]) find(item K) *node[K] {
	x := s.root
	for x != nil && x.value != item {
		if item < x.value {
			x = x.left
		} else {
			x = x.right
		}
	}

	return x
}

// replace puts y into the position held by x, adopting x's parent and both of
// its children. Only y may be nil. x is left fully detached.
func (s *OrderedSet[K]) replace(x, y *node[K]) {
	p, l, r := x.parent, x.left, x.right

	switch {
	case p == nil:
		s.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}

	if l != nil {
		l.parent = y
	}

	if r != nil {
		r.parent = y
	}

	if y != nil {
		y.parent = p
		y.left = l
		y.right = r
	}

	x.parent, x.left, x.right = nil, nil, nil
}
