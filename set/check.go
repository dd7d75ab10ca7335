package set

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/peppermintpatty5/avl-tree/queue"
)

// bounded is a node together with the closest ancestors it must sort after
// (lo) and before (hi). A nil bound is open.
type bounded[K constraints.Signed] struct {
	n  *node[K]
	lo *node[K]
	hi *node[K]
}

// Check walks the whole tree and returns an error wrapping ErrCorrupted for
// the first violated invariant: key order, parent links, or a size that does
// not match the number of reachable nodes.
func (s *OrderedSet[K]) Check() error {
	if s.root == nil {
		if s.size != 0 {
			return errors.Wrapf(ErrCorrupted, "empty tree has size %d", s.size)
		}
		return nil
	}

	if s.root.parent != nil {
		return errors.Wrapf(ErrCorrupted, "root %d has a parent", s.root.value)
	}

	// breadth first never holds more than the reachable node count, so a
	// ring of Len() entries only overflows when the size is wrong
	q := queue.NewRing[bounded[K]](s.size)
	if err := q.Push(bounded[K]{n: s.root}); err != nil {
		return errors.Wrapf(ErrCorrupted, "size %d is less than reachable nodes", s.size)
	}

	seen := 0
	for !q.IsEmpty() {
		item, err := q.Pop()
		if err != nil {
			return errors.Wrap(err, "ordered set check")
		}

		n := item.n
		seen++
		if seen > s.size {
			return errors.Wrapf(ErrCorrupted, "size %d is less than reachable nodes", s.size)
		}

		if item.lo != nil && n.value <= item.lo.value {
			return errors.Wrapf(ErrCorrupted, "key %d is not greater than ancestor %d", n.value, item.lo.value)
		}

		if item.hi != nil && n.value >= item.hi.value {
			return errors.Wrapf(ErrCorrupted, "key %d is not less than ancestor %d", n.value, item.hi.value)
		}

		children := [...]bounded[K]{
			{n: n.left, lo: item.lo, hi: n},
			{n: n.right, lo: n, hi: item.hi},
		}

		for _, child := range children {
			if child.n == nil {
				continue
			}

			if child.n.parent != n {
				return errors.Wrapf(ErrCorrupted, "child %d of %d does not point back to its parent", child.n.value, n.value)
			}

			if err := q.Push(child); err != nil {
				return errors.Wrapf(ErrCorrupted, "size %d is less than reachable nodes", s.size)
			}
		}
	}

	if seen != s.size {
		return errors.Wrapf(ErrCorrupted, "size %d but %d reachable nodes", s.size, seen)
	}

	return nil
}
