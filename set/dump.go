package set

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// AppendJSON appends the structure of the tree as compact JSON, e.g.
//
//	{"value":5,"left":null,"right":{"value":8,"left":null,"right":null}}
//
// An empty set is rendered as null.
func (s *OrderedSet[K]) AppendJSON(dst []byte) []byte {
	return appendNode(dst, s.root)
}

// Dump writes AppendJSON output followed by a newline.
func (s *OrderedSet[K]) Dump(w io.Writer) error {
	buf := s.AppendJSON(make([]byte, 0, 64))
	buf = append(buf, '\n')

	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "could not dump ordered set")
	}

	return nil
}

func (s *OrderedSet[K]) MarshalJSON() ([]byte, error) {
	return s.AppendJSON(nil), nil
}

func (s *OrderedSet[K]) String() string {
	return string(s.AppendJSON(nil))
}

func appendNode[K constraints.Signed](dst []byte, n *node[K]) []byte {
	if n == nil {
		return append(dst, "null"...)
	}

	dst = append(dst, `{"value":`...)
	dst = strconv.AppendInt(dst, int64(n.value), 10)
	dst = append(dst, `,"left":`...)
	dst = appendNode(dst, n.left)
	dst = append(dst, `,"right":`...)
	dst = appendNode(dst, n.right)

	return append(dst, '}')
}
