package batch

import (
	"fmt"
	"strings"

	"github.com/anacrolix/log"
	list "github.com/bahlo/generic-list-go"

	"github.com/peppermintpatty5/avl-tree/set"
)

type Kind uint8

const (
	Insert Kind = iota
	Remove
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

type Op struct {
	Kind Kind
	Key  int64
}

func (op Op) String() string {
	return fmt.Sprintf("%s %d", op.Kind, op.Key)
}

// ParseToken turns a command line token into an operation. A token starting
// with '-' removes the number that follows the dash, anything else inserts
// the number the token starts with. Malformed numbers read as 0.
func ParseToken(tok string) Op {
	if rest, ok := strings.CutPrefix(tok, "-"); ok {
		return Op{Kind: Remove, Key: Atol(rest)}
	}

	return Op{Kind: Insert, Key: Atol(tok)}
}

// Batch is an ordered list of operations, applied in the order they were
// appended.
type Batch struct {
	ops *list.List[Op]
}

func New() *Batch {
	return &Batch{
		ops: list.New[Op](),
	}
}

func Parse(tokens []string) *Batch {
	b := New()
	for _, tok := range tokens {
		b.Append(ParseToken(tok))
	}

	return b
}

func (b *Batch) Append(op Op) {
	b.ops.PushBack(op)
}

func (b *Batch) Len() int {
	return b.ops.Len()
}

func (b *Batch) Ops() []Op {
	ops := make([]Op, 0, b.ops.Len())
	for e := b.ops.Front(); e != nil; e = e.Next() {
		ops = append(ops, e.Value)
	}

	return ops
}

// Apply runs every operation against s and returns how many of them changed
// the set. Inserting a present key and removing a missing one are no-ops.
func (b *Batch) Apply(s set.Set[int64], logger log.Logger) (modified int) {
	for e := b.ops.Front(); e != nil; e = e.Next() {
		op := e.Value

		var changed bool
		switch op.Kind {
		case Insert:
			changed = s.Insert(op.Key)
		case Remove:
			changed = s.Remove(op.Key)
		}

		if changed {
			modified++
		}

		logger.Levelf(log.Debug, "%v: changed=%t len=%d", op, changed, s.Len())
	}

	return modified
}
