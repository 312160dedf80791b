package calctree

import (
	"math/big"
	"strings"
)

// node is a node in the expression tree.
type node struct {
	kind nodeKind

	// val is the operand of a leaf.
	val *big.Float
	// op is the operator of a binary node.
	op operator

	// left is always set on a binary node. right is nil until the second
	// operand arrives.
	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLeaf   // val
	nodeBinary // left op right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeLeaf:
		return "Leaf"
	case nodeBinary:
		return "Binary"
	default:
		return "nodeKind(?)"
	}
}

func leaf(x *big.Float) *node {
	return &node{kind: nodeLeaf, val: x}
}

func binary(p operator, left *node) *node {
	return &node{kind: nodeBinary, op: p, left: left}
}

// attach places a leaf in the rightmost binary node still missing its right
// operand. It reports whether any such node exists.
func (n *node) attach(l *node) bool {
	if n == nil || n.kind != nodeBinary {
		return false
	}
	if n.right == nil {
		n.right = l
		return true
	}
	return n.right.attach(l) || n.left.attach(l)
}

// pending reports whether the tree contains a binary node still missing its
// right operand.
func (n *node) pending() bool {
	if n == nil || n.kind != nodeBinary {
		return false
	}
	return n.right == nil || n.right.pending() || n.left.pending()
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the subtree with alternating round and square brackets grouping
// each term. A missing operand is written as _.
func (n *node) fmt(b *strings.Builder, square bool) {
	if n == nil {
		b.WriteByte('_')
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeLeaf:
		b.WriteString(n.val.Text('g', -1))
	case nodeBinary:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(string(n.op.op))
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("calctree: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
