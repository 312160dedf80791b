package calctree

import (
	"math/big"
	"strings"
)

// Mode is the kind of token an Engine accepts next.
type Mode int8

const (
	// ExpectingOperand means the next token must be a number or a unary
	// operator.
	ExpectingOperand Mode = iota
	// ExpectingOperator means the next token must be a binary operator.
	ExpectingOperator
)

func (m Mode) String() string {
	switch m {
	case ExpectingOperand:
		return "ExpectingOperand"
	case ExpectingOperator:
		return "ExpectingOperator"
	default:
		return "Mode(?)"
	}
}

// Engine incrementally builds an expression from tokens and evaluates it. It
// is not safe to use an Engine concurrently.
type Engine struct {
	root    *node
	mode    Mode
	pending []UnaryOp
	prec    uint
}

// Option is an option used when creating an engine.
type Option interface {
	engineOption()
}

type precopt uint

func (precopt) engineOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) Option {
	return precopt(prec)
}

// New creates an empty engine. If no precision is given, the default is 64.
func New(opts ...Option) *Engine {
	e := Engine{prec: 64}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			e.prec = uint(opt)
		default:
			panic("calctree: unknown option type")
		}
	}
	return &e
}

// Prec returns the precision to which values are computed.
func (e *Engine) Prec() uint {
	return e.prec
}

// Mode returns the kind of token the engine accepts next.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Pending returns the unary operators waiting for the next number, in the
// order they were appended.
func (e *Engine) Pending() []UnaryOp {
	return append(([]UnaryOp)(nil), e.pending...)
}

// AppendNumber commits a number as the next operand. Pending unary operators
// are applied to it first, the most recently appended one first. x is copied
// at the engine's precision.
//
// If a number is not allowed here, the error has code OperatorExpected. If a
// pending unary operator cannot be applied, its error is returned. The engine
// is unchanged when AppendNumber returns an error.
func (e *Engine) AppendNumber(x *big.Float) error {
	if e.mode != ExpectingOperand {
		return fail(OperatorExpected, new(big.Float).Copy(x))
	}
	if x.IsInf() {
		return &NumberError{Text: x.String()}
	}
	v := new(big.Float).SetPrec(e.prec).Set(x)
	for i := len(e.pending) - 1; i >= 0; i-- {
		z := new(big.Float).SetPrec(e.prec)
		if err := unops[e.pending[i]](z, v); err != nil {
			return err
		}
		v = z
	}
	e.commit(v)
	return nil
}

// AppendNumberString converts the text of a number and commits it like
// AppendNumber. Besides decimal and scientific notation, the constants pi
// (also π) and e are recognized. Text that does not describe a finite number
// gives a *NumberError.
func (e *Engine) AppendNumberString(s string) error {
	if e.mode != ExpectingOperand {
		return fail(OperatorExpected, s)
	}
	x, err := number(s, e.prec)
	if err != nil {
		return err
	}
	return e.AppendNumber(x)
}

// commit inserts a resolved operand into the tree.
func (e *Engine) commit(v *big.Float) {
	l := leaf(v)
	if e.root == nil {
		e.root = l
	} else if !e.root.attach(l) {
		panic("calctree: no operand slot in " + e.root.String())
	}
	e.pending = e.pending[:0]
	e.mode = ExpectingOperator
}

// AppendBinaryOperator appends a binary operator after the current operand.
// An operator that binds no tighter than the operator at the root takes the
// whole expression as its left operand; a tighter one takes the root's right
// operand instead.
//
// If an operator is not allowed here, the error has code OperandExpected.
// Unknown operators give an *OperatorError. The engine is unchanged when
// AppendBinaryOperator returns an error.
func (e *Engine) AppendBinaryOperator(op BinaryOp) error {
	p, ok := binop(op)
	if !ok {
		return &OperatorError{Operator: string(op)}
	}
	if e.mode != ExpectingOperator {
		return fail(OperandExpected, op)
	}
	switch {
	case e.root.kind == nodeLeaf, e.root.op.binding(p):
		// 2 * 3, then + : (2 * 3) + _
		e.root = binary(p, e.root)
	default:
		// 2 + 3, then * : 2 + (3 * _)
		e.root.right = binary(p, e.root.right)
	}
	e.mode = ExpectingOperand
	return nil
}

// AppendUnaryOperator queues a prefix unary operator for the next number.
//
// If op is not a known unary operator, the error has code
// UnknownUnaryOperator. If a unary operator is not allowed here, the error has
// code OperandExpected. The engine is unchanged when AppendUnaryOperator
// returns an error.
func (e *Engine) AppendUnaryOperator(op UnaryOp) error {
	if _, ok := unops[op]; !ok {
		return fail(UnknownUnaryOperator, op)
	}
	if e.mode != ExpectingOperand {
		return fail(OperandExpected, op)
	}
	e.pending = append(e.pending, op)
	return nil
}

// Evaluate computes the value of the expression. It never changes the engine.
//
// An empty expression gives code EmptyExpression, and one that ends with a
// binary operator gives code IncompleteExpression. Division by zero gives code
// DivisionByZero.
func (e *Engine) Evaluate() (r *big.Float, err error) {
	if e.root == nil {
		return nil, fail(EmptyExpression, nil)
	}
	if e.root.pending() {
		return nil, fail(IncompleteExpression, e.root.String())
	}
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		nan, ok := x.(big.ErrNaN)
		if !ok {
			panic(x)
		}
		r, err = nil, fail(Undefined, nan.Error())
	}()
	return e.eval(e.root)
}

// eval computes the value of a complete subtree into a new value.
func (e *Engine) eval(n *node) (*big.Float, error) {
	switch n.kind {
	case nodeLeaf:
		return new(big.Float).Copy(n.val), nil
	case nodeBinary:
		if n.right == nil {
			return nil, fail(IncompleteExpression, n.String())
		}
		l, err := e.eval(n.left)
		if err != nil {
			return nil, err
		}
		r, err := e.eval(n.right)
		if err != nil {
			return nil, err
		}
		if err := n.op.apply(l, l, r); err != nil {
			return nil, err
		}
		return l, nil
	default:
		panic("calctree: invalid node kind " + n.kind.String())
	}
}

// Reset discards the expression and any pending unary operators.
func (e *Engine) Reset() {
	e.root = nil
	e.pending = nil
	e.mode = ExpectingOperand
}

// String renders the expression with alternating round and square brackets
// grouping each term and _ in place of a missing operand. Pending unary
// operators are written before the final _.
func (e *Engine) String() string {
	var b strings.Builder
	if e.root == nil {
		if len(e.pending) == 0 {
			return ""
		}
		e.writePending(&b)
		b.WriteByte('_')
		return b.String()
	}
	e.root.fmt(&b, false)
	s := b.String()
	if len(e.pending) > 0 {
		b.Reset()
		e.writePending(&b)
		// The only missing operand is the last one written.
		k := strings.LastIndexByte(s, '_')
		s = s[:k] + b.String() + s[k:]
	}
	return s
}

func (e *Engine) writePending(b *strings.Builder) {
	for _, op := range e.pending {
		b.WriteString(string(op))
	}
}
