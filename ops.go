package calctree

import "math/big"

// BinaryOp is a binary arithmetic operator token.
type BinaryOp string

// Binary operators.
const (
	Add BinaryOp = "+"
	Sub BinaryOp = "-"
	Mul BinaryOp = "*"
	Div BinaryOp = "/"
)

// UnaryOp is a prefix unary operator token.
type UnaryOp string

// Unary operators.
const (
	Neg  UnaryOp = "-"
	Sqrt UnaryOp = "√"
)

type operator struct {
	// prec is the precedence rank. Lower is more binding.
	prec int8
	// op is the canonical token for the operator.
	op BinaryOp
	// apply sets z to x op y. z may alias x.
	apply func(z, x, y *big.Float) error
}

// binding reports whether p binds at least as tightly as q. Under
// left-associativity, an existing p node stays beneath a newly arriving q.
func (p operator) binding(q operator) bool {
	return p.prec <= q.prec
}

var binops = map[BinaryOp]operator{
	Add: {2, Add, add},
	Sub: {2, Sub, sub},
	Mul: {1, Mul, mul},
	Div: {1, Div, quo},
	"×": {1, Mul, mul},
	"÷": {1, Div, quo},
}

func add(z, x, y *big.Float) error {
	z.Add(x, y)
	return nil
}

func sub(z, x, y *big.Float) error {
	z.Sub(x, y)
	return nil
}

func mul(z, x, y *big.Float) error {
	z.Mul(x, y)
	return nil
}

func quo(z, x, y *big.Float) error {
	if y.Sign() == 0 {
		return fail(DivisionByZero, new(big.Float).Copy(x))
	}
	z.Quo(x, y)
	return nil
}

// binop gets the operator for a token. ok is false if there is no such binary
// operator.
func binop(op BinaryOp) (p operator, ok bool) {
	p, ok = binops[op]
	return p, ok
}

// unops maps each unary operator to a function setting z to op x. z must not
// alias x.
var unops = map[UnaryOp]func(z, x *big.Float) error{
	Neg: func(z, x *big.Float) error {
		z.Neg(x)
		return nil
	},
	Sqrt: func(z, x *big.Float) error {
		if x.Sign() < 0 {
			return fail(NegativeSqrt, new(big.Float).Copy(x))
		}
		z.Sqrt(x)
		return nil
	},
}

// ParseBinaryOp returns the binary operator named by a display token. The
// tokens × and ÷ are accepted for multiplication and division.
func ParseBinaryOp(s string) (BinaryOp, bool) {
	p, ok := binop(BinaryOp(s))
	return p.op, ok
}

// ParseUnaryOp returns the unary operator named by a display token. The token
// "sqrt" is accepted for √.
func ParseUnaryOp(s string) (UnaryOp, bool) {
	if s == "sqrt" {
		return Sqrt, true
	}
	if _, ok := unops[UnaryOp(s)]; !ok {
		return "", false
	}
	return UnaryOp(s), true
}

// Precedence returns the precedence rank of a binary operator, where lower
// ranks bind more tightly. The result is 0 for unknown operators.
func Precedence(op BinaryOp) int {
	p, _ := binop(op)
	return int(p.prec)
}
