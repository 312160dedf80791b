package calctree

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// constants are the named numbers accepted by AppendNumberString. Each sets
// out to its value at out's precision.
var constants = map[string]func(out *big.Float) *big.Float{
	"pi": bigfloat.Pi,
	"π":  bigfloat.Pi,
	"e": func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	},
}

// number converts the text of a calculator display token to a finite value
// with the given precision.
func number(s string, prec uint) (*big.Float, error) {
	s = strings.TrimSpace(s)
	if f := constants[s]; f != nil {
		return f(new(big.Float).SetPrec(prec)).SetPrec(prec), nil
	}
	if s == "" {
		return nil, &NumberError{Text: s}
	}
	r, _, err := new(big.Float).SetPrec(prec).Parse(s, 10)
	if err != nil {
		// Overflow is reported as an error like any other. There is no
		// infinity key on a calculator.
		return nil, &NumberError{Text: s, Err: err}
	}
	if r.IsInf() {
		return nil, &NumberError{Text: s}
	}
	return r, nil
}
