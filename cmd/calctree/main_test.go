package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calctree"
)

func run(t *testing.T, src string, echo bool) (out, errs string, bad int) {
	t.Helper()
	var o, e bytes.Buffer
	c := newCalculator(&o, &e, "%g", echo, calctree.Prec(64))
	bad, err := script(c, strings.NewReader(src))
	require.NoError(t, err)
	return o.String(), e.String(), bad
}

func TestScript(t *testing.T) {
	cases := []struct {
		name string
		src  string
		out  string
	}{
		{"add", "3 + 4 =", "7\n"},
		{"precedence", "5 + 6 * 2 - 4 / 2 =", "15\n"},
		{"unary", "- √ 9 =", "-3\n"},
		{"sub-neg", "3 - - 2 =", "5\n"},
		{"sqrt-word", "sqrt 16 =", "4\n"},
		{"alt-ops", "6 ÷ 3 × 4 =", "8\n"},
		{"lines", "16 /\n2 / 2\n=", "4\n"},
		{"continue", "2 + 3 = * 4 =", "5\n14\n"},
		{"clear", "2 + 3 c 7 =", "7\n"},
		{"clear-upper", "2 + 3 AC 7 =", "7\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errs, bad := run(t, c.src, false)
			assert.Equal(t, c.out, out)
			assert.Empty(t, errs)
			assert.Zero(t, bad)
		})
	}
}

func TestScriptRejectsTokens(t *testing.T) {
	cases := []struct {
		name string
		src  string
		out  string
		msg  string
	}{
		{"num-num", "5 6 + 1 =", "6\n", calctree.Describe(calctree.OperatorExpected)},
		{"op-op", "5 + * 1 =", "6\n", calctree.Describe(calctree.OperandExpected)},
		{"unary-after-num", "5 √ =", "5\n", calctree.Describe(calctree.OperandExpected)},
		{"incomplete", "5 * =", "", calctree.Describe(calctree.IncompleteExpression)},
		{"div-zero", "5 / 0 =", "", calctree.Describe(calctree.DivisionByZero)},
		{"sqrt-neg", "√ - 4 =", "", calctree.Describe(calctree.NegativeSqrt)},
		{"empty", "=", "", calctree.Describe(calctree.EmptyExpression)},
		{"bad-number", "12x =", "", "invalid number"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errs, bad := run(t, c.src, false)
			assert.Equal(t, c.out, out)
			assert.Contains(t, errs, c.msg)
			assert.Positive(t, bad)
		})
	}
}

func TestEcho(t *testing.T) {
	out, errs, bad := run(t, "2 + 3 *\n4", true)
	assert.Empty(t, errs)
	assert.Zero(t, bad)
	assert.Equal(t, "([2] + [(3) * _]) : ExpectingOperand\n([2] + [(3) * (4)]) : ExpectingOperator\n", out)
}

func TestSessionCommands(t *testing.T) {
	var o, e bytes.Buffer
	c := newCalculator(&o, &e, "%g", false)
	first := c.cur

	bad, quit := c.line("2 + 3")
	require.Zero(t, bad)
	require.False(t, quit)

	bad, _ = c.line(":new")
	require.Zero(t, bad)
	second := c.cur
	require.NotEqual(t, first, second)
	assert.Contains(t, o.String(), second.String())

	// The new session starts empty.
	bad, _ = c.line("+")
	assert.Equal(t, 1, bad)
	c.line("10 =")
	assert.True(t, strings.HasSuffix(o.String(), "10\n"))

	bad, _ = c.line(":use " + first.String()[:13])
	require.Zero(t, bad, e.String())
	assert.Equal(t, first, c.cur)
	c.line("=")
	assert.True(t, strings.HasSuffix(o.String(), "5\n"))

	o.Reset()
	c.line(":sessions")
	assert.Contains(t, o.String(), "* "+first.String()+" ([2] + [3])")
	assert.Contains(t, o.String(), "  "+second.String()+" (10)")

	bad, _ = c.line(":close")
	require.Zero(t, bad)
	assert.Equal(t, second, c.cur)
	bad, _ = c.line(":close")
	assert.Equal(t, 1, bad)

	bad, _ = c.line(":use nope")
	assert.Equal(t, 1, bad)
	bad, _ = c.line(":frobnicate")
	assert.Equal(t, 1, bad)
	bad, _ = c.line(":")
	assert.Equal(t, 1, bad)
}

func TestQuit(t *testing.T) {
	out, _, bad := run(t, "1 + 1 =\n:quit\n2 + 2 =", false)
	assert.Zero(t, bad)
	assert.Equal(t, "2\n", out)
}

func TestHelp(t *testing.T) {
	out, _, bad := run(t, ":help", false)
	assert.Zero(t, bad)
	assert.Equal(t, helpText, out)
}
