package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/zephyrtronium/calctree"
	"github.com/zephyrtronium/calctree/session"
)

// calculator drives engines from keypad tokens.
type calculator struct {
	reg  *session.Registry
	cur  uuid.UUID
	out  io.Writer
	errs io.Writer
	verb string
	echo bool
}

func newCalculator(out, errs io.Writer, verb string, echo bool, opts ...calctree.Option) *calculator {
	c := calculator{
		reg:  session.New(opts...),
		out:  out,
		errs: errs,
		verb: verb + "\n",
		echo: echo,
	}
	c.cur = c.reg.Create()
	return &c
}

// line handles one line of input, either a command or tokens separated by
// whitespace. A rejected token is reported and skipped, like a keypad that
// ignores an invalid key. The result is the number of rejected tokens and
// whether the user asked to quit.
func (c *calculator) line(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, ":") {
		quit, err := c.command(strings.Fields(s[1:]))
		if err != nil {
			fmt.Fprintln(c.errs, err)
			return 1, quit
		}
		return 0, quit
	}
	bad := 0
	err := c.reg.Do(c.cur, func(e *calctree.Engine) error {
		for _, tok := range strings.Fields(s) {
			if err := c.token(e, tok); err != nil {
				fmt.Fprintf(c.errs, "%s: %v\n", tok, err)
				bad++
			}
		}
		if c.echo && s != "" {
			fmt.Fprintf(c.out, "%v : %v\n", e, e.Mode())
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(c.errs, err)
		bad++
	}
	return bad, false
}

// token applies a single keypad token. - is negation while an operand is
// expected and subtraction otherwise.
func (c *calculator) token(e *calctree.Engine, tok string) error {
	switch strings.ToLower(tok) {
	case "=":
		r, err := e.Evaluate()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, c.verb, r)
		return nil
	case "c", "ac":
		e.Reset()
		return nil
	}
	if op, ok := calctree.ParseUnaryOp(tok); ok && (op != calctree.Neg || e.Mode() == calctree.ExpectingOperand) {
		return e.AppendUnaryOperator(op)
	}
	if op, ok := calctree.ParseBinaryOp(tok); ok {
		return e.AppendBinaryOperator(op)
	}
	return e.AppendNumberString(tok)
}

func (c *calculator) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("missing command. Type :help for commands")
	}
	switch strings.ToLower(args[0]) {
	case "quit", "q":
		return true, nil
	case "help":
		fmt.Fprint(c.out, helpText)
	case "new":
		c.cur = c.reg.Create()
		fmt.Fprintln(c.out, c.cur)
	case "use":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :use <session id prefix>")
		}
		id, err := c.reg.Find(args[1])
		if err != nil {
			return false, err
		}
		c.cur = id
	case "sessions":
		for _, id := range c.reg.IDs() {
			mark := " "
			if id == c.cur {
				mark = "*"
			}
			var expr string
			_ = c.reg.Do(id, func(e *calctree.Engine) error {
				expr = e.String()
				return nil
			})
			fmt.Fprintf(c.out, "%s %v %s\n", mark, id, expr)
		}
	case "close":
		if c.reg.Len() == 1 {
			return false, fmt.Errorf("cannot close the only session")
		}
		c.reg.Close(c.cur)
		c.cur = c.reg.IDs()[0]
	default:
		return false, fmt.Errorf("unknown command %q. Type :help for commands", args[0])
	}
	return false, nil
}

const helpText = `Tokens are separated by spaces:
  numbers    12  .5  1e-3  pi  e
  binary     +  -  *  /  ×  ÷
  unary      -  √  sqrt      (- is negation where a number is expected)
  =          print the result
  c, ac      clear the expression
Commands:
  :new       start a new session
  :use ID    switch to the session whose ID begins with ID
  :sessions  list sessions
  :close     close the current session
  :quit      exit
`
