package calctree

import (
	"fmt"
	"strconv"
)

// Code identifies a class of calculation failure.
type Code int

const (
	// OperatorExpected means a number arrived where a binary operator was
	// required.
	OperatorExpected Code = 1 + iota
	// OperandExpected means an operator arrived where a number was required.
	OperandExpected
	// IncompleteExpression means a binary operator is still waiting for its
	// second operand.
	IncompleteExpression
	// DivisionByZero means the right operand of a division was exactly zero.
	DivisionByZero
	// NegativeSqrt means a square root was applied to a negative number.
	NegativeSqrt
	// UnknownUnaryOperator means a unary operator token is not recognized.
	UnknownUnaryOperator
	// EmptyExpression means there is nothing to evaluate.
	EmptyExpression
	// Undefined means arithmetic on overflowed operands had no defined result,
	// e.g. an infinity minus itself.
	Undefined
)

var descriptions = [...]string{
	OperatorExpected:     "expecting an operation, not a number",
	OperandExpected:      "expecting an operand (a number), not an operation",
	IncompleteExpression: "expecting a second operand, can't perform calculation",
	DivisionByZero:       "division by zero is not allowed",
	NegativeSqrt:         "cannot take square root of a negative number",
	UnknownUnaryOperator: "unknown unary operator",
	EmptyExpression:      "nothing to calculate",
	Undefined:            "result is undefined",
}

// Describe returns the English description of an error code. The result is
// the empty string for codes outside the table.
func Describe(code Code) string {
	if code <= 0 || int(code) >= len(descriptions) {
		return ""
	}
	return descriptions[code]
}

func (c Code) String() string {
	if d := Describe(c); d != "" {
		return d
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Error is a calculation failure. Every grammar and arithmetic failure
// reported by an Engine is an *Error.
type Error struct {
	// Code classifies the failure.
	Code Code
	// Data is the token or value that caused the failure, for diagnostics.
	Data any
}

func (err *Error) Error() string {
	s := "error code " + strconv.Itoa(int(err.Code)) + ": " + err.Code.String()
	if err.Data != nil {
		s += " (" + fmt.Sprint(err.Data) + ")"
	}
	return s
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, &Error{Code: DivisionByZero}) matches regardless of Data.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == err.Code
}

func fail(code Code, data any) error {
	return &Error{Code: code, Data: data}
}

// OperatorError is an error indicating a binary operator token that the engine
// does not understand. Unknown unary operators are reported as *Error with
// code UnknownUnaryOperator instead.
type OperatorError struct {
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return "unknown binary operator " + strconv.Quote(err.Operator)
}

// NumberError is an error indicating text that does not describe a finite
// number.
type NumberError struct {
	// Text is the text that failed to convert.
	Text string
	// Err is the underlying conversion error, if any.
	Err error
}

func (err *NumberError) Error() string {
	s := "invalid number " + strconv.Quote(err.Text)
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

func (err *NumberError) Unwrap() error {
	return err.Err
}
