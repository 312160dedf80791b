// Package calctree builds and evaluates an arithmetic expression one token at
// a time, the way a calculator keypad delivers input.
//
// An Engine holds a partial expression tree that is valid after every token.
// Numbers, binary operators, and prefix unary operators are appended in order;
// the engine rejects a token that would make the expression malformed, places
// each binary operator by precedence as it arrives, and applies pending unary
// operators when the next number is committed. Evaluate computes the result
// at the engine's precision without changing its state.
//
// Domain failures are reported as *Error values carrying a numeric code from a
// fixed table; Describe gives the text for a code.
//
package calctree
