// errors.go: typed calculator errors and caret-snippet rendering.
//
// Every failure the lexer, parser, or evaluator can produce is an *Error
// carrying one of the enumerated kinds plus the 0-based input column where
// the problem was detected. The driver prints Error() verbatim; messages are
// therefore the exact user-facing strings ("Invalid identifier", ...).
//
// WrapWithSource augments an *Error with a one-line caret snippet for the
// driver's verbose mode. Non-*Error values pass through unchanged.
package bigcalc

import (
	"fmt"
	"strings"
)

// Kind enumerates the recoverable failure classes.
type Kind int

const (
	BadCharacter Kind = iota
	InvalidIdentifier
	InvalidAssignment
	InvalidSyntax
	InvalidExpression
	UnknownVariable
	UnknownCommand
	DivisionByZero
	BadExponent
)

func (k Kind) String() string {
	switch k {
	case BadCharacter:
		return "BadCharacter"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case InvalidAssignment:
		return "InvalidAssignment"
	case InvalidSyntax:
		return "InvalidSyntax"
	case InvalidExpression:
		return "InvalidExpression"
	case UnknownVariable:
		return "UnknownVariable"
	case UnknownCommand:
		return "UnknownCommand"
	case DivisionByZero:
		return "DivisionByZero"
	case BadExponent:
		return "BadExponent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type produced by the calculator core.
// Col is the 0-based byte column within the input line.
type Error struct {
	Kind Kind
	Col  int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func errAt(kind Kind, col int, msg string) *Error {
	return &Error{Kind: kind, Col: col, Msg: msg}
}

// WrapWithSource returns an error whose message includes the input line and
// a caret under the offending column. Errors other than *Error are returned
// unchanged.
//
//	Invalid expression
//
//	   1 | (1+2*3
//	     |       ^
func WrapWithSource(err error, line string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	col := e.Col
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Msg)
	fmt.Fprintf(&b, "%4d | %s\n", 1, line)
	fmt.Fprintf(&b, "     | %s^", strings.Repeat(" ", col))
	return fmt.Errorf("%s", b.String())
}
