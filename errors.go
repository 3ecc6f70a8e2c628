package main

import (
	"fmt"
)

//
// Error numbers for everything the evaluator can complain about.
// None of these are fatal: each one is reported to the diagnostic
// sink where it is detected, and evaluation resumes with the next
// input byte
//

const (
	EDIVIDEBYZERO = Errno(iota)
	EFLOATPARSE
	EBADCHARACTER
	EFEWELEMENTS
	EUNIMPLEMENTED
)

var strError = []string{
	"divide by zero",
	"cannot parse number",
	"is not a valid command",
	"stack empty",
	"unimplemented",
}

//
// Error categories.  Several error numbers can share a category
// (FloatParse and BadCharacter are both parser errors)
//

type errKind int

const (
	arithmeticError errKind = iota
	parserError
	stackError
	unimplementedFeature
)

var strKind = []string{
	"ArithmeticError",
	"ParserError",
	"StackError",
	"UnimplementedFeature",
}

func (k errKind) String() string {
	return strKind[k]
}

// Errno identifies the nature of an evaluator error.
type Errno int

func (e Errno) Error() string {
	return strError[e]
}

func (e Errno) kind() errKind {

	switch e {
	default:
		return unimplementedFeature

	case EDIVIDEBYZERO:
		return arithmeticError

	case EFLOATPARSE, EBADCHARACTER:
		return parserError

	case EFEWELEMENTS:
		return stackError
	}
}

//
// calcError carries the minimal context needed to render a message:
// the offending byte for BadCharacter and Unimplemented, the rejected
// literal text for FloatParse
//

type calcError struct {
	errno Errno
	ch    byte
	lit   string
}

func (e *calcError) Error() string {

	switch e.errno {
	default:
		return e.errno.Error()

	case EFLOATPARSE:
		return fmt.Sprintf("%s %q", e.errno, e.lit)

	case EBADCHARACTER, EUNIMPLEMENTED:
		return fmt.Sprintf("%s %s", quoteChar(e.ch), e.errno)
	}
}

func (e *calcError) Unwrap() error {
	return e.errno
}

var errFewElements = &calcError{errno: EFEWELEMENTS}
var errDivideByZero = &calcError{errno: EDIVIDEBYZERO}

func newCharError(errno Errno, ch byte) error {
	return &calcError{errno: errno, ch: ch}
}

func newParseError(lit string) error {
	return &calcError{errno: EFLOATPARSE, lit: lit}
}

//
// Render a byte the way dc does in its diagnostics, e.g. '@' (0100)
//

func quoteChar(ch byte) string {
	return fmt.Sprintf("%q (%#o)", rune(ch), ch)
}

//
// Report an error to the diagnostic sink and forget about it
//

func (c *calc) report(err error) {

	c.numErrors++

	fmt.Fprintf(c.diag, "%s: %s\n", c.progName, err)
}
