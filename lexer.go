package main

import (
	"errors"
	"strconv"
)

func newLiteral() literal {
	return literal{mode: lexIdle, buf: make([]byte, 0, literalInitialCap)}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isExponentMarker(ch byte) bool {
	return ch == 'e' || ch == 'E'
}

func isWhitespace(ch byte) bool {

	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}

	return false
}

//
// Decide whether ch continues the pending literal.  Digits and '.'
// always do, and start a literal if none is pending.  An exponent
// marker only continues a literal already in progress.  A sign only
// continues the literal if it immediately follows the exponent marker,
// otherwise it is left for the dispatcher as an operator.  Nothing is
// validated here: '1.2.3' or '5e' are accepted, and rejected when the
// literal is committed
//

func (lit *literal) extend(ch byte) bool {

	switch {
	case isDigit(ch) || ch == '.':
		lit.mode = lexAccumulating

	case isExponentMarker(ch):
		if lit.mode != lexAccumulating {
			return false
		}

	case ch == '+' || ch == '-':
		if lit.mode != lexAccumulating || !isExponentMarker(lit.last()) {
			return false
		}

	default:
		return false
	}

	lit.buf = append(lit.buf, ch)

	return true
}

func (lit *literal) last() byte {

	if len(lit.buf) == 0 {
		return 0
	}

	return lit.buf[len(lit.buf)-1]
}

func (lit *literal) reset() {

	lit.mode = lexIdle
	lit.buf = lit.buf[:0]
}

//
// Parse the pending literal, if any.  The buffer is reset whether or
// not the parse succeeds.  Overflow is not an error: strconv reports
// ErrRange along with the correctly signed infinity, and that is the
// IEEE result we want on the stack
//

func (lit *literal) commit() (float64, bool, error) {

	if lit.mode != lexAccumulating {
		return 0, false, nil
	}

	text := string(lit.buf)

	lit.reset()

	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false, newParseError(text)
	}

	return v, true, nil
}

func (c *calc) commitLiteral() {

	v, ok, err := c.lit.commit()
	if err != nil {
		c.report(err)
	} else if ok {
		c.stack.push(v)
	}
}

//
// Evaluate one line of input.  Literals are flushed at the first byte
// that cannot extend them, and at the end of the line.  Whitespace only
// separates; every other byte goes to the dispatcher.  A 'q' stops
// evaluation immediately, and the rest of the line is ignored
//

func (c *calc) evalLine(line string) evalStatus {

	c.numLines++

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if c.lit.extend(ch) {
			continue
		}

		c.commitLiteral()

		if isWhitespace(ch) {
			continue
		}

		if c.execute(ch) == evalHalt {
			return evalHalt
		}
	}

	c.commitLiteral()

	return evalContinue
}
