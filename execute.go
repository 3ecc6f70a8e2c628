package main

import (
	"fmt"
	"io"
	"math"
)

func newCalc(progName string, out, diag io.Writer) *calc {

	return &calc{
		progName: progName,
		stack:    newValueStack(),
		lit:      newLiteral(),
		out:      out,
		diag:     diag,
	}
}

//
// Dispatch a single operator byte.  Every byte falls into exactly one
// of three groups: implemented operators, dc operators we recognize but
// do not implement (registers, macros, strings, radix and precision),
// and everything else.  Errors are reported here and go no further
//

func (c *calc) execute(ch byte) evalStatus {

	var err error

	c.numOps++

	switch ch {
	default:
		err = newCharError(EBADCHARACTER, ch)

	case 's', 'S', 'l', 'L', 'x', '[', ']', 'a', 'P', '<', '>', '=', '!',
		':', ';', '?', 'i', 'I', 'o', 'O', 'k', 'K', 'X', 'Z', 'Q', '#':
		err = newCharError(EUNIMPLEMENTED, ch)

	//
	// Binary arithmetic, left operand is the one pushed first
	//

	case '+':
		err = c.binaryOp(func(a, b float64) (float64, error) {
			return a + b, nil
		})

	case '-':
		err = c.binaryOp(func(a, b float64) (float64, error) {
			return a - b, nil
		})

	case '*':
		err = c.binaryOp(func(a, b float64) (float64, error) {
			return a * b, nil
		})

	case '/':
		err = c.binaryOp(func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return a / b, nil
		})

	case '%':
		err = c.binaryOp(func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivideByZero
			}
			return math.Mod(a, b), nil
		})

	case '^':
		err = c.binaryOp(func(a, b float64) (float64, error) {
			return math.Pow(a, b), nil
		})

	case '~':
		err = c.divMod()

	//
	// Unary operators replace the top of the stack
	//

	case '_':
		err = c.unaryOp(func(a float64) float64 { return -a })

	case 'v':
		err = c.unaryOp(math.Sqrt)

	case 'b':
		err = c.unaryOp(func(a float64) float64 {
			if a == 0 {
				return 0
			}
			return math.Abs(a)
		})

	case '$':
		err = c.unaryOp(math.Trunc)

	case 'N':
		err = c.unaryOp(func(a float64) float64 { return boolToValue(a == 0) })

	//
	// Comparisons push 1 for true and 0 for false.  Note the operands
	// are (second, top) but the ordering tests read top first
	//

	case '(':
		err = c.compareOp(func(second, top float64) bool { return top < second })

	case ')':
		err = c.compareOp(func(second, top float64) bool { return top > second })

	case '{':
		err = c.compareOp(func(second, top float64) bool { return top <= second })

	case '}':
		err = c.compareOp(func(second, top float64) bool { return top >= second })

	case 'M':
		err = c.compareOp(func(second, top float64) bool {
			return second != 0 && top != 0
		})

	case 'm':
		err = c.compareOp(func(second, top float64) bool {
			return second != 0 || top != 0
		})

	case 'G':
		err = c.compareOp(func(second, top float64) bool { return second == top })

	//
	// Stack manipulation
	//

	case 'd':
		err = c.duplicate()

	case 'r':
		err = c.swap()

	case 'R':
		_, err = c.stack.popOne()

	case 'c':
		c.stack.clear()

	case 'z':
		c.stack.push(float64(c.stack.depth()))

	//
	// Printing
	//

	case 'p':
		err = c.printTop(false)

	case 'n':
		err = c.printTop(true)

	case 'f':
		c.stack.printAll(c.out)

	case 'q':
		return evalHalt
	}

	if err != nil {
		c.report(err)
	}

	return evalContinue
}

//
// Operators check their operands and compute before popping anything,
// so a failure (underflow or a zero divisor) leaves the stack as it was
//

func (c *calc) binaryOp(f binaryFunc) error {

	a, b, err := c.stack.peekTwo()
	if err != nil {
		return err
	}

	v, err := f(a, b)
	if err != nil {
		return err
	}

	_, _, _ = c.stack.popTwo()

	c.stack.push(v)

	return nil
}

func (c *calc) compareOp(f compareFunc) error {

	return c.binaryOp(func(a, b float64) (float64, error) {
		return boolToValue(f(a, b)), nil
	})
}

func (c *calc) unaryOp(f unaryFunc) error {

	v, err := c.stack.popOne()
	if err != nil {
		return err
	}

	c.stack.push(f(v))

	return nil
}

//
// Quotient and remainder are computed the same way '/' and '%' compute
// them.  The quotient is pushed first, so the remainder ends up on top
//

func (c *calc) divMod() error {

	a, b, err := c.stack.peekTwo()
	if err != nil {
		return err
	}

	if b == 0 {
		return errDivideByZero
	}

	_, _, _ = c.stack.popTwo()

	c.stack.push(a / b)
	c.stack.push(math.Mod(a, b))

	return nil
}

func (c *calc) duplicate() error {

	v, err := c.stack.peek()
	if err != nil {
		return err
	}

	c.stack.push(v)

	return nil
}

func (c *calc) swap() error {

	second, top, err := c.stack.popTwo()
	if err != nil {
		return err
	}

	c.stack.push(top)
	c.stack.push(second)

	return nil
}

func (c *calc) printTop(remove bool) error {

	var v float64
	var err error

	if remove {
		v, err = c.stack.popOne()
	} else {
		v, err = c.stack.peek()
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, formatValue(v))

	return nil
}

func boolToValue(b bool) float64 {

	if b {
		return 1.0
	}

	return 0.0
}
