package main

import (
	"fmt"
	"io"
)

func newValueStack() valueStack {
	return valueStack{entries: make([]float64, 0, stackInitialCap)}
}

func (stackp *valueStack) depth() int {
	return len(stackp.entries)
}

//
// Every operator needing N operands calls this before touching the
// stack, so an underflow leaves the stack exactly as it was
//

func (stackp *valueStack) need(n int) error {

	if len(stackp.entries) < n {
		return errFewElements
	}

	return nil
}

func (stackp *valueStack) push(v float64) {

	stackp.entries = append(stackp.entries, v)
}

func (stackp *valueStack) popOne() (float64, error) {

	if err := stackp.need(1); err != nil {
		return 0, err
	}

	slen := len(stackp.entries)
	v := stackp.entries[slen-1]

	stackp.entries = stackp.entries[:slen-1]

	return v, nil
}

//
// Pop the top two values, returned as (second-from-top, top) so the
// earlier pushed operand is the left operand of a binary operator
//

func (stackp *valueStack) popTwo() (float64, float64, error) {

	if err := stackp.need(2); err != nil {
		return 0, 0, err
	}

	slen := len(stackp.entries)
	second, top := stackp.entries[slen-2], stackp.entries[slen-1]

	stackp.entries = stackp.entries[:slen-2]

	return second, top, nil
}

func (stackp *valueStack) peek() (float64, error) {

	if err := stackp.need(1); err != nil {
		return 0, err
	}

	return stackp.entries[len(stackp.entries)-1], nil
}

func (stackp *valueStack) peekTwo() (float64, float64, error) {

	if err := stackp.need(2); err != nil {
		return 0, 0, err
	}

	slen := len(stackp.entries)

	return stackp.entries[slen-2], stackp.entries[slen-1], nil
}

func (stackp *valueStack) clear() {

	stackp.entries = stackp.entries[:0]
}

//
// Print every value, top first, one per line
//

func (stackp *valueStack) printAll(w io.Writer) {

	for i := len(stackp.entries) - 1; i >= 0; i-- {
		fmt.Fprintln(w, formatValue(stackp.entries[i]))
	}
}
