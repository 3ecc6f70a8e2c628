package main

import (
	"bytes"
	"errors"

	gc "gopkg.in/check.v1"
)

type errorsSuite struct{}

var _ = gc.Suite(&errorsSuite{})

func (*errorsSuite) TestKinds(c *gc.C) {
	c.Check(EDIVIDEBYZERO.kind(), gc.Equals, arithmeticError)
	c.Check(EFLOATPARSE.kind(), gc.Equals, parserError)
	c.Check(EBADCHARACTER.kind(), gc.Equals, parserError)
	c.Check(EFEWELEMENTS.kind(), gc.Equals, stackError)
	c.Check(EUNIMPLEMENTED.kind(), gc.Equals, unimplementedFeature)

	c.Check(arithmeticError.String(), gc.Equals, "ArithmeticError")
	c.Check(unimplementedFeature.String(), gc.Equals, "UnimplementedFeature")
}

func (*errorsSuite) TestMessages(c *gc.C) {
	c.Check(errDivideByZero, gc.ErrorMatches, "divide by zero")
	c.Check(errFewElements, gc.ErrorMatches, "stack empty")
	c.Check(newParseError("1.2.3").Error(), gc.Equals, `cannot parse number "1.2.3"`)
	c.Check(newCharError(EBADCHARACTER, '@').Error(), gc.Equals, `'@' (0100) is not a valid command`)
	c.Check(newCharError(EUNIMPLEMENTED, 'x').Error(), gc.Equals, `'x' (0170) unimplemented`)
	c.Check(newCharError(EBADCHARACTER, 1).Error(), gc.Equals, `'\x01' (01) is not a valid command`)
}

func (*errorsSuite) TestUnwrap(c *gc.C) {
	c.Check(errors.Is(errFewElements, EFEWELEMENTS), gc.Equals, true)
	c.Check(errors.Is(newParseError("."), EFLOATPARSE), gc.Equals, true)
	c.Check(errors.Is(newParseError("."), EBADCHARACTER), gc.Equals, false)

	var ce *calcError
	c.Assert(errors.As(newCharError(EUNIMPLEMENTED, 'Q'), &ce), gc.Equals, true)
	c.Check(ce.ch, gc.Equals, byte('Q'))
	c.Check(ce.errno.kind(), gc.Equals, unimplementedFeature)
}

func (*errorsSuite) TestReport(c *gc.C) {
	var out, diag bytes.Buffer

	ev := newCalc("rpn", &out, &diag)
	ev.report(errFewElements)
	ev.report(newParseError("5e"))

	c.Check(diag.String(), gc.Equals, "rpn: stack empty\nrpn: cannot parse number \"5e\"\n")
	c.Check(out.String(), gc.Equals, "")
	c.Check(ev.numErrors, gc.Equals, int64(2))
}
