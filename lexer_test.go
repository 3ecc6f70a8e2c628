package main

import (
	"math"

	gc "gopkg.in/check.v1"
)

type lexerSuite struct {
	evalFixture
}

var _ = gc.Suite(&lexerSuite{})

func (s *lexerSuite) SetUpTest(c *gc.C) {
	s.reset()
}

var literalTests = []struct {
	line  string
	stack []string
	diag  string
}{{
	line:  "42",
	stack: []string{"42"},
}, {
	line:  "1.5 2.25\n",
	stack: []string{"1.5", "2.25"},
}, {
	line:  ".5\t7.\r\n",
	stack: []string{"0.5", "7"},
}, {
	line:  "1e3 2.5E-2 1e+2",
	stack: []string{"1000", "0.025", "100"},
}, {
	line:  "1e999",
	stack: []string{"inf"},
}, {
	line:  "3 4-",
	stack: []string{"-1"},
}, {
	line:  "2 3+4",
	stack: []string{"5", "4"},
}, {
	line:  "1.2.3",
	stack: []string{},
	diag:  "dc: cannot parse number \"1.2.3\"\n",
}, {
	line:  "5e 6",
	stack: []string{"6"},
	diag:  "dc: cannot parse number \"5e\"\n",
}, {
	line:  "1e-+2",
	stack: []string{"2"},
	diag:  "dc: cannot parse number \"1e-\"\ndc: stack empty\n",
}, {
	line:  ".",
	stack: []string{},
	diag:  "dc: cannot parse number \".\"\n",
}, {
	line:  "e",
	stack: []string{},
	diag:  "dc: 'e' (0145) is not a valid command\n",
}}

func (s *lexerSuite) TestLiterals(c *gc.C) {
	for i, test := range literalTests {
		c.Logf("test %d: %q", i, test.line)
		s.reset()
		c.Check(s.eval(test.line), gc.Equals, evalContinue)
		s.assertStack(c, test.stack...)
		c.Check(s.diag.String(), gc.Equals, test.diag)
		c.Check(s.calc.lit.mode, gc.Equals, lexIdle)
	}
}

func (s *lexerSuite) TestExtend(c *gc.C) {
	var lit literal

	c.Check(lit.extend('e'), gc.Equals, false)
	c.Check(lit.extend('+'), gc.Equals, false)
	c.Check(lit.mode, gc.Equals, lexIdle)

	for _, ch := range []byte("6.02e") {
		c.Check(lit.extend(ch), gc.Equals, true)
	}
	c.Check(lit.extend('-'), gc.Equals, true)
	c.Check(lit.extend('-'), gc.Equals, false)
	c.Check(lit.extend('2'), gc.Equals, true)
	c.Check(lit.extend('3'), gc.Equals, true)
	c.Check(lit.extend(' '), gc.Equals, false)
	c.Check(string(lit.buf), gc.Equals, "6.02e-23")

	v, ok, err := lit.commit()
	c.Assert(err, gc.IsNil)
	c.Check(ok, gc.Equals, true)
	c.Check(v, gc.Equals, 6.02e-23)
	c.Check(lit.mode, gc.Equals, lexIdle)
	c.Check(lit.buf, gc.HasLen, 0)
}

func (s *lexerSuite) TestCommitIdle(c *gc.C) {
	var lit literal

	_, ok, err := lit.commit()
	c.Check(ok, gc.Equals, false)
	c.Check(err, gc.IsNil)
}

func (s *lexerSuite) TestCommitFailureResets(c *gc.C) {
	lit := newLiteral()
	for _, ch := range []byte("1..") {
		lit.extend(ch)
	}

	_, ok, err := lit.commit()
	c.Check(ok, gc.Equals, false)
	c.Check(err, gc.ErrorMatches, `cannot parse number "1\.\."`)
	c.Check(lit.mode, gc.Equals, lexIdle)
	c.Check(lit.buf, gc.HasLen, 0)
}

func (s *lexerSuite) TestLiteralCommittedAtEndOfLine(c *gc.C) {
	s.eval("12", "34")
	s.assertStack(c, "12", "34")
}

func (s *lexerSuite) TestSignAfterDigitsIsOperator(c *gc.C) {
	s.eval("10 4-p")
	c.Check(s.out.String(), gc.Equals, "6\n")
}

func (s *lexerSuite) TestNegateFollowsLiteral(c *gc.C) {
	s.eval("5_")
	s.assertStack(c, "-5")
}

func (s *lexerSuite) TestHaltCommitsPendingLiteral(c *gc.C) {
	c.Check(s.eval("12q34"), gc.Equals, evalHalt)
	s.assertStack(c, "12")
}

func (s *lexerSuite) TestHugeExponentOverflows(c *gc.C) {
	s.eval("1e400_")
	c.Check(math.IsInf(s.calc.stack.entries[0], -1), gc.Equals, true)
	c.Check(s.diag.String(), gc.Equals, "")
}

func (s *lexerSuite) TestCountsLines(c *gc.C) {
	s.eval("1", "2", "+")
	c.Check(s.calc.numLines, gc.Equals, int64(3))
	c.Check(s.calc.numOps, gc.Equals, int64(1))
}
