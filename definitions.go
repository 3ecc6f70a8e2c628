package main

import (
	"io"
	"time"

	"github.com/peterh/liner"
)

//
// Constants
//

const VERSION = "1.0.0"

const defaultProgName = "rpncalc"

const defaultPrompt = ""

//
// Initial capacity of the value stack and the literal buffer.  Both
// grow on demand, these just avoid reallocation for typical input
//

const stackInitialCap = 32
const literalInitialCap = 24

//
// Line source kinds for -e and -f arguments
//

const (
	sourceExpr = iota
	sourceFile
)

//
// Type definitions
//

//
// The numeric lexer is either idle, or accumulating a literal.  The
// buffer is only meaningful in the accumulating state
//

type lexMode int

const (
	lexIdle lexMode = iota
	lexAccumulating
)

type literal struct {
	mode lexMode
	buf  []byte
}

type valueStack struct {
	entries []float64
}

//
// Result of evaluating a byte or a line.  evalHalt is returned when
// 'q' is seen, and the driving loop is expected to stop reading
//

type evalStatus int

const (
	evalContinue evalStatus = iota
	evalHalt
)

//
// All evaluator state.  The stack and pending literal persist across
// lines for the life of the process
//

type calc struct {
	progName  string
	stack     valueStack
	lit       literal
	out       io.Writer
	diag      io.Writer
	numLines  int64
	numOps    int64
	numErrors int64
}

type binaryFunc func(a, b float64) (float64, error)

type unaryFunc func(a float64) float64

type compareFunc func(second, top float64) bool

type lineSource interface {
	readLine() (string, error)
	close()
}

type source struct {
	kind int
	text string
}

type options struct {
	help    bool
	version bool
	stats   bool
	trace   bool
	prompt  string
	sources []source
}

//
// Global variables
//

var buildTimestampStr string

//
// This structure contains process-wide settings
//

var g struct {
	progName   string
	liner      *liner.State
	printStats bool
	traceDump  bool
}

//
// Runtime statistics, printed at exit when --stats is given
//

var s struct {
	elapsed time.Time
	utime   int64
	stime   int64
}
