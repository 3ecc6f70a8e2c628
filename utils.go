package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
)

//
// Values print in the shortest form that reads back to the same
// float64, never in exponent notation
//

func formatValue(v float64) string {

	switch {
	case math.IsNaN(v):
		return "NaN"

	case math.IsInf(v, 1):
		return "inf"

	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

//
// Is this reader a terminal?  Only then do we bother with liner, since
// line editing and history make no sense for piped input
//

func isTerminal(r io.Reader) bool {

	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

//
// Line source backed by liner, with editing and history
//

type linerSource struct {
	state  *liner.State
	prompt string
}

func setupLiner(prompt string) *linerSource {

	l := liner.NewLiner()

	l.SetCtrlCAborts(true)

	g.liner = l

	return &linerSource{state: l, prompt: prompt}
}

//
// Restore terminal state.  Safe to call more than once
//

func cleanupLiner() {

	if g.liner != nil {
		g.liner.Close()
		g.liner = nil
	}
}

func (ls *linerSource) readLine() (string, error) {

	s, err := ls.state.Prompt(ls.prompt)

	//
	// ^C abandons the line being typed, it does not end the session.
	// ^D at the start of a line shows up as io.EOF
	//

	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	} else if err != nil {
		return "", err
	}

	if strings.TrimSpace(s) != "" {
		ls.state.AppendHistory(s)
	}

	return s, nil
}

func (ls *linerSource) close() {

	cleanupLiner()
}

//
// Line source for pipes, files and -e expressions
//

type readerSource struct {
	reader *bufio.Reader
	closer io.Closer
}

func newReaderSource(r io.Reader) *readerSource {

	return &readerSource{reader: bufio.NewReader(r)}
}

//
// A final line without a trailing newline is still a line, so io.EOF
// is only passed up once there is nothing left at all
//

func (rs *readerSource) readLine() (string, error) {

	line, err := rs.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}

	return line, err
}

func (rs *readerSource) close() {

	if rs.closer != nil {
		_ = rs.closer.Close()
		rs.closer = nil
	}
}

func openLineSource(src source) (lineSource, error) {

	switch src.kind {
	default:
		return nil, fmt.Errorf("unknown source kind %d", src.kind)

	case sourceExpr:
		return newReaderSource(strings.NewReader(src.text + "\n")), nil

	case sourceFile:
		f, err := os.Open(src.text)
		if err != nil {
			return nil, err
		}
		rs := newReaderSource(f)
		rs.closer = f
		return rs, nil
	}
}

func pluralize(str string, n int64) string {

	if n == 1 {
		return str
	}

	return str + "s"
}

//
// CPU accounting
//

func initClock() {

	s.elapsed = time.Now()
	s.utime, s.stime, _ = getCPUInfo()
}

func printStatistics(w io.Writer, c *calc) {

	fmt.Fprintf(w, "%d %s, %d %s, %d %s\n",
		c.numLines, pluralize("line", c.numLines),
		c.numOps, pluralize("operator", c.numOps),
		c.numErrors, pluralize("error", c.numErrors))

	elapsed := time.Since(s.elapsed)

	utime, stime, err := getCPUInfo()
	if err != nil {
		fmt.Fprintf(w, "CPU Usage: elapsed = %s\n",
			formatCPUTime(int64(elapsed.Seconds())))
		return
	}

	fmt.Fprintf(w, "CPU Usage: elapsed = %s / user = %s / system = %s\n",
		formatCPUTime(int64(elapsed.Seconds())),
		formatCPUTime(utime-s.utime), formatCPUTime(stime-s.stime))
}

func formatCPUTime(t int64) string {

	var h, m int64

	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}

	if t >= 60 {
		m = t / 60
		t = t % 60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}

//
// User and system time in seconds, from /proc/self/stat.  Fields 14
// and 15 are in clock ticks, hence the sysconf call
//

func getCPUInfo() (int64, int64, error) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, 0, err
	}

	if clktck <= 0 {
		return 0, 0, fmt.Errorf("bad clock tick rate %d", clktck)
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0, err
	}

	//
	// The command name (field 2) is parenthesized and may contain
	// spaces, so start counting after the closing paren
	//

	stat := string(contents)
	if i := strings.LastIndexByte(stat, ')'); i >= 0 {
		stat = stat[i+1:]
	}

	fields := strings.Fields(stat)
	if len(fields) < 13 {
		return 0, 0, fmt.Errorf("short /proc/self/stat")
	}

	utime, err := strconv.ParseInt(fields[11], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	stime, err := strconv.ParseInt(fields[12], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return utime / clktck, stime / clktck, nil
}
