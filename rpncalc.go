package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/goforj/godump"
)

func main() {

	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

//
// Everything main does, minus the exit.  Deferred cleanup (terminal
// state, buffered output) always runs before we hand back the status
//

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {

	g.progName = progName(args)

	if len(args) > 0 {
		args = args[1:]
	}

	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", g.progName, err)
		fmt.Fprintf(stderr, "Try '%s --help' for more information.\n",
			g.progName)
		return 1
	}

	if opts.help {
		printUsage(stdout)
		return 0
	}

	if opts.version {
		printVersionInfo(stdout)
		return 0
	}

	g.printStats = opts.stats
	g.traceDump = opts.trace

	initClock()

	out := bufio.NewWriter(stdout)

	defer func() {
		_ = out.Flush()
	}()

	c := newCalc(g.progName, out, stderr)

	status := evalSources(c, opts, stdin, out)

	if g.printStats {
		printStatistics(out, c)
	}

	return status
}

func progName(args []string) string {

	if len(args) == 0 || args[0] == "" {
		return defaultProgName
	}

	return filepath.Base(args[0])
}

//
// Evaluate -e expressions and files in command line order.  As with
// dc, if there were any, we are done once they are exhausted and
// standard input is never read
//

func evalSources(c *calc, opts *options, stdin io.Reader, out *bufio.Writer) int {

	for _, src := range opts.sources {
		ls, err := openLineSource(src)
		if err != nil {
			fmt.Fprintf(c.diag, "%s: %s\n", c.progName, err)
			return 1
		}

		status, err := repl(c, ls, out)

		ls.close()

		if err != nil {
			fmt.Fprintf(c.diag, "%s: %s\n", c.progName, err)
			return 1
		}

		if status == evalHalt {
			return 0
		}
	}

	if len(opts.sources) > 0 {
		return 0
	}

	var ls lineSource

	if isTerminal(stdin) {
		ls = setupLiner(opts.prompt)
		go sigHdlr()
	} else {
		ls = newReaderSource(stdin)
	}

	defer ls.close()

	if _, err := repl(c, ls, out); err != nil {
		fmt.Fprintf(c.diag, "%s: %s\n", c.progName, err)
		return 1
	}

	return 0
}

//
// The read-evaluate loop.  End of input and 'q' both end it normally,
// the caller can tell which from the returned status
//

func repl(c *calc, ls lineSource, out *bufio.Writer) (evalStatus, error) {

	for {
		line, err := ls.readLine()
		if err == io.EOF {
			return evalContinue, nil
		} else if err != nil {
			return evalContinue, err
		}

		status := c.evalLine(line)

		if err := out.Flush(); err != nil {
			return status, err
		}

		if g.traceDump {
			godump.Dump(c.stack.entries)
		}

		if status == evalHalt {
			return evalHalt, nil
		}
	}
}

//
// Options are parsed by hand.  Short options taking a value accept it
// attached (-e2p) or as the next argument, long ones as --name=value
// or as the next argument.  Anything not starting with '-' is a file
//

func parseArgs(args []string) (*options, error) {

	opts := &options{prompt: defaultPrompt}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			for _, f := range args[i+1:] {
				opts.sources = append(opts.sources, source{kind: sourceFile, text: f})
			}
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			opts.sources = append(opts.sources, source{kind: sourceFile, text: arg})
			continue
		}

		var name, value string
		var hasValue bool

		if arg[1] != '-' && len(arg) > 2 {
			name, value, hasValue = arg[:2], arg[2:], true
		} else {
			name, value, hasValue = strings.Cut(arg, "=")
		}

		switch name {
		default:
			return nil, fmt.Errorf("invalid option -- '%s'",
				strings.TrimLeft(name, "-"))

		case "-h", "--help", "-V", "--version", "--stats", "--trace":
			if hasValue {
				return nil, fmt.Errorf("option '%s' doesn't allow an argument",
					name)
			}

			switch name {
			case "-h", "--help":
				opts.help = true

			case "-V", "--version":
				opts.version = true

			case "--stats":
				opts.stats = true

			case "--trace":
				opts.trace = true
			}

		case "-e", "--expression", "-f", "--file", "--prompt":
			if !hasValue {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("option '%s' requires an argument",
						name)
				}
				i++
				value = args[i]
			}

			switch name {
			case "-e", "--expression":
				opts.sources = append(opts.sources, source{kind: sourceExpr, text: value})

			case "-f", "--file":
				opts.sources = append(opts.sources, source{kind: sourceFile, text: value})

			case "--prompt":
				opts.prompt = value
			}
		}
	}

	return opts, nil
}

func printVersionInfo(w io.Writer) {

	if buildTimestampStr == "" {
		fmt.Fprintf(w, "%s version %s\n", g.progName, VERSION)
	} else {
		fmt.Fprintf(w, "%s version %s - built %s\n", g.progName, VERSION,
			buildTimestampStr)
	}
}

//
// Only installed when liner owns the terminal.  Being killed while
// the terminal is in raw mode would leave the user's shell unusable,
// so put it back first
//

func sigHdlr() {

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, syscall.SIGHUP, syscall.SIGTERM)

	sig := <-ch

	cleanupLiner()

	fmt.Fprintf(os.Stderr, "%s: %s\n", g.progName, sig)

	os.Exit(1)
}
