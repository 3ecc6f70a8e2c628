package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {

	fmt.Fprintf(w, "Usage: %s [OPTION]... [FILE]...\n", g.progName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -e, --expression=EXPR  evaluate EXPR")
	fmt.Fprintln(w, "  -f, --file=FILE        evaluate the contents of FILE")
	fmt.Fprintln(w, "  -h, --help             display this help and exit")
	fmt.Fprintln(w, "  -V, --version          output version information and exit")
	fmt.Fprintln(w, "      --prompt=TEXT      prompt shown when reading from a terminal")
	fmt.Fprintln(w, "      --stats            print execution statistics on exit")
	fmt.Fprintln(w, "      --trace            dump the stack after every line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no -e or -f, and no FILE, standard input is read.")
	fmt.Fprintln(w)

	executeHelp(w)
}

func executeHelp(w io.Writer) {

	fmt.Fprintln(w, "Arithmetic (second-from-top OP top):")
	fmt.Fprintln(w, "\t+ - * /\tadd, subtract, multiply, divide")
	fmt.Fprintln(w, "\t%\tremainder")
	fmt.Fprintln(w, "\t^\texponentiation")
	fmt.Fprintln(w, "\t~\tpush quotient, then remainder")

	fmt.Fprintln(w, "Unary:")
	fmt.Fprintln(w, "\t_\tnegate")
	fmt.Fprintln(w, "\tv\tsquare root")
	fmt.Fprintln(w, "\tb\tabsolute value")
	fmt.Fprintln(w, "\t$\ttruncate toward zero")
	fmt.Fprintln(w, "\tN\tlogical not")

	fmt.Fprintln(w, "Comparison (push 1 or 0):")
	fmt.Fprintln(w, "\t( )\ttop < second, top > second")
	fmt.Fprintln(w, "\t{ }\ttop <= second, top >= second")
	fmt.Fprintln(w, "\tG\tequal")
	fmt.Fprintln(w, "\tM m\tlogical and, logical or")

	fmt.Fprintln(w, "Stack:")
	fmt.Fprintln(w, "\td\tduplicate top")
	fmt.Fprintln(w, "\tr\tswap top two")
	fmt.Fprintln(w, "\tR\tdiscard top")
	fmt.Fprintln(w, "\tc\tclear")
	fmt.Fprintln(w, "\tz\tpush depth")

	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "\tp\tprint top")
	fmt.Fprintln(w, "\tn\tprint and discard top")
	fmt.Fprintln(w, "\tf\tprint whole stack, top first")

	fmt.Fprintln(w, "\tq\tquit")
}
