package main

// This is a converter from AsciiMath equations to LaTeX math markup.

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/letung3105/am2latex/internal/asciimath"
	"gopkg.in/yaml.v3"
)

const (
	version = "0.1.0"
	usage   = `am2latex - convert AsciiMath equations to LaTeX

Usage:
  am2latex [options] [equation]

The equation is read from standard input when it is not given as an argument.

Options:
  -h                  Show this help message
  -version            Show version information
  -symbols <file>     YAML file extending the default symbol tables
  -dump-symbols       Write the symbol tables as YAML to stdout
  -lenient            Keep what parsed when trailing input does not
  -tree               Print the syntax tree instead of LaTeX
  -echo               Print the equation as parsed instead of LaTeX
  -tokens             Print the symbols of the equation, one per line
  -repl               Convert equations line by line from stdin

Examples:
  am2latex 'a/b = c'
  echo 'sum_(i=1)^n i^3' | am2latex
  am2latex -dump-symbols > symbols.yaml
`
)

// Exit statuses follow sysexits.h.
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
	exitIOErr    = 74
)

type options struct {
	symbolsFile string
	dumpSymbols bool
	lenient     bool
	tree        bool
	echo        bool
	tokens      bool
	repl        bool
	version     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("am2latex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
	}
	flags.StringVar(&opts.symbolsFile, "symbols", "", "YAML symbols file")
	flags.BoolVar(&opts.dumpSymbols, "dump-symbols", false, "Write the symbol tables as YAML")
	flags.BoolVar(&opts.lenient, "lenient", false, "Keep what parsed when trailing input does not")
	flags.BoolVar(&opts.tree, "tree", false, "Print the syntax tree")
	flags.BoolVar(&opts.echo, "echo", false, "Print the equation as parsed")
	flags.BoolVar(&opts.tokens, "tokens", false, "Print the symbols of the equation")
	flags.BoolVar(&opts.repl, "repl", false, "Convert equations line by line")
	flags.BoolVar(&opts.version, "version", false, "Show version")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if opts.version {
		fmt.Fprintf(stdout, "am2latex version %s\n", version)
		return exitOK
	}
	if flags.NArg() > 1 {
		fmt.Fprintf(stderr, "Error: expected at most one equation, got %d.\n\n", flags.NArg())
		flags.Usage()
		return exitUsage
	}

	symbols := asciimath.DefaultSymbols()
	if opts.symbolsFile != "" {
		rules, err := asciimath.LoadRulesFile(opts.symbolsFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitNoInput
		}
		if symbols, err = asciimath.ApplyRulesToDefaults(rules); err != nil {
			fmt.Fprintf(stderr, "Error applying symbols file '%s': %v\n", opts.symbolsFile, err)
			return exitDataErr
		}
	}

	if opts.dumpSymbols {
		out, err := yaml.Marshal(symbols.Rules())
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to marshal symbols to YAML: %v\n", err)
			return exitSoftware
		}
		if _, err := stdout.Write(out); err != nil {
			return exitIOErr
		}
		return exitOK
	}

	converter := asciimath.NewConverter(symbols, opts.lenient)
	reporter := asciimath.NewSimpleReporter(stderr)

	if opts.repl {
		return runPrompt(stdin, stdout, converter, reporter, opts)
	}

	var equation string
	if flags.NArg() == 1 {
		equation = flags.Arg(0)
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading from stdin: %v\n", err)
			return exitIOErr
		}
		equation = string(data)
	}
	equation = strings.TrimSpace(equation)
	if equation == "" {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	convert(equation, stdout, converter, reporter, opts)
	if reporter.HadError() {
		return exitDataErr
	}
	return exitOK
}

// Convert equations line by line, reporting errors without stopping
func runPrompt(
	stdin io.Reader,
	stdout io.Writer,
	converter *asciimath.Converter,
	reporter asciimath.Reporter,
	opts options,
) int {
	s := bufio.NewScanner(stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Fprint(stdout, "> ")
		if !s.Scan() {
			break
		}
		if equation := strings.TrimSpace(s.Text()); equation != "" {
			convert(equation, stdout, converter, reporter, opts)
		}
		reporter.Reset()
	}
	if s.Err() != nil {
		return exitIOErr
	}
	return exitOK
}

func convert(
	equation string,
	stdout io.Writer,
	converter *asciimath.Converter,
	reporter asciimath.Reporter,
	opts options,
) {
	if opts.tokens {
		lexer := asciimath.NewLexer([]rune(equation), converter.Symbols())
		for _, sym := range lexer.Scan() {
			fmt.Fprintf(stdout, "%q\n", string(sym))
		}
		return
	}

	expr, err := converter.Parse(equation)
	if err != nil {
		reporter.Report(err)
		return
	}
	switch {
	case opts.tree:
		printer := asciimath.AstPrinter{}
		fmt.Fprintln(stdout, printer.Print(expr))
	case opts.echo:
		printer := asciimath.EchoPrinter{}
		fmt.Fprintln(stdout, printer.Print(expr))
	default:
		fmt.Fprintln(stdout, converter.Latex(expr))
	}
}
