package main

import (
	"fmt"
	"os"

	"github.com/letung3105/am2latex/internal/asciimath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ast_printer <equation>...")
		os.Exit(64)
	}

	converter := asciimath.NewConverter(nil, false)
	printer := asciimath.AstPrinter{}
	status := 0
	for _, equation := range os.Args[1:] {
		expr, err := converter.Parse(equation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", equation, err)
			status = 65
			continue
		}
		fmt.Printf("%s\n\t%s\n", equation, printer.Print(expr))
	}
	os.Exit(status)
}
