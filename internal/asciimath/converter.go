package asciimath

// Converter turns AsciiMath equations into LaTeX. It holds no per-call state:
// every conversion gets its own Lexer and Parser, so a Converter can be used
// from several goroutines at once.
type Converter struct {
	symbols *SymbolTable
	lenient bool
}

// NewConverter creates a converter using the given symbol table, or the
// default table when symbols is nil.
func NewConverter(symbols *SymbolTable, lenient bool) *Converter {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	return &Converter{symbols, lenient}
}

// Symbols returns the symbol table the converter uses.
func (c *Converter) Symbols() *SymbolTable {
	return c.symbols
}

// Parse builds the syntax tree of an equation.
func (c *Converter) Parse(equation string) (Expr, error) {
	lexer := NewLexer([]rune(equation), c.symbols)
	return NewParser(lexer, c.lenient).Parse()
}

// Convert returns the LaTeX math markup for an equation. Nothing is returned
// for an equation that does not parse.
func (c *Converter) Convert(equation string) (string, error) {
	expr, err := c.Parse(equation)
	if err != nil {
		return "", err
	}
	return c.Latex(expr), nil
}

// Latex renders a syntax tree produced by Parse.
func (c *Converter) Latex(expr Expr) string {
	return NewLatexRenderer(c.symbols).Render(expr)
}

// Convert converts an equation with the default symbol table.
func Convert(equation string) (string, error) {
	return NewConverter(nil, false).Convert(equation)
}
