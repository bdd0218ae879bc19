package asciimath

import (
	"fmt"
	"strings"
)

// LatexRenderer turns a syntax tree into LaTeX math markup. Each node renders
// its children first and wraps them in its own markup; the raw result is then
// tidied by postProcess.
type LatexRenderer struct {
	symbols *SymbolTable
}

func NewLatexRenderer(symbols *SymbolTable) *LatexRenderer {
	return &LatexRenderer{symbols}
}

// Render returns the LaTeX for expr with the clean-up substitutions applied.
func (renderer *LatexRenderer) Render(expr Expr) string {
	return postProcess(renderer.raw(expr))
}

// raw returns the LaTeX for expr before any clean-up.
func (renderer *LatexRenderer) raw(expr Expr) string {
	s, _ := expr.Accept(renderer)
	return fmt.Sprintf("%v", s)
}

func (renderer *LatexRenderer) simple(simple Simple) interface{} {
	s, _ := simple.Accept(renderer)
	return s
}

func (renderer *LatexRenderer) VisitConstantSimple(simple *ConstantSimple) (interface{}, error) {
	return renderer.symbols.Latex(simple.Sym), nil
}

func (renderer *LatexRenderer) VisitDelimitedSimple(simple *DelimitedSimple) (interface{}, error) {
	left, right := string(simple.Kind.Left()), string(simple.Kind.Right())
	if simple.Kind == Brace {
		left, right = "\\{", "\\}"
	}
	return fmt.Sprintf("%s%s%s", left, renderer.raw(simple.Inner), right), nil
}

func (renderer *LatexRenderer) VisitUnarySimple(simple *UnarySimple) (interface{}, error) {
	return fmt.Sprintf(
		"\\%s{%s}",
		renderer.symbols.Command(simple.Op),
		renderer.simple(simple.Operand),
	), nil
}

func (renderer *LatexRenderer) VisitBinarySimple(simple *BinarySimple) (interface{}, error) {
	return fmt.Sprintf(
		"\\%s{%s}{%s}",
		renderer.symbols.Command(simple.Op),
		renderer.simple(simple.Left),
		renderer.simple(simple.Right),
	), nil
}

func (renderer *LatexRenderer) VisitSimpleExpr(expr *SimpleExpr) (interface{}, error) {
	return renderer.simple(expr.Inner), nil
}

func (renderer *LatexRenderer) VisitSequenceExpr(expr *SequenceExpr) (interface{}, error) {
	return fmt.Sprintf("%s%s", renderer.simple(expr.Head), renderer.raw(expr.Tail)), nil
}

func (renderer *LatexRenderer) VisitFractionExpr(expr *FractionExpr) (interface{}, error) {
	return fmt.Sprintf("\\frac{%s}{%s}", renderer.simple(expr.Top), renderer.simple(expr.Bottom)), nil
}

func (renderer *LatexRenderer) VisitSuperscriptExpr(expr *SuperscriptExpr) (interface{}, error) {
	return fmt.Sprintf("%s^{%s}", renderer.simple(expr.Base), renderer.simple(expr.Exp)), nil
}

func (renderer *LatexRenderer) VisitSubscriptExpr(expr *SubscriptExpr) (interface{}, error) {
	return fmt.Sprintf("%s_{%s}", renderer.simple(expr.Base), renderer.simple(expr.Sub)), nil
}

func (renderer *LatexRenderer) VisitSubSuperscriptExpr(expr *SubSuperscriptExpr) (interface{}, error) {
	return fmt.Sprintf(
		"%s_{%s}^{%s}",
		renderer.simple(expr.Base),
		renderer.simple(expr.Sub),
		renderer.simple(expr.Exp),
	), nil
}

func (renderer *LatexRenderer) VisitChainExpr(expr *ChainExpr) (interface{}, error) {
	return fmt.Sprintf("%s%s", renderer.raw(expr.First), renderer.raw(expr.Rest)), nil
}

// cleanups run in order over the rendered string.
var cleanups = []struct{ old, new string }{
	{"{(", "{"},
	{")}", "}"},
	{" _", "_"},
	{" ^", "^"},
	{" }", "}"},
	{"(", "\\left("},
	{")", "\\right)"},
}

// postProcess collapses runs of spaces, drops parentheses made redundant by
// an enclosing group, removes spaces before scripts and closing braces, and
// sizes the remaining parentheses with \left and \right.
func postProcess(latex string) string {
	for strings.Contains(latex, "  ") {
		latex = strings.ReplaceAll(latex, "  ", " ")
	}
	for _, c := range cleanups {
		latex = strings.ReplaceAll(latex, c.old, c.new)
	}
	return latex
}
