package asciimath

import (
	"fmt"
	"strconv"
)

// AstPrinter renders a syntax tree as an S-expression, one parenthesized form
// per node with constants quoted.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) simple(simple Simple) interface{} {
	s, _ := simple.Accept(printer)
	return s
}

func (printer *AstPrinter) expr(expr Expr) interface{} {
	s, _ := expr.Accept(printer)
	return s
}

func (printer *AstPrinter) VisitConstantSimple(simple *ConstantSimple) (interface{}, error) {
	return strconv.Quote(string(simple.Sym)), nil
}

func (printer *AstPrinter) VisitDelimitedSimple(simple *DelimitedSimple) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", simple.Kind, printer.expr(simple.Inner)), nil
}

func (printer *AstPrinter) VisitUnarySimple(simple *UnarySimple) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", simple.Op, printer.simple(simple.Operand)), nil
}

func (printer *AstPrinter) VisitBinarySimple(simple *BinarySimple) (interface{}, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		simple.Op,
		printer.simple(simple.Left),
		printer.simple(simple.Right),
	), nil
}

func (printer *AstPrinter) VisitSimpleExpr(expr *SimpleExpr) (interface{}, error) {
	return printer.simple(expr.Inner), nil
}

func (printer *AstPrinter) VisitSequenceExpr(expr *SequenceExpr) (interface{}, error) {
	return fmt.Sprintf("(seq %s %s)", printer.simple(expr.Head), printer.expr(expr.Tail)), nil
}

func (printer *AstPrinter) VisitFractionExpr(expr *FractionExpr) (interface{}, error) {
	return fmt.Sprintf("(/ %s %s)", printer.simple(expr.Top), printer.simple(expr.Bottom)), nil
}

func (printer *AstPrinter) VisitSuperscriptExpr(expr *SuperscriptExpr) (interface{}, error) {
	return fmt.Sprintf("(^ %s %s)", printer.simple(expr.Base), printer.simple(expr.Exp)), nil
}

func (printer *AstPrinter) VisitSubscriptExpr(expr *SubscriptExpr) (interface{}, error) {
	return fmt.Sprintf("(_ %s %s)", printer.simple(expr.Base), printer.simple(expr.Sub)), nil
}

func (printer *AstPrinter) VisitSubSuperscriptExpr(expr *SubSuperscriptExpr) (interface{}, error) {
	return fmt.Sprintf(
		"(_^ %s %s %s)",
		printer.simple(expr.Base),
		printer.simple(expr.Sub),
		printer.simple(expr.Exp),
	), nil
}

func (printer *AstPrinter) VisitChainExpr(expr *ChainExpr) (interface{}, error) {
	return fmt.Sprintf("(chain %s %s)", printer.expr(expr.First), printer.expr(expr.Rest)), nil
}

// EchoPrinter writes a syntax tree back out as AsciiMath. For input the parser
// accepted, the echo is the input itself.
type EchoPrinter struct{}

func (printer *EchoPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *EchoPrinter) simple(simple Simple) interface{} {
	s, _ := simple.Accept(printer)
	return s
}

func (printer *EchoPrinter) expr(expr Expr) interface{} {
	s, _ := expr.Accept(printer)
	return s
}

func (printer *EchoPrinter) VisitConstantSimple(simple *ConstantSimple) (interface{}, error) {
	return string(simple.Sym), nil
}

func (printer *EchoPrinter) VisitDelimitedSimple(simple *DelimitedSimple) (interface{}, error) {
	return fmt.Sprintf("%s%s%s", simple.Kind.Left(), printer.expr(simple.Inner), simple.Kind.Right()), nil
}

func (printer *EchoPrinter) VisitUnarySimple(simple *UnarySimple) (interface{}, error) {
	return fmt.Sprintf("%s%s", simple.Op, printer.simple(simple.Operand)), nil
}

func (printer *EchoPrinter) VisitBinarySimple(simple *BinarySimple) (interface{}, error) {
	return fmt.Sprintf("%s%s%s", simple.Op, printer.simple(simple.Left), printer.simple(simple.Right)), nil
}

func (printer *EchoPrinter) VisitSimpleExpr(expr *SimpleExpr) (interface{}, error) {
	return printer.simple(expr.Inner), nil
}

func (printer *EchoPrinter) VisitSequenceExpr(expr *SequenceExpr) (interface{}, error) {
	return fmt.Sprintf("%s%s", printer.simple(expr.Head), printer.expr(expr.Tail)), nil
}

func (printer *EchoPrinter) VisitFractionExpr(expr *FractionExpr) (interface{}, error) {
	return fmt.Sprintf("%s/%s", printer.simple(expr.Top), printer.simple(expr.Bottom)), nil
}

func (printer *EchoPrinter) VisitSuperscriptExpr(expr *SuperscriptExpr) (interface{}, error) {
	return fmt.Sprintf("%s^%s", printer.simple(expr.Base), printer.simple(expr.Exp)), nil
}

func (printer *EchoPrinter) VisitSubscriptExpr(expr *SubscriptExpr) (interface{}, error) {
	return fmt.Sprintf("%s_%s", printer.simple(expr.Base), printer.simple(expr.Sub)), nil
}

func (printer *EchoPrinter) VisitSubSuperscriptExpr(expr *SubSuperscriptExpr) (interface{}, error) {
	return fmt.Sprintf(
		"%s_%s^%s",
		printer.simple(expr.Base),
		printer.simple(expr.Sub),
		printer.simple(expr.Exp),
	), nil
}

func (printer *EchoPrinter) VisitChainExpr(expr *ChainExpr) (interface{}, error) {
	return fmt.Sprintf("%s%s", printer.expr(expr.First), printer.expr(expr.Rest)), nil
}
