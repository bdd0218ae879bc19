package asciimath

import "fmt"

// Parser builds the syntax tree of one AsciiMath equation, pulling symbols
// from its Lexer as it goes.
//
// Grammar
//
//	expr   --> simple
//	         | simple expr
//	         | simple "/" simple ( expr )?
//	         | simple "_" simple ( "^" simple )? ( expr )?
//	         | simple "^" simple ( expr )? ;
//	simple --> LEFT expr RIGHT
//	         | UNARY simple
//	         | BINARY simple simple
//	         | CONSTANT ;
//
// An expression stops in front of a right delimiter so the enclosing simple
// expression can consume it. Failures are never recovered from: the first
// error aborts the whole parse.
type Parser struct {
	lexer   *Lexer
	symbols *SymbolTable
	lenient bool
}

// NewParser creates a parser reading from lexer. A lenient parser keeps a
// combined expression when the input after it does not parse, and ignores
// symbols left over after the equation.
func NewParser(lexer *Lexer, lenient bool) *Parser {
	return &Parser{lexer, lexer.symbols, lenient}
}

// Parse reads the whole equation and returns the root of its syntax tree.
func (parser *Parser) Parse() (Expr, error) {
	if _, ok := parser.lexer.PeekCharacter(); !ok {
		return nil, NewParseError(
			ErrEmptyResult,
			parser.lexer.Offset(),
			"",
			"Expect an equation.",
		)
	}
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if sym, ok := parser.lexer.PeekSymbol(); ok && !parser.lenient {
		return nil, NewParseError(
			ErrUnexpectedSymbol,
			parser.lexer.Offset(),
			sym,
			"Expect end of equation.",
		)
	}
	return expr, nil
}

// expression parses a simple expression and whatever is juxtaposed with it or
// combined with it by "/", "_" or "^".
func (parser *Parser) expression() (Expr, error) {
	simple, err := parser.simple()
	if err != nil {
		return nil, err
	}

	next, ok := parser.lexer.PeekSymbol()
	if !ok || parser.symbols.Is(next, RightDelimiter) {
		return NewSimpleExpr(simple), nil
	}
	if !parser.symbols.Is(next, ExpressionOperator) {
		tail, err := parser.expression()
		if err != nil {
			return nil, err
		}
		return NewSequenceExpr(simple, tail), nil
	}

	parser.lexer.NextSymbol()
	right, err := parser.operand(next)
	if err != nil {
		return nil, err
	}

	var combined Expr
	switch next {
	case SymFraction:
		combined = NewFractionExpr(simple, right)
	case SymSubscript:
		if sym, ok := parser.lexer.PeekSymbol(); ok && sym == SymSuperscript {
			parser.lexer.NextSymbol()
			exp, err := parser.operand(sym)
			if err != nil {
				return nil, err
			}
			combined = NewSubSuperscriptExpr(simple, right, exp)
		} else {
			combined = NewSubscriptExpr(simple, right)
		}
	default:
		combined = NewSuperscriptExpr(simple, right)
	}
	return parser.chain(combined)
}

// chain attaches the rest of the current context, if any, to an expression
// built by "/", "_" or "^".
func (parser *Parser) chain(combined Expr) (Expr, error) {
	next, ok := parser.lexer.PeekSymbol()
	if !ok || parser.symbols.Is(next, RightDelimiter) {
		return combined, nil
	}
	mark := parser.lexer.Offset()
	rest, err := parser.expression()
	if err != nil {
		if parser.lenient {
			parser.lexer.reset(mark)
			return combined, nil
		}
		return nil, err
	}
	return NewChainExpr(combined, rest), nil
}

// simple parses one delimited group, operator application or constant.
func (parser *Parser) simple() (Simple, error) {
	sym, err := parser.next("Expect expression.")
	if err != nil {
		return nil, err
	}
	// an expression operator is never a leaf on its own
	if parser.symbols.Is(sym, ExpressionOperator) {
		sym, err = parser.next(fmt.Sprintf("Expect expression after '%s'.", sym))
		if err != nil {
			return nil, err
		}
	}

	switch parser.symbols.Classify(sym) {
	case LeftDelimiter:
		return parser.delimited(sym)
	case UnaryOperator:
		operand, err := parser.operand(sym)
		if err != nil {
			return nil, err
		}
		return NewUnarySimple(sym, operand), nil
	case BinaryOperator:
		left, err := parser.operand(sym)
		if err != nil {
			return nil, err
		}
		right, err := parser.operand(sym)
		if err != nil {
			return nil, err
		}
		return NewBinarySimple(sym, left, right), nil
	}
	return NewConstantSimple(sym), nil
}

// delimited parses the expression following an opening delimiter and the
// matching closing delimiter.
func (parser *Parser) delimited(open Symbol) (Simple, error) {
	kind, _ := delimiterKindOf(open)
	inner, err := parser.expression()
	if err != nil {
		return nil, err
	}
	message := fmt.Sprintf("Expect '%s' to close '%s'.", kind.Right(), open)
	closing, ok := parser.lexer.PeekSymbol()
	if !ok {
		return nil, NewParseError(ErrUnmatchedDelimiter, parser.lexer.Offset(), "", message)
	}
	if closing != kind.Right() {
		return nil, NewParseError(ErrUnmatchedDelimiter, parser.lexer.Offset(), closing, message)
	}
	parser.lexer.NextSymbol()
	return NewDelimitedSimple(inner, kind), nil
}

// operand parses the simple expression an operator applies to.
func (parser *Parser) operand(op Symbol) (Simple, error) {
	if _, ok := parser.lexer.PeekCharacter(); !ok {
		return nil, NewParseError(
			ErrMissingOperand,
			parser.lexer.Offset(),
			op,
			"Expect operand.",
		)
	}
	return parser.simple()
}

// next consumes a symbol that must be present.
func (parser *Parser) next(message string) (Symbol, error) {
	sym, ok := parser.lexer.NextSymbol()
	if !ok {
		return "", NewParseError(ErrExpectedSymbol, parser.lexer.Offset(), "", message)
	}
	return sym, nil
}
