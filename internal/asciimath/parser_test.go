package asciimath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func constant(sym string) *ConstantSimple {
	return NewConstantSimple(Symbol(sym))
}

func parse(src string, lenient bool) (Expr, error) {
	lexer := NewLexer([]rune(src), DefaultSymbols())
	return NewParser(lexer, lenient).Parse()
}

func TestParseSimple(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"a", NewSimpleExpr(constant("a"))},
		{"42", NewSimpleExpr(constant("42"))},
		{"alpha", NewSimpleExpr(constant("alpha"))},
		{"(a)", NewSimpleExpr(
			NewDelimitedSimple(NewSimpleExpr(constant("a")), Paren))},
		{"[a]", NewSimpleExpr(
			NewDelimitedSimple(NewSimpleExpr(constant("a")), Bracket))},
		{"{a}", NewSimpleExpr(
			NewDelimitedSimple(NewSimpleExpr(constant("a")), Brace))},
		{"sqrt5", NewSimpleExpr(
			NewUnarySimple("sqrt", constant("5")))},
		{"sqrt sqrt x", NewSequenceExpr(
			NewUnarySimple("sqrt", constant(" ")),
			NewSequenceExpr(
				NewUnarySimple("sqrt", constant(" ")),
				NewSimpleExpr(constant("x"))))},
		{"frac(1)(2)", NewSimpleExpr(
			NewBinarySimple(
				"frac",
				NewDelimitedSimple(NewSimpleExpr(constant("1")), Paren),
				NewDelimitedSimple(NewSimpleExpr(constant("2")), Paren)))},
		{"root3x", NewSimpleExpr(
			NewBinarySimple("root", constant("3"), constant("x")))},
		// a leading expression operator is skipped
		{"^a", NewSimpleExpr(constant("a"))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parse(tc.src, false)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseCombined(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"ab", NewSequenceExpr(constant("a"), NewSimpleExpr(constant("b")))},
		{"a/b", NewFractionExpr(constant("a"), constant("b"))},
		{"a^b", NewSuperscriptExpr(constant("a"), constant("b"))},
		{"a_b", NewSubscriptExpr(constant("a"), constant("b"))},
		{"a_b^c", NewSubSuperscriptExpr(constant("a"), constant("b"), constant("c"))},
		{"a^b c", NewChainExpr(
			NewSuperscriptExpr(constant("a"), constant("b")),
			NewSequenceExpr(constant(" "), NewSimpleExpr(constant("c"))))},
		{"x a/b", NewSequenceExpr(
			constant("x"),
			NewSequenceExpr(
				constant(" "),
				NewFractionExpr(constant("a"), constant("b"))))},
		{"a/b/c", NewChainExpr(
			NewFractionExpr(constant("a"), constant("b")),
			NewSimpleExpr(constant("c")))},
		{"(a/b)^2", NewSuperscriptExpr(
			NewDelimitedSimple(
				NewFractionExpr(constant("a"), constant("b")),
				Paren),
			constant("2"))},
		{"e^(i pi)", NewSuperscriptExpr(
			constant("e"),
			NewDelimitedSimple(
				NewSequenceExpr(
					constant("i"),
					NewSequenceExpr(constant(" "), NewSimpleExpr(constant("pi")))),
				Paren))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parse(tc.src, false)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		src  string
		kind error
		msg  string
	}{
		{"", ErrEmptyResult, "[offset 0] Error at end: Expect an equation."},
		{"(", ErrExpectedSymbol, "[offset 1] Error at end: Expect expression."},
		{"a+(c", ErrUnmatchedDelimiter, "[offset 4] Error at end: Expect ')' to close '('."},
		{"b+(c + d/b", ErrUnmatchedDelimiter, "[offset 10] Error at end: Expect ')' to close '('."},
		{"(a]", ErrUnmatchedDelimiter, "[offset 2] Error at ']': Expect ')' to close '('."},
		{"a/", ErrMissingOperand, "[offset 2] Error at '/': Expect operand."},
		{"a_b^", ErrMissingOperand, "[offset 4] Error at '^': Expect operand."},
		{"sqrt", ErrMissingOperand, "[offset 4] Error at 'sqrt': Expect operand."},
		{"frac12", ErrMissingOperand, "[offset 6] Error at 'frac': Expect operand."},
		{"a)", ErrUnexpectedSymbol, "[offset 1] Error at ')': Expect end of equation."},
		{"a^b sqrt", ErrMissingOperand, "[offset 8] Error at 'sqrt': Expect operand."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parse(tc.src, false)

		assert.Nil(expr, tc.src)
		assert.ErrorIs(err, tc.kind, tc.src)
		assert.EqualError(err, tc.msg, tc.src)
	}
}

func TestParseLenient(t *testing.T) {
	testCases := []struct {
		src  string
		expr Expr
	}{
		{"a)", NewSimpleExpr(constant("a"))},
		{"a^b sqrt", NewSuperscriptExpr(constant("a"), constant("b"))},
		{"x_1 frac2", NewSubscriptExpr(constant("x"), constant("1"))},
		{"a^b c", NewChainExpr(
			NewSuperscriptExpr(constant("a"), constant("b")),
			NewSequenceExpr(constant(" "), NewSimpleExpr(constant("c"))))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parse(tc.src, true)

		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseLenientStillFailsOnUnbalancedDelimiters(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("a+(c", true)
	assert.ErrorIs(err, ErrUnmatchedDelimiter)

	_, err = parse("(a^b sqrt", true)
	assert.ErrorIs(err, ErrUnmatchedDelimiter)
}
