package asciimath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEquations(t *testing.T) {
	testCases := []struct {
		src   string
		latex string
	}{
		{"a/b = c", `\frac{a}{b} = c`},
		{"a+b <= c^4", `a+b \leq c^{4}`},
		{"a/b -= alpha_(d in RR)^42 ~= qz sqrt5",
			`\frac{a}{b} \equiv \alpha_{d \in \mathbb{R}}^{42} \cong qz \sqrt{5}`},
		{"sum_(i=1)^n i^3=((n(n+1))/2)^2",
			`\sum_{i=1}^{n} i^{3}=\left(\frac{n\left(n+1\right)}{2}\right)^{2}`},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		latex, err := Convert(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.latex, latex, tc.src)
	}
}

func TestConvertConstructs(t *testing.T) {
	testCases := []struct {
		src   string
		latex string
	}{
		{"x", "x"},
		{"12345678901234567890", "12345678901234567890"},
		{"a*b", `a\cdot b`},
		{"x xx y", `x \times y`},
		{"a->b", `a\to b`},
		{"a//b", "a/b"},
		{"a**b", "a*b"},
		{"sin x", `s\in x`},
		{"cos", "cos"},
		{"dim", "dim"},
		{"del f", `\partial f`},
		{"x_1", "x_{1}"},
		{"x_i^2", "x_{i}^{2}"},
		{"[a,b]", "[a,b]"},
		{"{a}", `\{a\}`},
		{"sqrt(x+1)", `\sqrt{x+1}`},
		{"frac(a)(b)", `\frac{a}{b}`},
		{"root3(x)", `\root{3}{x}`},
		{"stackrel(def)(=)", `\stackrel{def}{=}`},
		{"vec v", `\vec{}v`},
		{"(a+b)/2", `\frac{a+b}{2}`},
		{"f(x)=x^2", `f\left(x\right)=x^{2}`},
		{"AA x", `AA x`},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		latex, err := Convert(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.latex, latex, tc.src)
	}
}

func TestConvertFunctionNames(t *testing.T) {
	symbols, err := ApplyRulesToDefaults(&RulesFile{Functions: true})
	require.NoError(t, err)

	testCases := []struct {
		src   string
		latex string
	}{
		{"sin x", `\sin x`},
		{"cos", `\cos `},
		{"log_2 x", `\log_{2} x`},
		{"max(a,b)", `\max \left(a,b\right)`},
	}

	assert := assert.New(t)
	converter := NewConverter(symbols, false)
	for _, tc := range testCases {
		latex, err := converter.Convert(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.latex, latex, tc.src)
	}
}

func TestConvertFailures(t *testing.T) {
	assert := assert.New(t)
	for _, src := range []string{"a+(c", "b+(c + d/b", "", "a/", "sqrt"} {
		latex, err := Convert(src)

		assert.Error(err, src)
		assert.Empty(latex, src)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	const src = "sum_(i=1)^n i^3=((n(n+1))/2)^2"
	first, err := Convert(src)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		latex, err := Convert(src)
		require.NoError(t, err)
		assert.Equal(t, first, latex)
	}
}

func TestRenderRawLatex(t *testing.T) {
	testCases := []struct {
		src string
		raw string
	}{
		{"a/b = c", `\frac{a}{b} = c`},
		{"d in RR", `d \in  \mathbb{R} `},
		{"sum_(i=1)^n", `\sum _{(i=1)}^{n}`},
		{"{x}", `\{x\}`},
	}

	assert := assert.New(t)
	renderer := NewLatexRenderer(DefaultSymbols())
	for _, tc := range testCases {
		expr, err := parse(tc.src, false)
		require.NoError(t, err, tc.src)

		assert.Equal(tc.raw, renderer.raw(expr), tc.src)
	}
}

func TestPostProcess(t *testing.T) {
	testCases := []struct {
		in  string
		out string
	}{
		{"a  b", "a b"},
		{"a     b", "a b"},
		{`\sqrt{(x)}`, `\sqrt{x}`},
		{`\alpha _{1}`, `\alpha_{1}`},
		{`\beta ^{2}`, `\beta^{2}`},
		{`\sqrt{x }`, `\sqrt{x}`},
		{"(a)", `\left(a\right)`},
		{`\sum _{(i=1)}^{n}`, `\sum_{i=1}^{n}`},
		{`\frac{(n(n+1))}{2}`, `\frac{n\left(n+1\right)}{2}`},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.out, postProcess(tc.in), tc.in)
	}
}
