package asciimath

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverterDefaultsSymbols(t *testing.T) {
	assert := assert.New(t)

	c := NewConverter(nil, false)

	assert.NotNil(c.Symbols())
	assert.Equal(Greek, c.Symbols().Classify("alpha"))
}

func TestConverterParseThenRender(t *testing.T) {
	c := NewConverter(nil, false)

	expr, err := c.Parse("a/b = c")
	require.NoError(t, err)

	assert.Equal(t, `\frac{a}{b} = c`, c.Latex(expr))
}

func TestLenientConverter(t *testing.T) {
	assert := assert.New(t)
	strict := NewConverter(nil, false)
	lenient := NewConverter(nil, true)

	latex, err := strict.Convert("a^b sqrt")
	assert.ErrorIs(err, ErrMissingOperand)
	assert.Empty(latex)

	latex, err = lenient.Convert("a^b sqrt")
	assert.NoError(err)
	assert.Equal("a^{b}", latex)

	latex, err = lenient.Convert("x)")
	assert.NoError(err)
	assert.Equal("x", latex)
}

func TestConverterConcurrentUse(t *testing.T) {
	equations := map[string]string{
		"a/b = c":    `\frac{a}{b} = c`,
		"a+b <= c^4": `a+b \leq c^{4}`,
		"sum_(i=1)^n i^3=((n(n+1))/2)^2": `\sum_{i=1}^{n} i^{3}=\left(\frac{n\left(n+1\right)}{2}\right)^{2}`,
	}
	c := NewConverter(nil, false)

	var wg sync.WaitGroup
	results := make(chan bool, 8*len(equations))
	for i := 0; i < 8; i++ {
		for src, want := range equations {
			wg.Add(1)
			go func(src, want string) {
				defer wg.Done()
				got, err := c.Convert(src)
				results <- err == nil && got == want
			}(src, want)
		}
	}
	wg.Wait()
	close(results)

	for ok := range results {
		assert.True(t, ok)
	}
}
