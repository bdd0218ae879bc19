package asciimath

// Lexer hands out the symbols of an equation one at a time. Multi-character
// symbols are found by longest match against a SymbolTable, runs of digits
// form a single number and every other character is a symbol of its own.
type Lexer struct {
	current int
	source  []rune
	symbols *SymbolTable
}

// NewLexer creates a lexer over source using the given symbol table.
func NewLexer(source []rune, symbols *SymbolTable) *Lexer {
	lexer := new(Lexer)
	lexer.current = 0
	lexer.source = source
	lexer.symbols = symbols
	return lexer
}

// NextSymbol consumes and returns the next symbol. The second result is false
// once the input is exhausted.
func (lexer *Lexer) NextSymbol() (Symbol, bool) {
	if !lexer.hasNext() {
		return "", false
	}
	start := lexer.current
	r := lexer.advance()
	if n := lexer.longestMatch(start); n > 0 {
		lexer.current = start + n
		return Symbol(lexer.source[start:lexer.current]), true
	}
	if isDigit(r) {
		for lexer.hasNext() && isDigit(lexer.peek()) {
			lexer.advance()
		}
	}
	return Symbol(lexer.source[start:lexer.current]), true
}

// PeekSymbol returns the next symbol without consuming it.
func (lexer *Lexer) PeekSymbol() (Symbol, bool) {
	mark := lexer.current
	sym, ok := lexer.NextSymbol()
	lexer.current = mark
	return sym, ok
}

// PeekCharacter returns the next character without consuming it.
func (lexer *Lexer) PeekCharacter() (rune, bool) {
	if !lexer.hasNext() {
		return 0, false
	}
	return lexer.peek(), true
}

// Offset is the position, in runes, of the next unread character.
func (lexer *Lexer) Offset() int {
	return lexer.current
}

// Scan consumes the rest of the input and returns all of its symbols.
func (lexer *Lexer) Scan() []Symbol {
	syms := make([]Symbol, 0)
	for {
		sym, ok := lexer.NextSymbol()
		if !ok {
			return syms
		}
		syms = append(syms, sym)
	}
}

// longestMatch returns the length of the longest table symbol found at start,
// or zero when none matches. A symbol never matches past the end of input.
func (lexer *Lexer) longestMatch(start int) int {
	longest := 0
	for _, candidate := range lexer.symbols.candidates(lexer.source[start]) {
		n := len(candidate)
		if n <= longest || start+n > len(lexer.source) {
			continue
		}
		if runesEqual(lexer.source[start:start+n], candidate) {
			longest = n
		}
	}
	return longest
}

// reset moves the cursor back to a position previously returned by Offset.
func (lexer *Lexer) reset(offset int) {
	lexer.current = offset
}

// hasNext returns true if the lexer has not read past the source length
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	return lexer.source[lexer.current]
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
