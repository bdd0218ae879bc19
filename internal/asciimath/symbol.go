package asciimath

import (
	"fmt"
	"unicode/utf8"
)

// Symbol is a single lexical unit of an AsciiMath equation. It is either one
// character, a run of decimal digits, or a multi-character entry of a
// SymbolTable. What a symbol means is decided by the table, not by the symbol.
type Symbol string

// Expression operators combine the simple expressions around them.
const (
	SymSuperscript Symbol = "^"
	SymSubscript   Symbol = "_"
	SymFraction    Symbol = "/"
)

// Category classifies a symbol.
type Category int

const (
	// Literal is any symbol the table does not know about.
	Literal Category = iota
	// Number is a run of decimal digits.
	Number
	LeftDelimiter
	RightDelimiter
	UnaryOperator
	BinaryOperator
	ExpressionOperator
	Greek
	Relation
	Operation
	Misc
	Logical
	Arrow
	Function
)

var categoryNames = map[Category]string{
	Literal:            "literal",
	Number:             "number",
	LeftDelimiter:      "left delimiter",
	RightDelimiter:     "right delimiter",
	UnaryOperator:      "unary",
	BinaryOperator:     "binary",
	ExpressionOperator: "expression operator",
	Greek:              "greek",
	Relation:           "relation",
	Operation:          "operation",
	Misc:               "misc",
	Logical:            "logical",
	Arrow:              "arrow",
	Function:           "function",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// IsConstant reports whether symbols of the category are named constants.
func (c Category) IsConstant() bool {
	switch c {
	case Greek, Relation, Operation, Misc, Logical, Arrow, Function:
		return true
	}
	return false
}

// parseConstantCategory maps a rules file category name to its Category.
func parseConstantCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name && c.IsConstant() {
			return c, nil
		}
	}
	return Literal, fmt.Errorf("unknown constant category '%s'", name)
}

// DelimiterKind is the bracket family of a delimited simple expression.
type DelimiterKind int

const (
	Paren DelimiterKind = iota
	Bracket
	Brace
)

// Left returns the opening symbol of the delimiter pair.
func (kind DelimiterKind) Left() Symbol {
	switch kind {
	case Bracket:
		return "["
	case Brace:
		return "{"
	}
	return "("
}

// Right returns the closing symbol of the delimiter pair.
func (kind DelimiterKind) Right() Symbol {
	switch kind {
	case Bracket:
		return "]"
	case Brace:
		return "}"
	}
	return ")"
}

func (kind DelimiterKind) String() string {
	switch kind {
	case Bracket:
		return "bracket"
	case Brace:
		return "brace"
	}
	return "paren"
}

func delimiterKindOf(sym Symbol) (DelimiterKind, bool) {
	switch sym {
	case "(", ")":
		return Paren, true
	case "[", "]":
		return Bracket, true
	case "{", "}":
		return Brace, true
	}
	return Paren, false
}

// symbolEntry is what a table knows about one symbol. latex holds the LaTeX
// command name, or the literal output when verbatim is set.
type symbolEntry struct {
	category Category
	latex    string
	verbatim bool
}

// SymbolTable is the categorized set of recognized symbols together with
// their LaTeX renderings. A table is never modified once built, so a single
// table can back any number of concurrent conversions.
type SymbolTable struct {
	entries map[Symbol]symbolEntry
	order   []Symbol
	logical   bool
	functions bool
	// lexable symbols grouped by their first rune
	prefixes map[rune][][]rune
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[Symbol]symbolEntry)}
}

// define adds or replaces a symbol. Callers must call index afterwards.
func (st *SymbolTable) define(sym Symbol, entry symbolEntry) {
	if _, exists := st.entries[sym]; !exists {
		st.order = append(st.order, sym)
	}
	st.entries[sym] = entry
}

// index rebuilds the longest-match lookup used by the lexer.
func (st *SymbolTable) index() {
	st.prefixes = make(map[rune][][]rune)
	for _, sym := range st.order {
		entry := st.entries[sym]
		if entry.category == Logical && !st.logical {
			continue
		}
		if entry.category == Function && !st.functions {
			continue
		}
		runes := []rune(string(sym))
		st.prefixes[runes[0]] = append(st.prefixes[runes[0]], runes)
	}
}

func (st *SymbolTable) clone() *SymbolTable {
	c := newSymbolTable()
	c.logical = st.logical
	c.functions = st.functions
	for _, sym := range st.order {
		c.define(sym, st.entries[sym])
	}
	c.index()
	return c
}

// candidates returns the lexable symbols starting with r.
func (st *SymbolTable) candidates(r rune) [][]rune {
	return st.prefixes[r]
}

// Classify returns the category of sym. Symbols absent from the table are
// numbers when made only of decimal digits and literals otherwise.
func (st *SymbolTable) Classify(sym Symbol) Category {
	if entry, ok := st.entries[sym]; ok {
		return entry.category
	}
	if isDigits(string(sym)) {
		return Number
	}
	return Literal
}

// Is reports whether sym belongs to the category.
func (st *SymbolTable) Is(sym Symbol, category Category) bool {
	return st.Classify(sym) == category
}

// LogicalEnabled reports whether logical symbols are recognized by the lexer.
func (st *SymbolTable) LogicalEnabled() bool {
	return st.logical
}

// FunctionsEnabled reports whether function names such as sin are recognized
// by the lexer. Otherwise they lex letter by letter, so sin is s followed by
// the relation in.
func (st *SymbolTable) FunctionsEnabled() bool {
	return st.functions
}

// Symbols lists the table entries of a category in definition order.
func (st *SymbolTable) Symbols(category Category) []Symbol {
	var syms []Symbol
	for _, sym := range st.order {
		if st.entries[sym].category == category {
			syms = append(syms, sym)
		}
	}
	return syms
}

// Command returns the LaTeX command name used for an operator symbol.
func (st *SymbolTable) Command(op Symbol) string {
	if entry, ok := st.entries[op]; ok && entry.latex != "" {
		return entry.latex
	}
	return string(op)
}

// Latex renders a constant symbol. Named constants become a control sequence
// followed by a space. A command of a single rune or made only of digits is
// never escaped and the symbol itself is returned.
func (st *SymbolTable) Latex(sym Symbol) string {
	command := string(sym)
	if entry, ok := st.entries[sym]; ok {
		if entry.verbatim {
			return entry.latex
		}
		if entry.latex != "" {
			command = entry.latex
		}
	}
	if utf8.RuneCountInString(command) == 1 || isDigits(command) {
		return string(sym)
	}
	return "\\" + command + " "
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// DefaultSymbols returns the built-in symbol table.
func DefaultSymbols() *SymbolTable {
	return defaultSymbols
}

var defaultSymbols = newDefaultSymbolTable()

type defaultSymbol struct {
	text  Symbol
	latex string
}

// verbatimSymbols render exactly as given instead of as a control sequence.
var verbatimSymbols = map[Symbol]string{
	"**":      "*",
	"//":      "/",
	"\\\\":    "\\ ",
	"|...|":   "|\\ldots|",
	"|cdots|": "|\\cdots|",
	"|\\|":    "|\\backslash|",
	"|quad|":  "|\\quad|",
}

var defaultCategories = []struct {
	category Category
	symbols  []defaultSymbol
}{
	{LeftDelimiter, []defaultSymbol{{"(", ""}, {"[", ""}, {"{", ""}}},
	{RightDelimiter, []defaultSymbol{{")", ""}, {"]", ""}, {"}", ""}}},
	{ExpressionOperator, []defaultSymbol{{"^", ""}, {"_", ""}, {"/", ""}}},
	{UnaryOperator, []defaultSymbol{
		{"sqrt", ""}, {"text", ""}, {"bb", ""}, {"hat", ""}, {"bar", ""},
		{"ul", ""}, {"vec", ""}, {"dot", ""}, {"ddot", ""},
	}},
	{BinaryOperator, []defaultSymbol{{"frac", ""}, {"root", ""}, {"stackrel", ""}}},
	{Greek, []defaultSymbol{
		{"alpha", ""}, {"beta", ""}, {"chi", ""}, {"delta", ""}, {"Delta", ""},
		{"epsilon", ""}, {"varepsilon", ""}, {"eta", ""}, {"gamma", ""},
		{"Gamma", ""}, {"iota", ""}, {"kappa", ""}, {"lambda", ""}, {"Lambda", ""},
		{"mu", ""}, {"nu", ""}, {"omega", ""}, {"Omega", ""}, {"phi", ""},
		{"Phi", ""}, {"varphi", ""}, {"pi", ""}, {"Pi", ""}, {"psi", ""},
		{"Psi", ""}, {"rho", ""}, {"sigma", ""}, {"Sigma", ""}, {"tau", ""},
		{"theta", ""}, {"Theta", ""}, {"vartheta", ""}, {"upsilon", ""},
		{"xi", ""}, {"Xi", ""}, {"zeta", ""},
	}},
	{Relation, []defaultSymbol{
		{"!=", "neq"}, {"<=", "leq"}, {">=", "geq"}, {"-<", "prec"},
		{">-", "succ"}, {"in", "in"}, {"!in", "notin"}, {"sub", "subset"},
		{"sup", "supset"}, {"sube", "subseteq"}, {"supe", "supseteq"},
		{"-=", "equiv"}, {"~=", "cong"}, {"~~", "approx"}, {"prop", "propto"},
	}},
	{Operation, []defaultSymbol{
		{"*", "cdot"}, {"**", ""}, {"***", "star"}, {"//", ""}, {"\\\\", ""},
		{"xx", "times"}, {"-:", "div"}, {"@", "circ"}, {"o+", "oplus"},
		{"ox", "otimes"}, {"o.", "odot"}, {"sum", "sum"}, {"prod", "prod"},
		{"^^", "wedge"}, {"^^^", "bigwedge"}, {"vv", "vee"}, {"vvv", "bigvee"},
		{"nn", "cap"}, {"nnn", "bigcap"}, {"uu", "cup"}, {"uuu", "bigcup"},
	}},
	{Misc, []defaultSymbol{
		{"int", "int"}, {"oint", "oint"}, {"del", "partial"}, {"grad", "nabla"},
		{"+-", "pm"}, {"O/", "emptyset"}, {"oo", "infty"}, {"aleph", "aleph"},
		{"/_", "angle"}, {":.", "therefore"}, {"|...|", ""}, {"|cdots|", ""},
		{"vdots", "vdots"}, {"ddots", "ddots"}, {"|\\|", ""}, {"|quad|", ""},
		{"diamond", "diamond"}, {"square", "square"}, {"|__", "lfloor"},
		{"__|", "rfloor"}, {"|~", "lceil"}, {"~|", "rceil"},
		{"CC", "mathbb{C}"}, {"NN", "mathbb{N}"}, {"QQ", "mathbb{Q}"},
		{"RR", "mathbb{R}"}, {"ZZ", "mathbb{Z}"},
	}},
	{Logical, []defaultSymbol{
		{"and", "text{ and }"}, {"or", "text{ or }"}, {"not", "neg"},
		{"=>", "implies"}, {"if", "text{ if }"}, {"iff", "iff"},
		{"AA", "forall"}, {"EE", "exists"}, {"_|_", "bot"}, {"TT", "top"},
		{"|--", "vdash"}, {"|==", "models"},
	}},
	{Arrow, []defaultSymbol{
		{"uarr", "uparrow"}, {"darr", "downarrow"}, {"rarr", "rightarrow"},
		{"->", "to"}, {"|->", "mapsto"}, {"larr", "leftarrow"},
		{"harr", "leftrightarrow"}, {"rArr", "Rightarrow"},
		{"lArr", "Leftarrow"}, {"hArr", "Leftrightarrow"},
	}},
	{Function, []defaultSymbol{
		{"sin", ""}, {"cos", ""}, {"tan", ""}, {"sec", ""}, {"csc", ""},
		{"cot", ""}, {"sinh", ""}, {"cosh", ""}, {"tanh", ""}, {"log", ""},
		{"ln", ""}, {"exp", ""}, {"det", ""}, {"dim", ""}, {"lim", ""},
		{"min", ""}, {"max", ""}, {"gcd", ""},
	}},
}

func newDefaultSymbolTable() *SymbolTable {
	st := newSymbolTable()
	for _, group := range defaultCategories {
		for _, s := range group.symbols {
			entry := symbolEntry{category: group.category, latex: s.latex}
			if out, ok := verbatimSymbols[s.text]; ok {
				entry.latex = out
				entry.verbatim = true
			}
			st.define(s.text, entry)
		}
	}
	st.index()
	return st
}
