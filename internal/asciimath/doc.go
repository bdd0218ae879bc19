/*
Package asciimath converts equations written in AsciiMath into LaTeX math
markup.

An equation is read by a Lexer, which splits it into symbols by longest match
against a SymbolTable, and a recursive-descent Parser, which builds a tree of
two node families: Simple (constants, delimited groups and operator
applications) and Expr (sequences, fractions, sub- and superscripts). The
tree is rendered by visitors: LatexRenderer for the LaTeX output, EchoPrinter
for the AsciiMath it was parsed from, and AstPrinter for debugging.

	a/b -= alpha_(d in RR)^42  -->  \frac{a}{b} \equiv \alpha_{d \in \mathbb{R}}^{42}

Symbol tables can be extended from YAML files, see RulesFile.
*/
package asciimath

//go:generate go run ../cmd/ast_codegen ../asciimath
