package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	// we do it the scripting way, instead of having types support from Go stdlib
	simpleTypes := []string{
		"Constant: Sym Symbol",
		"Delimited: Inner Expr, Kind DelimiterKind",
		"Unary: Op Symbol, Operand Simple",
		"Binary: Op Symbol, Left Simple, Right Simple",
	}
	expressionTypes := []string{
		"Simple: Inner Simple",
		// Sequence juxtaposes a simple expression with whatever follows it.
		"Sequence: Head Simple, Tail Expr",
		"Fraction: Top Simple, Bottom Simple",
		"Superscript: Base Simple, Exp Simple",
		"Subscript: Base Simple, Sub Simple",
		"SubSuperscript: Base Simple, Sub Simple, Exp Simple",
		// Chain joins an already combined expression with the rest.
		"Chain: First Expr, Rest Expr",
	}

	if err := defineAst(outputDir, "Simple", simpleTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := defineAst(outputDir, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)

	var buf bytes.Buffer
	packageName := filepath.Base(outputDir)
	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for the node family
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %w", fpath, err)
	}
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		fieldList,
		typeName, baseName,
	)
	var fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fieldName := strings.TrimSpace(strings.Split(field, " ")[0])
		fieldNames = append(fieldNames, fieldName)
	}
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}
