package asciimath

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesFile represents the structure of a YAML symbols file. Its entries are
// added to, or replace, the default symbol table.
type RulesFile struct {
	Logical   bool           `yaml:"logical"`
	Functions bool           `yaml:"functions"`
	Unary     []OperatorRule `yaml:"unary"`
	Binary    []OperatorRule `yaml:"binary"`
	Constant  []ConstantRule `yaml:"constant"`
}

// OperatorRule represents a unary or binary operator. Latex names the command
// the operator renders as and defaults to the operator text.
type OperatorRule struct {
	Text  string `yaml:"text"`
	Latex string `yaml:"latex,omitempty"`
}

// ConstantRule represents a named constant symbol.
type ConstantRule struct {
	Text     string `yaml:"text"`
	Latex    string `yaml:"latex,omitempty"`
	Category string `yaml:"category"`
	Verbatim bool   `yaml:"verbatim,omitempty"`
}

// LoadRulesFile loads symbol rules from a YAML file.
func LoadRulesFile(filename string) (*RulesFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols file '%s': %w", filename, err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("symbols file '%s': %w", filename, err)
	}
	return rules, nil
}

// ParseRules decodes symbol rules from YAML.
func ParseRules(data []byte) (*RulesFile, error) {
	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &rules, nil
}

// ApplyRulesToDefaults returns a new symbol table made of the defaults plus
// the given rules. The default table itself is left untouched.
func ApplyRulesToDefaults(rules *RulesFile) (*SymbolTable, error) {
	st := DefaultSymbols().clone()
	if rules == nil {
		return st, nil
	}
	st.logical = rules.Logical
	st.functions = rules.Functions

	for _, rule := range rules.Unary {
		if err := st.defineRule(rule.Text, symbolEntry{category: UnaryOperator, latex: rule.Latex}); err != nil {
			return nil, err
		}
	}
	for _, rule := range rules.Binary {
		if err := st.defineRule(rule.Text, symbolEntry{category: BinaryOperator, latex: rule.Latex}); err != nil {
			return nil, err
		}
	}
	for _, rule := range rules.Constant {
		category, err := parseConstantCategory(rule.Category)
		if err != nil {
			return nil, fmt.Errorf("constant '%s': %w", rule.Text, err)
		}
		entry := symbolEntry{category: category, latex: rule.Latex, verbatim: rule.Verbatim}
		if err := st.defineRule(rule.Text, entry); err != nil {
			return nil, err
		}
	}

	st.index()
	return st, nil
}

// defineRule adds a symbol coming from a rules file. Delimiters and the
// expression operators are part of the grammar and cannot be redefined.
func (st *SymbolTable) defineRule(text string, entry symbolEntry) error {
	if text == "" {
		return fmt.Errorf("%s rule has no text", entry.category)
	}
	sym := Symbol(text)
	switch st.Classify(sym) {
	case LeftDelimiter, RightDelimiter, ExpressionOperator:
		return fmt.Errorf("cannot redefine %s '%s'", st.Classify(sym), text)
	}
	st.define(sym, entry)
	return nil
}

// DefaultRules returns the default symbol table in rules file form.
func DefaultRules() *RulesFile {
	return DefaultSymbols().Rules()
}

// Rules returns the table in rules file form.
func (st *SymbolTable) Rules() *RulesFile {
	rules := &RulesFile{Logical: st.logical, Functions: st.functions}
	for _, sym := range st.order {
		entry := st.entries[sym]
		latex := entry.latex
		if latex == string(sym) && !entry.verbatim {
			latex = ""
		}
		switch {
		case entry.category == UnaryOperator:
			rules.Unary = append(rules.Unary, OperatorRule{Text: string(sym), Latex: latex})
		case entry.category == BinaryOperator:
			rules.Binary = append(rules.Binary, OperatorRule{Text: string(sym), Latex: latex})
		case entry.category.IsConstant():
			rules.Constant = append(rules.Constant, ConstantRule{
				Text:     string(sym),
				Latex:    latex,
				Category: entry.category.String(),
				Verbatim: entry.verbatim,
			})
		}
	}
	return rules
}
