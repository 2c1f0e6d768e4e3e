package grammar

import "github.com/ladle-go/ladle"

// Builder accumulates Mid-Rule productions and assigns them dense,
// per-result variant numbers automatically. Create one with NewBuilder.
//
// Example:
//
//	gb := grammar.NewBuilder()
//	gb.Rule(S).Base(a).Successors(b, c).Add()  // S <- base=a, successors=[b,c]
//	gb.Rule(S).Base(a).Add()                   // S <- base=a  (identity rule)
//	g := gb.Grammar()
type Builder struct {
	rules       []MidRule
	nextVariant map[ladle.Symbol]int
}

// NewBuilder creates an empty grammar builder.
func NewBuilder() *Builder {
	return &Builder{nextVariant: make(map[ladle.Symbol]int)}
}

// RuleBuilder accumulates the fields of a single Mid-Rule before it is
// added to the enclosing Builder.
type RuleBuilder struct {
	b    *Builder
	rule MidRule
}

// Rule starts a new Mid-Rule production with the given result symbol.
func (b *Builder) Rule(result ladle.Symbol) *RuleBuilder {
	return &RuleBuilder{b: b, rule: MidRule{Result: result}}
}

// Base sets the anchor symbol for the rule under construction.
func (rb *RuleBuilder) Base(sym ladle.Symbol) *RuleBuilder {
	rb.rule.Base = sym
	return rb
}

// Predecessors sets the left-context symbols, innermost first.
func (rb *RuleBuilder) Predecessors(syms ...ladle.Symbol) *RuleBuilder {
	rb.rule.Predecessors = append([]ladle.Symbol(nil), syms...)
	return rb
}

// Successors sets the right-context symbols, leftmost first.
func (rb *RuleBuilder) Successors(syms ...ladle.Symbol) *RuleBuilder {
	rb.rule.Successors = append([]ladle.Symbol(nil), syms...)
	return rb
}

// Variant overrides the automatically assigned variant number.
func (rb *RuleBuilder) Variant(v int) *RuleBuilder {
	rb.rule.Variant = v
	return rb
}

// Add appends the rule under construction to the builder and returns the
// builder, ready for the next Rule() call.
func (rb *RuleBuilder) Add() *Builder {
	b := rb.b
	if rb.rule.Variant == 0 {
		rb.rule.Variant = b.nextVariant[rb.rule.Result]
	}
	b.nextVariant[rb.rule.Result] = rb.rule.Variant + 1
	b.rules = append(b.rules, rb.rule)
	return b
}

// Grammar finalizes the builder into an immutable Grammar.
func (b *Builder) Grammar() *Grammar {
	return New(b.rules)
}
