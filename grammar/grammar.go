/*
Package grammar implements the build-time model for Mid-Rule grammars.

A Mid-Rule production designates a distinguished base symbol plus ordered
lists of left-context (predecessors) and right-context (successors)
symbols. The child sequence of a completed derivation is
reverse(predecessors-matched) ++ [base] ++ successors-matched, which
restores left-to-right surface order — predecessors are listed
innermost-first (the symbol adjacent to the base comes first).

Grammars are immutable once built. Lookup from a base symbol to the rules
anchored at it is handled by RuleIndex, which is computed once at
construction time.
*/
package grammar

import (
	"fmt"

	"github.com/ladle-go/ladle"
)

// MidRule is an immutable Mid-Rule production.
type MidRule struct {
	// Result is the non-terminal produced by this rule.
	Result ladle.Symbol
	// Variant disambiguates rules sharing the same Result. It is opaque
	// metadata, surfaced to callers but never consulted by the Match Engine.
	Variant int
	// Base is the anchor symbol (terminal or non-terminal) rule matching
	// always starts from.
	Base ladle.Symbol
	// Predecessors lists symbols required to the left of Base, innermost
	// first: position 0 is the symbol immediately adjacent to Base.
	Predecessors []ladle.Symbol
	// Successors lists symbols required to the right of Base, leftmost
	// first: position 0 is the symbol immediately adjacent to Base.
	Successors []ladle.Symbol
}

func (r MidRule) String() string {
	return fmt.Sprintf("%s#%d <- pred%v base=%s succ%v", r.Result, r.Variant, r.Predecessors, r.Base, r.Successors)
}

// RuleHandle is an opaque dense integer addressing a MidRule within a Grammar.
type RuleHandle int

// Grammar is an immutable sequence of MidRules plus a derived RuleIndex.
type Grammar struct {
	rules []MidRule
	index RuleIndex
}

// New builds a Grammar from a slice of MidRules. The slice is copied; the
// caller's slice may be reused or mutated afterwards without affecting the
// Grammar.
func New(rules []MidRule) *Grammar {
	owned := make([]MidRule, len(rules))
	copy(owned, rules)
	return &Grammar{
		rules: owned,
		index: buildRuleIndex(owned),
	}
}

// Len returns the number of rules in the grammar.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// Rule returns the MidRule addressed by h. It panics if h is out of range;
// rule handles are only ever produced by the Grammar itself, so an
// out-of-range handle is a programmer error.
func (g *Grammar) Rule(h RuleHandle) MidRule {
	return g.rules[h]
}

// RulesFor returns the (sorted, dense) rule handles whose base is sym, in
// the order they were added to the grammar. The returned slice must not be
// mutated.
func (g *Grammar) RulesFor(sym ladle.Symbol) []RuleHandle {
	return g.index.RulesFor(sym)
}
