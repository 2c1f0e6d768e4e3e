package forest

import (
	"fmt"
	"strings"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/grammar"
)

// Tree is a materialized derivation (sub-)tree: a leaf wraps a single input
// token, an interior node records which rule (and variant, for disambiguating
// same-result rules) produced it, alongside its children in surface order.
//
// This mirrors the Terminal/NonTerminal split the original parser's tree
// representation used, translated to a single flat struct rather than a
// tagged union, consistent with how chart.Node itself is represented.
type Tree struct {
	Label ladle.Symbol
	Start int
	Stop  int

	// TokenIndex is valid only for leaves.
	TokenIndex int

	Rule     grammar.RuleHandle
	Variant  int
	Children []*Tree
}

// IsLeaf reports whether t wraps a single input token rather than a
// completed rule. Every Mid-Rule has a mandatory base, so an interior node
// always has at least one child; an empty Children slice is therefore
// sufficient to recognize a leaf.
func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Leaves returns the token indices covered by t's frontier, left to right.
// For a well-formed tree these indices form the contiguous run
// [t.Start, t.Stop).
func (t *Tree) Leaves() []int {
	if len(t.Children) == 0 {
		return []int{t.TokenIndex}
	}
	var out []int
	for _, c := range t.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b, 0)
	return b.String()
}

func (t *Tree) write(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s[%d,%d)\n", strings.Repeat("  ", depth), t.Label, t.Start, t.Stop)
	for _, c := range t.Children {
		c.write(b, depth+1)
	}
}
