package chart

import (
	"fmt"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/grammar"
)

// NodeHandle is a dense integer index into an Arena. Handles are stable for
// the lifetime of the Engine that produced them: arena entries never move.
type NodeHandle int

// Node is an immutable parse-forest node: either a terminal, created once
// per input token, or a non-terminal, created by the Match Engine upon
// completing a rule. Nodes are never mutated after creation.
type Node struct {
	Label ladle.Symbol
	Start int
	Stop  int

	// Terminal is true if this node wraps a single input token
	// (Stop == Start+1, TokenIndex valid). Otherwise it is a non-terminal
	// produced by completing Rule over Children.
	Terminal   bool
	TokenIndex int

	Rule     grammar.RuleHandle
	Children []NodeHandle
}

func (n Node) String() string {
	if n.Terminal {
		return fmt.Sprintf("%s[%d,%d)@tok%d", n.Label, n.Start, n.Stop, n.TokenIndex)
	}
	return fmt.Sprintf("%s[%d,%d)<-rule%d%v", n.Label, n.Start, n.Stop, n.Rule, n.Children)
}
