package chart

import "github.com/ladle-go/ladle/grammar"

// Phase tags which side of a rule a Check is currently extending through.
type Phase uint8

const (
	// PhaseRight extends rightward through rule.Successors.
	PhaseRight Phase = iota
	// PhaseLeft extends leftward through rule.Predecessors.
	PhaseLeft
)

func (p Phase) String() string {
	if p == PhaseRight {
		return "right"
	}
	return "left"
}

// Check is an in-flight partial match. In PhaseRight, Rightmost is the
// position at which the next expected successor must start. In PhaseLeft,
// Leftmost is the position at which the next expected predecessor must end
// (chart.EndedAt is scanned there).
type Check struct {
	Rule  grammar.RuleHandle
	Phase Phase
	// Pos indexes into the phase's symbol list (rule.Successors in
	// PhaseRight, rule.Predecessors in PhaseLeft).
	Pos int

	Leftmost  int
	Rightmost int

	// Base is the anchor node this Check's rule is matching from.
	Base NodeHandle

	// RightNodes and LeftNodes accumulate matched successor/predecessor
	// nodes so far, in the order they were discovered (leftmost-first for
	// successors, innermost-first for predecessors).
	RightNodes []NodeHandle
	LeftNodes  []NodeHandle
}

// children assembles the surface-order child sequence for a completed
// derivation: reverse(LeftNodes) ++ [Base] ++ RightNodes. Predecessors are
// discovered innermost-first, so reversing them restores left-to-right
// order; successors are already discovered leftmost-first.
func (c Check) children() []NodeHandle {
	out := make([]NodeHandle, 0, len(c.LeftNodes)+1+len(c.RightNodes))
	for i := len(c.LeftNodes) - 1; i >= 0; i-- {
		out = append(out, c.LeftNodes[i])
	}
	out = append(out, c.Base)
	out = append(out, c.RightNodes...)
	return out
}
