/*
Package lr1 sketches the state-transition model a classic shift/reduce LR(1)
parser would need, kept as a reference point for how a table-driven
alternative to the chart engine would be shaped. It deliberately stops short
of table construction (the FIRST/FOLLOW and canonical-collection
machinery): nothing in this repository drives an lr1.Transition, and
Engine.Parse is intentionally unimplemented.

The chart engine (package chart) is the parser this repository ships; LR(1)
is an external collaborator the source sketched but never finished, and
that remains true here.
*/
package lr1

import "github.com/ladle-go/ladle"

// State is an opaque LR(1) automaton state.
type State int

// ParseAction is the action associated with a (state, lookahead) pair.
type ParseAction int

const (
	ActionError ParseAction = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Reduction names the rule a Reduce action applies: a non-terminal result
// and a node count to pop off the parse stack.
type Reduction struct {
	Result ladle.Symbol
	Nodes  int
}

// Transition is the table interface an LR(1) engine consults. A concrete
// implementation (e.g. built by canonical LR(1) construction from a CFG)
// supplies actual tables; none is provided here.
type Transition interface {
	InitialState() State
	Action(state State, lookahead ladle.Symbol) (ParseAction, Reduction)
	ActionAtEnd(state State) (ParseAction, Reduction)
	GotoState(state State, symbol ladle.Symbol) (State, bool)
}

// Engine drives a single LR(1) parse against a Transition table. It is a
// skeleton: Parse is unimplemented, since no Transition builder exists yet
// to hand it real tables.
type Engine struct {
	t      Transition
	tokens []ladle.Symbol
}

// NewEngine wraps a Transition table and a token stream.
func NewEngine(t Transition, tokens []ladle.Symbol) *Engine {
	return &Engine{t: t, tokens: tokens}
}

// Parse is unimplemented. Filling it in requires a shift/reduce/goto loop
// mirroring the one sketched in the original source: maintain a state
// stack and a forest stack, shift terminals, reduce by popping Nodes
// entries off both stacks and pushing a new non-terminal, and consult
// GotoState after every shift or reduce to find the next state.
func (e *Engine) Parse() error {
	panic("lr1: table-driven parsing is not implemented; see chart.Engine")
}
