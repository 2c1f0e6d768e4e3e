package chart

import (
	"github.com/cnf/structhash"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/grammar"
)

// fingerprint is the content-addressed key the engine uses to recognize
// that a freshly-completed derivation is semantically identical to one
// already in the arena: two non-terminal nodes with identical
// (label, start, stop, rule, children) are the same node. Without this, an
// ambiguous or recursive grammar can produce exponentially many
// structurally-equal nodes, so dedup is mandatory rather than an optimization.
type fingerprint struct {
	Label    ladle.Symbol
	Start    int
	Stop     int
	Rule     grammar.RuleHandle
	Children []NodeHandle
}

// hash computes a stable fingerprint string for a candidate non-terminal
// node. structhash.Hash only fails on reflection errors that cannot occur
// for these plain value types; such an error is a bug, not a runtime
// condition to recover from.
func hash(label ladle.Symbol, start, stop int, rule grammar.RuleHandle, children []NodeHandle) string {
	h, err := structhash.Hash(fingerprint{
		Label:    label,
		Start:    start,
		Stop:     stop,
		Rule:     rule,
		Children: children,
	}, 1)
	if err != nil {
		panic(err)
	}
	return h
}
