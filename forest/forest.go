/*
Package forest implements the read-only query surface over a completed (or
partially completed) chart.Engine: finding nodes that cover a span, and
materializing a derivation tree by walking a node's children recursively.

The query surface lives in its own package, separate from chart, because it
is purely a consumer of chart.Engine's exported accessors — keeping it
outside chart avoids coupling the Match Engine's internals to tree
materialization concerns.
*/
package forest

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/chart"
)

func tracer() tracing.Trace {
	return tracing.Select("ladle.forest")
}

// Query wraps a chart.Engine with span- and label-based lookups and tree
// materialization. Create one with New once the wrapped engine has been run
// (to fixpoint or under cancellation) — Query never drives the engine
// itself.
type Query struct {
	e *chart.Engine
}

// New wraps e for querying. e is not copied; later calls reflect whatever
// state e is in at call time.
func New(e *chart.Engine) *Query {
	return &Query{e: e}
}

// NodesCovering returns every node handle spanning exactly [start, stop),
// terminal or non-terminal. Under ambiguity, several handles may share the
// same span with differing rules or children.
func (q *Query) NodesCovering(start, stop int) []chart.NodeHandle {
	var out []chart.NodeHandle
	for _, h := range q.e.StartedAt(start) {
		n, err := q.e.NodeAt(h)
		if err != nil {
			continue
		}
		if n.Stop == stop {
			out = append(out, h)
		}
	}
	return out
}

// NodesWithLabelCovering is NodesCovering filtered to a single label.
func (q *Query) NodesWithLabelCovering(label ladle.Symbol, start, stop int) []chart.NodeHandle {
	var out []chart.NodeHandle
	for _, h := range q.NodesCovering(start, stop) {
		n, err := q.e.NodeAt(h)
		if err != nil {
			continue
		}
		if n.Label == label {
			out = append(out, h)
		}
	}
	return out
}

// Node returns the node addressed by h, or an error if h is out of range.
func (q *Query) Node(h chart.NodeHandle) (chart.Node, error) {
	return q.e.NodeAt(h)
}

// BuildTree recursively materializes the derivation (sub-)tree rooted at h.
// It fails only if h (or, transitively, one of its children) is out of
// range — under normal operation this cannot happen, since children are
// always handles the engine itself produced.
func (q *Query) BuildTree(h chart.NodeHandle) (*Tree, error) {
	n, err := q.e.NodeAt(h)
	if err != nil {
		return nil, fmt.Errorf("ladle/forest: build tree: %w", err)
	}
	if n.Terminal {
		return &Tree{Label: n.Label, Start: n.Start, Stop: n.Stop, TokenIndex: n.TokenIndex}, nil
	}
	children := make([]*Tree, len(n.Children))
	for i, ch := range n.Children {
		child, err := q.BuildTree(ch)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	tracer().Debugf("materialized tree for %s", n)
	return &Tree{
		Label:    n.Label,
		Start:    n.Start,
		Stop:     n.Stop,
		Rule:     n.Rule,
		Variant:  q.e.Grammar().Rule(n.Rule).Variant,
		Children: children,
	}, nil
}
