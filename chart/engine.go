/*
Package chart implements the bidirectional chart parser: the node arena,
chart table, work queues, and the Match Engine state machine that, from an
anchor node, extends rightward through a rule's successors and leftward
through its predecessors, producing completed non-terminal nodes.

This is the heart of the engine described by the Mid-Rule parsing model:
tokens enter as terminal nodes, the Match Engine drains two work queues to a
fixpoint, and every valid derivation over the input is discovered exactly
once per distinct (label, start, stop, rule, children) tuple.
*/
package chart

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/grammar"
)

// tracer traces with key 'ladle.chart'.
func tracer() tracing.Trace {
	return tracing.Select("ladle.chart")
}

// Engine drives a single parse run: tokens in, parse-forest nodes out.
// Create one with NewEngine; a Grammar may be shared read-only across many
// Engines parsing different token streams concurrently, since each Engine
// owns its own arena, chart and queues.
type Engine struct {
	g      *grammar.Grammar
	tokens []ladle.Symbol

	arena *Arena
	table *Table

	nodeQ  nodeQueue
	checkQ checkQueue

	dedup map[string]NodeHandle

	shouldStop func() bool
	symRange   *symbolRange

	done bool
}

// NewEngine creates and initializes an Engine over grammar and tokens,
// with terminal nodes already seeded onto the node-queue. tokens is
// consumed; grammar may be shared (read-only) across concurrently running
// engines.
func NewEngine(g *grammar.Grammar, tokens []ladle.Symbol, opts ...Option) (*Engine, error) {
	e := &Engine{
		g:      g,
		tokens: tokens,
		arena:  newArena(len(tokens)),
		table:  newTable(len(tokens)),
		dedup:  make(map[string]NodeHandle, len(tokens)*2),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.validateSymbolRange(); err != nil {
		return nil, err
	}
	for i, tok := range tokens {
		h := e.addTerminal(tok, i)
		e.nodeQ.push(h)
	}
	tracer().Debugf("engine constructed: %d tokens, %d rules", len(tokens), g.Len())
	return e, nil
}

func (e *Engine) validateSymbolRange() error {
	if e.symRange == nil {
		return nil
	}
	check := func(sym ladle.Symbol, reason string) error {
		if sym.IsTerminal() {
			if sym.ID < 0 || sym.ID > e.symRange.maxTerminalID {
				return &ConstructionError{Symbol: sym, Reason: reason}
			}
		} else {
			if sym.ID < 0 || sym.ID > e.symRange.maxNonTerminalID {
				return &ConstructionError{Symbol: sym, Reason: reason}
			}
		}
		return nil
	}
	for i := 0; i < e.g.Len(); i++ {
		r := e.g.Rule(grammar.RuleHandle(i))
		if err := check(r.Result, "rule result out of declared symbol range"); err != nil {
			return err
		}
		if err := check(r.Base, "rule base out of declared symbol range"); err != nil {
			return err
		}
		for _, s := range r.Predecessors {
			if err := check(s, "rule predecessor out of declared symbol range"); err != nil {
				return err
			}
		}
		for _, s := range r.Successors {
			if err := check(s, "rule successor out of declared symbol range"); err != nil {
				return err
			}
		}
	}
	for _, tok := range e.tokens {
		if err := check(tok, "token out of declared symbol range"); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) addTerminal(label ladle.Symbol, tokenIndex int) NodeHandle {
	node := Node{
		Label:      label,
		Start:      tokenIndex,
		Stop:       tokenIndex + 1,
		Terminal:   true,
		TokenIndex: tokenIndex,
	}
	h := e.arena.add(node)
	e.table.add(h, node.Start, node.Stop)
	return h
}

// Step performs one bounded unit of work: it dequeues either the next
// pending node or the next pending Check and processes it. It returns false
// once both queues are empty (a fixpoint has been reached). Correctness
// does not depend on step granularity — a caller may interleave other work
// between Step calls.
func (e *Engine) Step() bool {
	if h, ok := e.nodeQ.pop(); ok {
		e.checkNode(h)
		return true
	}
	if c, ok := e.checkQ.pop(); ok {
		switch c.Phase {
		case PhaseRight:
			e.checkRight(c)
		case PhaseLeft:
			e.checkLeft(c)
		}
		return true
	}
	return false
}

// RunToFixpoint drains both queues until empty, or until the ShouldStop
// predicate (if configured) reports true. In the latter case the outer loop
// exits after the current dequeue; the arena and chart remain valid, but
// IsDone will report false.
func (e *Engine) RunToFixpoint() {
	for {
		if e.shouldStop != nil && e.shouldStop() {
			return
		}
		if !e.Step() {
			e.done = true
			return
		}
	}
}

// IsDone reports whether the last RunToFixpoint call reached a true
// fixpoint (both queues drained) rather than exiting under cancellation.
func (e *Engine) IsDone() bool {
	return e.done
}

// checkNode implements §4.4.1: for every rule anchored at node's label,
// either complete it immediately (if it has no context at all) or seed an
// initial Check.
func (e *Engine) checkNode(h NodeHandle) {
	node := e.arena.Get(h)
	for _, r := range e.g.RulesFor(node.Label) {
		rule := e.g.Rule(r)
		if len(rule.Successors) == 0 && len(rule.Predecessors) == 0 {
			e.emit(r, node.Start, node.Stop, []NodeHandle{h})
			continue
		}
		phase := PhaseRight
		if len(rule.Successors) == 0 {
			phase = PhaseLeft
		}
		e.checkQ.push(Check{
			Rule:      r,
			Phase:     phase,
			Pos:       0,
			Leftmost:  node.Start,
			Rightmost: node.Stop,
			Base:      h,
		})
	}
}

// checkRight implements §4.4.2: extend Check c through the next expected
// successor, scanning the nodes that start at c.Rightmost.
func (e *Engine) checkRight(c Check) {
	rule := e.g.Rule(c.Rule)
	expected := rule.Successors[c.Pos]
	for _, s := range e.table.StartedAt(c.Rightmost) {
		sn := e.arena.Get(s)
		if sn.Label != expected {
			continue
		}
		rightNodes := append(append([]NodeHandle(nil), c.RightNodes...), s)
		if c.Pos+1 == len(rule.Successors) {
			if len(rule.Predecessors) == 0 {
				completed := Check{Base: c.Base, RightNodes: rightNodes}
				e.emit(c.Rule, c.Leftmost, sn.Stop, completed.children())
			} else {
				e.checkQ.push(Check{
					Rule:       c.Rule,
					Phase:      PhaseLeft,
					Pos:        0,
					Leftmost:   c.Leftmost,
					Rightmost:  sn.Stop,
					Base:       c.Base,
					RightNodes: rightNodes,
				})
			}
		} else {
			e.checkQ.push(Check{
				Rule:       c.Rule,
				Phase:      PhaseRight,
				Pos:        c.Pos + 1,
				Leftmost:   c.Leftmost,
				Rightmost:  sn.Stop,
				Base:       c.Base,
				RightNodes: rightNodes,
			})
		}
	}
}

// checkLeft implements §4.4.3: extend Check c through the next expected
// predecessor, scanning the nodes that end at c.Leftmost.
func (e *Engine) checkLeft(c Check) {
	rule := e.g.Rule(c.Rule)
	expected := rule.Predecessors[c.Pos]
	for _, s := range e.table.EndedAt(c.Leftmost) {
		sn := e.arena.Get(s)
		if sn.Label != expected {
			continue
		}
		leftNodes := append(append([]NodeHandle(nil), c.LeftNodes...), s)
		if c.Pos+1 == len(rule.Predecessors) {
			completed := Check{Base: c.Base, RightNodes: c.RightNodes, LeftNodes: leftNodes}
			e.emit(c.Rule, sn.Start, c.Rightmost, completed.children())
		} else {
			e.checkQ.push(Check{
				Rule:       c.Rule,
				Phase:      PhaseLeft,
				Pos:        c.Pos + 1,
				Leftmost:   sn.Start,
				Rightmost:  c.Rightmost,
				Base:       c.Base,
				RightNodes: c.RightNodes,
				LeftNodes:  leftNodes,
			})
		}
	}
}

// emit completes rule over [start,stop) with the given surface-order
// children, deduplicating against any structurally-identical node already
// in the arena (§3: two non-terminal nodes with identical
// (label, start, stop, rule, children) are the same node).
func (e *Engine) emit(rule grammar.RuleHandle, start, stop int, children []NodeHandle) NodeHandle {
	r := e.g.Rule(rule)
	key := hash(r.Result, start, stop, rule, children)
	if existing, ok := e.dedup[key]; ok {
		return existing
	}
	node := Node{
		Label:    r.Result,
		Start:    start,
		Stop:     stop,
		Rule:     rule,
		Children: children,
	}
	h := e.arena.add(node)
	e.table.add(h, start, stop)
	e.dedup[key] = h
	e.nodeQ.push(h)
	tracer().Debugf("emitted %s", node)
	return h
}

// --- Read-only accessors, used by package forest and by clients ------------

// Grammar returns the grammar this engine is parsing with.
func (e *Engine) Grammar() *grammar.Grammar {
	return e.g
}

// N returns the number of input tokens (the chart has N+1 positions).
func (e *Engine) N() int {
	return e.table.N()
}

// NodeAt returns the node addressed by h, or an *InvalidHandleError if h is
// out of range for this engine's arena.
func (e *Engine) NodeAt(h NodeHandle) (Node, error) {
	if h < 0 || int(h) >= e.arena.Len() {
		return Node{}, &InvalidHandleError{Handle: h}
	}
	return e.arena.Get(h), nil
}

// NodeCount returns the number of nodes currently in the arena.
func (e *Engine) NodeCount() int {
	return e.arena.Len()
}

// StartedAt returns the handles of nodes starting at chart position pos.
func (e *Engine) StartedAt(pos int) []NodeHandle {
	return e.table.StartedAt(pos)
}

// EndedAt returns the handles of nodes ending at chart position pos.
func (e *Engine) EndedAt(pos int) []NodeHandle {
	return e.table.EndedAt(pos)
}
