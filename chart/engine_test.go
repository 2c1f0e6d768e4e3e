package chart

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/grammar"
)

func runToFixpoint(t *testing.T, g *grammar.Grammar, tokens []ladle.Symbol) *Engine {
	t.Helper()
	e, err := NewEngine(g, tokens)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.RunToFixpoint()
	if !e.IsDone() {
		t.Fatalf("engine did not reach fixpoint")
	}
	return e
}

// nonTerminalsOf collects every non-terminal node in the arena, for
// assertions that don't care about handle identity.
func nonTerminalsOf(e *Engine) []Node {
	var out []Node
	for i := 0; i < e.NodeCount(); i++ {
		n, _ := e.NodeAt(NodeHandle(i))
		if !n.Terminal {
			out = append(out, n)
		}
	}
	return out
}

func childLabels(e *Engine, n Node) []ladle.Symbol {
	labels := make([]ladle.Symbol, len(n.Children))
	for i, h := range n.Children {
		cn, _ := e.NodeAt(h)
		labels[i] = cn.Label
	}
	return labels
}

func TestScenarioA_SingleRuleIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, S := ladle.T(0), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Add().Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{a})

	nts := nonTerminalsOf(e)
	if len(nts) != 1 {
		t.Fatalf("expected 1 non-terminal node, got %d: %v", len(nts), nts)
	}
	n := nts[0]
	if n.Label != S || n.Start != 0 || n.Stop != 1 {
		t.Fatalf("unexpected node: %v", n)
	}
	if got := childLabels(e, n); len(got) != 1 || got[0] != a {
		t.Fatalf("unexpected children: %v", got)
	}
}

func TestScenarioB_PureSuccessorChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Successors(b, c).Add().Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{a, b, c})

	nts := nonTerminalsOf(e)
	if len(nts) != 1 {
		t.Fatalf("expected 1 non-terminal node, got %d: %v", len(nts), nts)
	}
	n := nts[0]
	if n.Start != 0 || n.Stop != 3 {
		t.Fatalf("expected S to span (0,3), got (%d,%d)", n.Start, n.Stop)
	}
	want := []ladle.Symbol{a, b, c}
	got := childLabels(e, n)
	if len(got) != len(want) {
		t.Fatalf("child count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("children out of order: got %v want %v", got, want)
		}
	}
}

func TestScenarioC_PurePredecessorChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	// innermost-first: b is adjacent to base c, then a.
	g := grammar.NewBuilder().Rule(S).Base(c).Predecessors(b, a).Add().Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{a, b, c})

	nts := nonTerminalsOf(e)
	if len(nts) != 1 {
		t.Fatalf("expected 1 non-terminal node, got %d: %v", len(nts), nts)
	}
	n := nts[0]
	if n.Start != 0 || n.Stop != 3 {
		t.Fatalf("expected S to span (0,3), got (%d,%d)", n.Start, n.Stop)
	}
	want := []ladle.Symbol{a, b, c}
	got := childLabels(e, n)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("children not restored to surface order: got %v want %v", got, want)
		}
	}
}

func TestScenarioD_Mixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	l, m, r, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(m).Predecessors(l).Successors(r).Add().Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{l, m, r})

	nts := nonTerminalsOf(e)
	if len(nts) != 1 {
		t.Fatalf("expected 1 non-terminal node, got %d: %v", len(nts), nts)
	}
	n := nts[0]
	if n.Start != 0 || n.Stop != 3 {
		t.Fatalf("expected S to span (0,3), got (%d,%d)", n.Start, n.Stop)
	}
	want := []ladle.Symbol{l, m, r}
	got := childLabels(e, n)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected child order: got %v want %v", got, want)
		}
	}
}

func TestScenarioE_Ambiguity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, S := ladle.T(0), ladle.N(0)
	b := grammar.NewBuilder()
	b.Rule(S).Base(a).Successors(a).Add()
	b.Rule(S).Base(a).Add()
	g := b.Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{a, a})

	nts := nonTerminalsOf(e)
	if len(nts) != 3 {
		t.Fatalf("expected exactly 3 distinct S nodes under dedup, got %d: %v", len(nts), nts)
	}
	spans := map[[2]int]bool{}
	for _, n := range nts {
		if n.Label != S {
			t.Fatalf("unexpected label %v", n.Label)
		}
		spans[[2]int{n.Start, n.Stop}] = true
	}
	for _, want := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		if !spans[want] {
			t.Errorf("missing expected span %v", want)
		}
	}
}

func TestScenarioF_NonMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Successors(b).Add().Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{a, c})

	if nts := nonTerminalsOf(e); len(nts) != 0 {
		t.Fatalf("expected no non-terminal nodes, got %v", nts)
	}
	if e.NodeCount() != 2 {
		t.Fatalf("expected exactly 2 terminal nodes, got %d", e.NodeCount())
	}
}

func TestEmptyTokenSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, S := ladle.T(0), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Add().Grammar()

	e := runToFixpoint(t, g, nil)
	if e.NodeCount() != 0 {
		t.Fatalf("expected empty arena for empty token sequence, got %d nodes", e.NodeCount())
	}
}

func TestZeroRuleGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, b := ladle.T(0), ladle.T(1)
	g := grammar.NewBuilder().Grammar()

	e := runToFixpoint(t, g, []ladle.Symbol{a, b})
	if got := len(nonTerminalsOf(e)); got != 0 {
		t.Fatalf("expected no non-terminal nodes with zero rules, got %d", got)
	}
	if e.NodeCount() != 2 {
		t.Fatalf("expected exactly 2 terminal nodes, got %d", e.NodeCount())
	}
}

func TestInvalidHandle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, S := ladle.T(0), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Add().Grammar()
	e := runToFixpoint(t, g, []ladle.Symbol{a})

	if _, err := e.NodeAt(NodeHandle(999)); err == nil {
		t.Fatalf("expected an error for an out-of-range handle")
	}
}

func TestConstructionErrorOnSymbolRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, S := ladle.T(5), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Add().Grammar()

	_, err := NewEngine(g, []ladle.Symbol{a}, WithSymbolRange(2, 2))
	if err == nil {
		t.Fatalf("expected a ConstructionError for an out-of-range terminal id")
	}
	var ce *ConstructionError
	if !asConstructionError(err, &ce) {
		t.Fatalf("expected *ConstructionError, got %T: %v", err, err)
	}
}

func asConstructionError(err error, target **ConstructionError) bool {
	ce, ok := err.(*ConstructionError)
	if ok {
		*target = ce
	}
	return ok
}

func TestShouldStopYieldsPartialResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ladle.chart")
	defer teardown()

	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	g := grammar.NewBuilder().Rule(S).Base(a).Successors(b, c).Add().Grammar()

	stopNow := false
	e, err := NewEngine(g, []ladle.Symbol{a, b, c}, WithShouldStop(func() bool { return stopNow }))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	stopNow = true
	e.RunToFixpoint()
	if e.IsDone() {
		t.Fatalf("expected IsDone() == false after cancellation")
	}
}
