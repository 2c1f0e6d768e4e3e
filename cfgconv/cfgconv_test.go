package cfgconv_test

import (
	"testing"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/cfgconv"
)

func TestConvertSingleSymbolBody(t *testing.T) {
	a, S := ladle.T(0), ladle.N(0)
	rules, err := cfgconv.Convert(cfgconv.CFG{Rules: []cfgconv.Rule{
		{Result: S, Body: []ladle.Symbol{a}},
	}})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	r := rules[0]
	if r.Base != a || len(r.Successors) != 0 || len(r.Predecessors) != 0 {
		t.Fatalf("unexpected conversion: %+v", r)
	}
}

func TestConvertMultiSymbolBody(t *testing.T) {
	a, b, c, S := ladle.T(0), ladle.T(1), ladle.T(2), ladle.N(0)
	rules, err := cfgconv.Convert(cfgconv.CFG{Rules: []cfgconv.Rule{
		{Result: S, Body: []ladle.Symbol{a, b, c}},
	}})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	r := rules[0]
	if r.Base != a {
		t.Fatalf("expected base == a, got %v", r.Base)
	}
	if len(r.Successors) != 2 || r.Successors[0] != b || r.Successors[1] != c {
		t.Fatalf("unexpected successors: %v", r.Successors)
	}
	if len(r.Predecessors) != 0 {
		t.Fatalf("expected no predecessors, got %v", r.Predecessors)
	}
}

func TestConvertEmptyBodyFails(t *testing.T) {
	S := ladle.N(0)
	_, err := cfgconv.Convert(cfgconv.CFG{Rules: []cfgconv.Rule{
		{Result: S, Body: nil},
	}})
	if err == nil {
		t.Fatalf("expected an error for an empty-body rule")
	}
}
