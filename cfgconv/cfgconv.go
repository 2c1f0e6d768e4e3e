/*
Package cfgconv converts classic context-free grammar rules — a result
symbol plus an ordered sequence of body symbols — into Mid-Rule
productions, supplying the conversion the original parser left as an empty
stub.

The chosen mapping treats the first body symbol as the Mid-Rule base and
the remaining body symbols as successors, with an empty predecessor list:

	A -> X1 X2 … Xn   becomes   A <- base=X1, predecessors=[], successors=[X2..Xn]

This is the natural encoding: the Match Engine discovers X1 first (as a
token or an already-completed non-terminal) and extends rightward through
X2..Xn exactly as it would for any successor-only Mid-Rule. A rule with an
empty body has no valid encoding (Mid-Rule requires a base) and is
rejected by Convert.
*/
package cfgconv

import (
	"fmt"

	"github.com/ladle-go/ladle"
	"github.com/ladle-go/ladle/grammar"
)

// Rule is a classic context-free production: Result -> Body[0] Body[1] ...
type Rule struct {
	Result  ladle.Symbol
	Variant int
	Body    []ladle.Symbol
}

// CFG is an ordered list of context-free rules.
type CFG struct {
	Rules []Rule
}

// EmptyBodyError is returned by Convert when a rule has no body symbols at
// all — Mid-Rule form has no representation for such a rule, since every
// Mid-Rule requires a base.
type EmptyBodyError struct {
	Result ladle.Symbol
}

func (e *EmptyBodyError) Error() string {
	return fmt.Sprintf("ladle/cfgconv: rule for %s has an empty body; Mid-Rule form requires a base symbol", e.Result)
}

// Convert maps every rule in cfg to its Mid-Rule equivalent. It fails fast
// on the first rule with an empty body.
func Convert(cfg CFG) ([]grammar.MidRule, error) {
	out := make([]grammar.MidRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		mr, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		out = append(out, mr)
	}
	return out, nil
}

func convertRule(r Rule) (grammar.MidRule, error) {
	if len(r.Body) == 0 {
		return grammar.MidRule{}, &EmptyBodyError{Result: r.Result}
	}
	successors := make([]ladle.Symbol, len(r.Body)-1)
	copy(successors, r.Body[1:])
	return grammar.MidRule{
		Result:     r.Result,
		Variant:    r.Variant,
		Base:       r.Body[0],
		Successors: successors,
	}, nil
}
