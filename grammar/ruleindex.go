package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/ladle-go/ladle"
)

// RuleIndex maps a base symbol to the sorted sequence of rule handles
// anchored at it. It is build-time only and immutable once constructed;
// lookup is average-constant (a map access followed by reading an already
// materialized, sorted slice of handles).
type RuleIndex struct {
	byBase map[ladle.Symbol][]RuleHandle
}

func buildRuleIndex(rules []MidRule) RuleIndex {
	staged := make(map[ladle.Symbol]*treeset.Set)
	for i, r := range rules {
		set, ok := staged[r.Base]
		if !ok {
			set = treeset.NewWith(utils.IntComparator)
			staged[r.Base] = set
		}
		set.Add(i)
	}
	idx := RuleIndex{byBase: make(map[ladle.Symbol][]RuleHandle, len(staged))}
	for base, set := range staged {
		values := set.Values() // ascending, by IntComparator
		handles := make([]RuleHandle, len(values))
		for i, v := range values {
			handles[i] = RuleHandle(v.(int))
		}
		idx.byBase[base] = handles
	}
	return idx
}

// RulesFor returns the rule handles anchored at sym, or nil if none.
func (idx RuleIndex) RulesFor(sym ladle.Symbol) []RuleHandle {
	return idx.byBase[sym]
}
