package condition

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// StringMatch implements the string-comparison conditions of spec.md
// §3/§4.7: Class, BaseType, HasEnchantment, EnchantmentPassiveNode,
// ArchnemesisMod, and the string variant of TransfiguredGem.
//
// Exact ("==") requires a full-string match; substring (plain or "=")
// requires the pattern to appear anywhere in the candidate. "!=" means
// "no entry matches" for any of the accepted patterns.
type StringMatch struct {
	Prop    Property
	Exact   bool
	Negate  bool
	Values  []string
	Orig    position.Origin
}

func (s StringMatch) Property() Property { return s.Prop }
func (s StringMatch) TestType() TestType {
	if s.Negate {
		return TestValuesUnequal
	}
	return TestValuesEqual
}
func (s StringMatch) Origin() position.Origin { return s.Orig }
func (s StringMatch) IsValid() bool           { return len(s.Values) > 0 }

func (s StringMatch) Print() string {
	op := ""
	if s.Exact {
		op = "== "
	}
	if s.Negate {
		op = "!= "
	}
	quoted := make([]string, len(s.Values))
	for i, v := range s.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%s %s%s", s.Prop, op, strings.Join(quoted, " "))
}

func (s StringMatch) candidates(it *item.Item) ([]string, bool) {
	switch s.Prop {
	case PropClass:
		return []string{it.Class}, true
	case PropBaseType:
		return []string{it.BaseType}, true
	case PropHasEnchantment:
		return it.EnchantmentMods, true
	case PropEnchantmentPassiveNode:
		if it.EnchantmentClusterJewelNode == "" {
			return nil, true
		}
		return []string{it.EnchantmentClusterJewelNode}, true
	case PropArchnemesisMod:
		return it.ArchnemesisMods, true
	case PropTransfiguredGem:
		if !it.TransfiguredGem {
			return nil, true
		}
		return []string{it.BaseType}, true
	default:
		return nil, false
	}
}

func (s StringMatch) TestItem(it *item.Item, areaLevel int) MatchResult {
	if s.Prop == PropTransfiguredGem && !it.TransfiguredGem {
		// spec.md §4.7: TransfiguredGem string variant fails early
		// unless the item is a transfigured gem.
		return MatchResult{Success: false, ConditionOrigin: s.Orig}
	}
	candidates, ok := s.candidates(it)
	if !ok {
		return MatchResult{Success: false, ConditionOrigin: s.Orig}
	}
	matched := false
	var matchedValueOrig position.Origin
	for _, cand := range candidates {
		for _, v := range s.Values {
			if stringMatches(cand, v, s.Exact) {
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if s.Negate {
		return MatchResult{Success: !matched, ConditionOrigin: s.Orig}
	}
	return MatchResult{Success: matched, ConditionOrigin: s.Orig, ValueOrigin: matchedValueOrig}
}
