package condition

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// ValueList tests an item's Rarity against a set of accepted (or
// rejected, for OpNotEqual) enum values (spec.md §3 "value-list
// conditions").
type ValueList struct {
	Prop   Property
	Op     Op // OpEqual/OpExactEqual (accept) or OpNotEqual (reject)
	Values []object.Rarity
	Orig   position.Origin
}

func (v ValueList) Property() Property { return v.Prop }
func (v ValueList) TestType() TestType {
	if v.Op == OpNotEqual {
		return TestValuesUnequal
	}
	return TestValuesEqual
}
func (v ValueList) Origin() position.Origin { return v.Orig }

// IsValid rejects an empty accepted-value list (spec.md §8 "Condition
// validity"): such a condition can never match and its block must be
// silently discarded.
func (v ValueList) IsValid() bool { return len(v.Values) > 0 }

func (v ValueList) Print() string {
	parts := make([]string, len(v.Values))
	for i, r := range v.Values {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s %s %s", v.Prop, v.Op, strings.Join(parts, " "))
}

func (v ValueList) TestItem(it *item.Item, areaLevel int) MatchResult {
	if v.Prop != PropRarity {
		return MatchResult{Success: false, ConditionOrigin: v.Orig}
	}
	found := false
	for _, r := range v.Values {
		if r == it.Rarity {
			found = true
			break
		}
	}
	if v.Op == OpNotEqual {
		found = !found
	}
	return MatchResult{Success: found, ConditionOrigin: v.Orig}
}
