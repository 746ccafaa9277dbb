package condition

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// HasInfluence implements the HasInfluence condition (spec.md §3, §4.7).
// The literal None matches items with exactly no influence. With Exact
// false ("="), the match succeeds if any listed influence is present;
// with Exact true ("=="), all listed influences must be present.
type HasInfluence struct {
	Values []object.Influence
	Exact  bool
	Orig   position.Origin
}

func (h HasInfluence) Property() Property { return PropHasInfluence }
func (h HasInfluence) TestType() TestType {
	if h.Exact {
		return TestValuesEqual
	}
	return TestValuesUnequal
}
func (h HasInfluence) Origin() position.Origin { return h.Orig }
func (h HasInfluence) IsValid() bool           { return len(h.Values) > 0 }

func (h HasInfluence) Print() string {
	op := ""
	if h.Exact {
		op = "== "
	}
	names := make([]string, len(h.Values))
	for i, v := range h.Values {
		names[i] = v.String()
	}
	return fmt.Sprintf("HasInfluence %s%s", op, strings.Join(names, " "))
}

func (h HasInfluence) TestItem(it *item.Item, areaLevel int) MatchResult {
	isNoneQuery := len(h.Values) == 1 && h.Values[0] == object.InfluenceNone
	if isNoneQuery {
		return MatchResult{Success: len(it.Influences) == 0, ConditionOrigin: h.Orig}
	}
	if h.Exact {
		for _, want := range h.Values {
			if !it.HasInfluence(want) {
				return MatchResult{Success: false, ConditionOrigin: h.Orig}
			}
		}
		return MatchResult{Success: true, ConditionOrigin: h.Orig}
	}
	for _, want := range h.Values {
		if it.HasInfluence(want) {
			return MatchResult{Success: true, ConditionOrigin: h.Orig}
		}
	}
	return MatchResult{Success: false, ConditionOrigin: h.Orig}
}
