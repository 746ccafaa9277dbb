package condition

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// CountedString implements HasExplicitMod [op] [N] <names...> (spec.md
// §3/§4.7 "counted-string conditions"): matches when the count of item
// mod names matching any of Values satisfies Op Count. With no Count,
// "=" and "==" mean "at least 1". "!=" is rejected by IsValid: the
// game's own implementation of it is buggy (spec.md §4.7, §9).
type CountedString struct {
	Prop   Property
	Op     Op
	Count  *int
	Exact  bool // Values require a full match rather than substring
	Values []string
	Orig   position.Origin
}

func (c CountedString) Property() Property { return c.Prop }
func (c CountedString) TestType() TestType { return TestValuesEqual }
func (c CountedString) Origin() position.Origin { return c.Orig }

// IsValid rejects "!=" (spec.md §4.7: "!= is rejected as the game's
// implementation is buggy") and empty value lists.
func (c CountedString) IsValid() bool {
	if c.Op == OpNotEqual {
		return false
	}
	return len(c.Values) > 0
}

func (c CountedString) Print() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", c.Prop)
	if c.Op != OpEqual || c.Count != nil {
		fmt.Fprintf(&b, " %s", c.Op)
	}
	if c.Count != nil {
		fmt.Fprintf(&b, " %d", *c.Count)
	}
	for _, v := range c.Values {
		fmt.Fprintf(&b, " %q", v)
	}
	return b.String()
}

func (c CountedString) TestItem(it *item.Item, areaLevel int) MatchResult {
	if c.Prop != PropHasExplicitMod {
		return MatchResult{Success: false, ConditionOrigin: c.Orig}
	}
	n := 0
	for _, mod := range it.ExplicitMods {
		for _, v := range c.Values {
			if stringMatches(mod, v, c.Exact) {
				n++
				break
			}
		}
	}
	required := 1
	if c.Count != nil {
		required = *c.Count
	}
	var success bool
	switch c.Op {
	case OpLess:
		success = n < required
	case OpLessEqual:
		success = n <= required
	case OpGreater:
		success = n > required
	case OpGreaterEqual:
		success = n >= required
	default: // OpEqual, OpExactEqual
		if c.Count == nil {
			success = n >= 1
		} else {
			success = n == required
		}
	}
	return MatchResult{Success: success, ConditionOrigin: c.Orig}
}
