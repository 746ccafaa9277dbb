package condition

import (
	"fmt"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// Sockets implements the Sockets and SocketGroup conditions (spec.md §3
// "socket-specification conditions", detailed in §4.7). Sockets tests
// the item's total socket layout; SocketGroup requires at least one
// individual linked group to satisfy the spec.
type Sockets struct {
	Prop Property // PropSockets or PropSocketGroup
	Op   Op
	Spec object.SocketSpec
	Orig position.Origin
}

func (s Sockets) Property() Property { return s.Prop }
func (s Sockets) TestType() TestType { return TestSockets }
func (s Sockets) Origin() position.Origin { return s.Orig }
func (s Sockets) IsValid() bool { return s.Spec.Validate() == nil }

func (s Sockets) Print() string {
	op := ""
	if s.Op != OpEqual {
		op = s.Op.String() + " "
	}
	return fmt.Sprintf("%s %s%s", s.Prop, op, s.Spec.String())
}

func (s Sockets) TestItem(it *item.Item, areaLevel int) MatchResult {
	if s.Prop == PropSocketGroup {
		groups := it.Sockets
		if len(groups) == 0 {
			groups = []item.SocketGroup{{}} // empty sockets = single empty group, spec.md §4.7
		}
		for _, g := range groups {
			if testSocketSpec(g.Len(), colorCounts(g), s.Spec, s.Op) {
				return MatchResult{Success: true, ConditionOrigin: s.Orig}
			}
		}
		return MatchResult{Success: false, ConditionOrigin: s.Orig}
	}
	total := it.TotalSockets()
	counts := map[object.SocketColor]int{}
	for _, g := range it.Sockets {
		for c, n := range colorCounts(g) {
			counts[c] += n
		}
	}
	ok := testSocketSpec(total, counts, s.Spec, s.Op)
	return MatchResult{Success: ok, ConditionOrigin: s.Orig}
}

func colorCounts(g item.SocketGroup) map[object.SocketColor]int {
	m := map[object.SocketColor]int{}
	for _, c := range g.Colors {
		m[c]++
	}
	return m
}

// testSocketSpec implements the seven operator modes of spec.md §4.7.
func testSocketSpec(actualCount int, actualColors map[object.SocketColor]int, spec object.SocketSpec, op Op) bool {
	switch op {
	case OpLess:
		if spec.Count != -1 && actualCount < spec.Count {
			return true
		}
		for c, n := range spec.Required {
			if actualColors[c] < n {
				return true
			}
		}
		return false
	case OpLessEqual:
		if spec.Count != -1 && actualCount > spec.Count {
			return false
		}
		for c, n := range spec.Required {
			if actualColors[c] > n {
				return false
			}
		}
		return true
	case OpExactEqual:
		if spec.Count != -1 && actualCount != spec.Count {
			return false
		}
		for c, n := range spec.Required {
			if actualColors[c] != n {
				return false
			}
		}
		return true
	case OpGreaterEqual:
		if spec.Count != -1 && actualCount < spec.Count {
			return false
		}
		for c, n := range spec.Required {
			if actualColors[c] < n {
				return false
			}
		}
		return true
	case OpGreater:
		if spec.Count != -1 && actualCount > spec.Count {
			return true
		}
		for c, n := range spec.Required {
			if actualColors[c] > n {
				return true
			}
		}
		return false
	case OpNotEqual:
		return !testSocketSpec(actualCount, actualColors, spec, OpEqual)
	default: // OpEqual (bare "="): count exact, colors at-least
		if spec.Count != -1 && actualCount != spec.Count {
			return false
		}
		for c, n := range spec.Required {
			if actualColors[c] < n {
				return false
			}
		}
		return true
	}
}
