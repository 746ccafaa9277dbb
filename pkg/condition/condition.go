package condition

import (
	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// MatchResult records the outcome of testing one condition against one
// item (spec.md §3 "Match result"): whether it succeeded and the
// condition's own origin. ValueOrigin has room for the origin of the
// accepted value that matched; no condition in this package sets it, so
// it is always the zero Origin.
type MatchResult struct {
	Success         bool
	ConditionOrigin position.Origin
	ValueOrigin     position.Origin
}

// Condition is the common contract every concrete condition variant
// implements (spec.md §3 "Condition"). The engine (through Set.TestAll)
// and autogen conflict-checking (through Property) call these methods on
// the interface; neither switches on the concrete type.
type Condition interface {
	// Property returns the tested-property tag.
	Property() Property
	// TestType returns the test-type tag.
	TestType() TestType
	// Origin returns the condition's own source origin.
	Origin() position.Origin
	// TestItem evaluates the condition against it at the given area
	// level (only PropAreaLevel conditions consult areaLevel).
	TestItem(it *item.Item, areaLevel int) MatchResult
	// IsValid rejects conditions that can never match, e.g. an empty
	// accepted-value list produced by an empty autogen expansion
	// (spec.md §8 "Condition validity").
	IsValid() bool
	// Print renders the condition's native-syntax operand line, without
	// the leading tab the serializer adds (spec.md §6).
	Print() string
}

// Set is an ordered collection of conditions built up while threading
// inherited state through nested blocks (spec.md §4.4). Order matters
// only for diagnostics; TestAll is the conjunction regardless of order.
type Set struct {
	Conditions []Condition
}

// Append returns a new Set with c appended, leaving the receiver
// untouched — by-value threading lets sibling blocks diverge without
// explicit rollback (spec.md §9 "Recursive block lowering").
func (s Set) Append(c Condition) Set {
	next := make([]Condition, len(s.Conditions), len(s.Conditions)+1)
	copy(next, s.Conditions)
	next = append(next, c)
	return Set{Conditions: next}
}

// TestAll evaluates every condition in the set against it and reports
// whether all of them succeeded, along with each individual MatchResult
// in declaration order (spec.md §4.6 step 2: "matches if all conditions
// succeed").
func (s Set) TestAll(it *item.Item, areaLevel int) (bool, []MatchResult) {
	results := make([]MatchResult, len(s.Conditions))
	allOK := true
	for i, c := range s.Conditions {
		r := c.TestItem(it, areaLevel)
		results[i] = r
		if !r.Success {
			allOK = false
		}
	}
	return allOK, results
}

// Valid reports whether every condition in the set is individually valid
// (spec.md §8 "Condition validity").
func (s Set) Valid() bool {
	for _, c := range s.Conditions {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// Find returns the first condition in the set matching prop, or nil.
func (s Set) Find(prop Property) Condition {
	for _, c := range s.Conditions {
		if c.Property() == prop {
			return c
		}
	}
	return nil
}

// FindAll returns every condition in the set matching prop.
func (s Set) FindAll(prop Property) []Condition {
	var out []Condition
	for _, c := range s.Conditions {
		if c.Property() == prop {
			out = append(out, c)
		}
	}
	return out
}
