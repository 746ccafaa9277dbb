package condition

import (
	"fmt"
	"math"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// floatEpsilon bounds the tolerance used when comparing fractional price
// bounds for equality (spec.md §9 "Arithmetic/comparison semantics").
const floatEpsilon = 1e-9

// Range is a single lower- or upper-bound test on an ordered numeric
// property (spec.md §3 "range-bound conditions", §4.7 "Range conditions").
// A block's condition set may hold both a Range{Lower} and a
// Range{Upper} for the same property simultaneously.
type Range struct {
	Prop      Property
	Lower     bool // true = lower bound, false = upper bound
	Value     float64
	Inclusive bool
	Orig      position.Origin
}

func (r Range) Property() Property { return r.Prop }
func (r Range) TestType() TestType {
	if r.Lower {
		return TestLowerBound
	}
	return TestUpperBound
}
func (r Range) Origin() position.Origin { return r.Orig }
func (r Range) IsValid() bool           { return true }

func (r Range) Print() string {
	op := ">="
	if r.Lower {
		if !r.Inclusive {
			op = ">"
		}
	} else {
		op = "<="
		if !r.Inclusive {
			op = "<"
		}
	}
	if isIntegerProperty(r.Prop) {
		return fmt.Sprintf("%s %s %d", r.Prop, op, int64(r.Value))
	}
	return fmt.Sprintf("%s %s %g", r.Prop, op, r.Value)
}

func isIntegerProperty(p Property) bool {
	return p != PropPrice
}

func (r Range) TestItem(it *item.Item, areaLevel int) MatchResult {
	actual, ok := numericField(it, r.Prop, areaLevel)
	if !ok {
		return MatchResult{Success: false, ConditionOrigin: r.Orig}
	}
	success := r.testValue(actual)
	return MatchResult{Success: success, ConditionOrigin: r.Orig}
}

func (r Range) testValue(actual float64) bool {
	if r.Prop == PropPrice {
		diff := actual - r.Value
		if math.Abs(diff) < floatEpsilon {
			return r.Inclusive
		}
		if r.Lower {
			return diff > 0
		}
		return diff < 0
	}
	if r.Lower {
		if r.Inclusive {
			return actual >= r.Value
		}
		return actual > r.Value
	}
	if r.Inclusive {
		return actual <= r.Value
	}
	return actual < r.Value
}

// numericField extracts the numeric value of an ordered property from an
// item. The second return value is false for optional fields the item
// does not carry (e.g. GemLevel on a non-gem), causing the condition to
// fail closed.
func numericField(it *item.Item, p Property, areaLevel int) (float64, bool) {
	switch p {
	case PropItemLevel:
		return float64(it.ItemLevel), true
	case PropDropLevel:
		return float64(it.DropLevel), true
	case PropQuality:
		return float64(it.Quality), true
	case PropWidth:
		return float64(it.Width), true
	case PropHeight:
		return float64(it.Height), true
	case PropLinkedSockets:
		return float64(it.LinkedSockets), true
	case PropAreaLevel:
		return float64(areaLevel), true
	case PropStackSize:
		if it.StackSize == nil {
			return 0, false
		}
		return float64(*it.StackSize), true
	case PropGemLevel:
		if it.GemLevel == nil {
			return 0, false
		}
		return float64(*it.GemLevel), true
	case PropMapTier:
		if it.MapTier == nil {
			return 0, false
		}
		return float64(*it.MapTier), true
	case PropCorruptedMods:
		if it.CorruptedMods == nil {
			return 0, false
		}
		return float64(*it.CorruptedMods), true
	case PropEnchantmentPassiveNum:
		return 0, it.EnchantmentClusterJewelNode != ""
	case PropBaseArmour:
		if it.BaseArmour == nil {
			return 0, false
		}
		return float64(*it.BaseArmour), true
	case PropBaseEvasion:
		if it.BaseEvasion == nil {
			return 0, false
		}
		return float64(*it.BaseEvasion), true
	case PropBaseEnergyShield:
		if it.BaseEnergyShield == nil {
			return 0, false
		}
		return float64(*it.BaseEnergyShield), true
	case PropBaseWard:
		if it.BaseWard == nil {
			return 0, false
		}
		return float64(*it.BaseWard), true
	case PropBaseDefencePercentile:
		if it.BaseDefencePercentile == nil {
			return 0, false
		}
		return float64(*it.BaseDefencePercentile), true
	case PropMemoryStrands:
		if it.MemoryStrands == nil {
			return 0, false
		}
		return float64(*it.MemoryStrands), true
	default:
		return 0, false
	}
}

// PriceRange is the compile-time-only lower/upper price bound pair
// attached to an autogeneration directive (spec.md §4.4 step 1, §4.5).
// It is never tested against an Item directly: autogeneration binds it
// against market data to produce StackSize range conditions instead.
type PriceRange struct {
	Lower     *Range
	Upper     *Range
	BlockOrig position.Origin
}

// Bounds returns the open-ended-aware (lo, hasLo, hi, hasHi) tuple.
func (p PriceRange) Bounds() (lo float64, hasLo bool, hi float64, hasHi bool) {
	if p.Lower != nil {
		lo, hasLo = p.Lower.Value, true
	}
	if p.Upper != nil {
		hi, hasHi = p.Upper.Value, true
	}
	return
}
