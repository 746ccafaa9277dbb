package condition

import (
	"fmt"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// Boolean tests a single boolean item flag, e.g. Identified/Corrupted/
// Mirrored/FracturedItem/... (spec.md §3 "boolean conditions").
type Boolean struct {
	Prop     Property
	Expected bool
	Orig     position.Origin
}

func (b Boolean) Property() Property      { return b.Prop }
func (b Boolean) TestType() TestType      { return TestBooleanState }
func (b Boolean) Origin() position.Origin { return b.Orig }
func (b Boolean) IsValid() bool           { return true }

func (b Boolean) Print() string {
	return fmt.Sprintf("%s %s", b.Prop, boolLiteral(b.Expected))
}

func boolLiteral(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func (b Boolean) TestItem(it *item.Item, areaLevel int) MatchResult {
	actual, ok := boolField(it, b.Prop)
	if !ok {
		return MatchResult{Success: false, ConditionOrigin: b.Orig}
	}
	return MatchResult{Success: actual == b.Expected, ConditionOrigin: b.Orig}
}

func boolField(it *item.Item, p Property) (bool, bool) {
	switch p {
	case PropIdentified:
		return it.Identified, true
	case PropCorrupted:
		return it.Corrupted, true
	case PropMirrored:
		return it.Mirrored, true
	case PropFracturedItem:
		return it.FracturedItem, true
	case PropSynthesisedItem:
		return it.SynthesisedItem, true
	case PropAnyEnchantment:
		return it.EnchantmentLabel != "", true
	case PropShapedMap:
		return it.ShapedMap, true
	case PropElderMap:
		return it.ElderMap, true
	case PropBlightedMap:
		return it.BlightedMap, true
	case PropUberBlightedMap:
		return it.UberBlightedMap, true
	case PropReplica:
		return it.Replica, true
	case PropHasCruciblePassiveTree:
		return it.HasCrucibleTree, true
	case PropZanaMemory:
		return it.ZanaMemory, true
	case PropScourged:
		return it.Scourged, true
	case PropAlternateQuality:
		return it.AlternateQuality, true
	case PropHasSearingExarchImplicit:
		return it.HasSearingExarchImplicit, true
	case PropHasEaterOfWorldsImplicit:
		return it.HasEaterOfWorldsImplicit, true
	case PropElderItem:
		return it.HasInfluence(object.InfluenceElder), true
	case PropShaperItem:
		return it.HasInfluence(object.InfluenceShaper), true
	default:
		return false, false
	}
}
