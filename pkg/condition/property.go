// Package condition implements the polymorphic condition/action data
// model of spec.md §3-§4.7: a closed family of item-filter tests, each
// knowing its tested property, its acceptable operand domain, how to
// validate itself, how to serialize to native syntax, and how to execute
// against an item. Each variant is its own struct type implementing the
// Condition interface, and callers dispatch through that interface; the
// Property and TestType tags identify a variant without a type switch.
package condition

import "fmt"

// Property identifies which item field a condition tests (spec.md §3
// "tested-property tag"). Keyword spellings match spec.md §4.1 exactly.
type Property int

const (
	PropRarity Property = iota
	PropItemLevel
	PropDropLevel
	PropQuality
	PropSockets
	PropSocketGroup
	PropLinkedSockets
	PropWidth
	PropHeight
	PropStackSize
	PropGemLevel
	PropMapTier
	PropCorruptedMods
	PropEnchantmentPassiveNum
	PropBaseArmour
	PropBaseEvasion
	PropBaseEnergyShield
	PropBaseWard
	PropBaseDefencePercentile
	PropMemoryStrands
	PropAreaLevel
	PropHasSearingExarchImplicit
	PropHasEaterOfWorldsImplicit
	PropClass
	PropBaseType
	PropHasExplicitMod
	PropHasEnchantment
	PropEnchantmentPassiveNode
	PropArchnemesisMod
	PropHasInfluence
	PropTransfiguredGem
	PropIdentified
	PropCorrupted
	PropMirrored
	PropFracturedItem
	PropSynthesisedItem
	PropAnyEnchantment
	PropShapedMap
	PropElderMap
	PropBlightedMap
	PropUberBlightedMap
	PropReplica
	PropHasCruciblePassiveTree
	PropZanaMemory
	PropScourged
	PropAlternateQuality
	PropHasImplicitMod
	PropElderItem
	PropShaperItem
	PropPrice
)

var propertyKeywords = [...]string{
	PropRarity:                    "Rarity",
	PropItemLevel:                 "ItemLevel",
	PropDropLevel:                 "DropLevel",
	PropQuality:                   "Quality",
	PropSockets:                   "Sockets",
	PropSocketGroup:               "SocketGroup",
	PropLinkedSockets:             "LinkedSockets",
	PropWidth:                     "Width",
	PropHeight:                    "Height",
	PropStackSize:                 "StackSize",
	PropGemLevel:                  "GemLevel",
	PropMapTier:                   "MapTier",
	PropCorruptedMods:             "CorruptedMods",
	PropEnchantmentPassiveNum:     "EnchantmentPassiveNum",
	PropBaseArmour:                "BaseArmour",
	PropBaseEvasion:               "BaseEvasion",
	PropBaseEnergyShield:          "BaseEnergyShield",
	PropBaseWard:                  "BaseWard",
	PropBaseDefencePercentile:     "BaseDefencePercentile",
	PropMemoryStrands:             "MemoryStrands",
	PropAreaLevel:                 "AreaLevel",
	PropHasSearingExarchImplicit:  "HasSearingExarchImplicit",
	PropHasEaterOfWorldsImplicit:  "HasEaterOfWorldsImplicit",
	PropClass:                     "Class",
	PropBaseType:                  "BaseType",
	PropHasExplicitMod:            "HasExplicitMod",
	PropHasEnchantment:            "HasEnchantment",
	PropEnchantmentPassiveNode:    "EnchantmentPassiveNode",
	PropArchnemesisMod:            "ArchnemesisMod",
	PropHasInfluence:              "HasInfluence",
	PropTransfiguredGem:           "TransfiguredGem",
	PropIdentified:                "Identified",
	PropCorrupted:                 "Corrupted",
	PropMirrored:                  "Mirrored",
	PropFracturedItem:             "FracturedItem",
	PropSynthesisedItem:           "SynthesisedItem",
	PropAnyEnchantment:            "AnyEnchantment",
	PropShapedMap:                 "ShapedMap",
	PropElderMap:                  "ElderMap",
	PropBlightedMap:               "BlightedMap",
	PropUberBlightedMap:           "UberBlightedMap",
	PropReplica:                   "Replica",
	PropHasCruciblePassiveTree:    "HasCruciblePassiveTree",
	PropZanaMemory:                "ZanaMemory",
	PropScourged:                  "Scourged",
	PropAlternateQuality:          "AlternateQuality",
	PropHasImplicitMod:            "HasImplicitMod",
	PropElderItem:                 "ElderItem",
	PropShaperItem:                "ShaperItem",
	PropPrice:                     "Price",
}

// String returns the native filter keyword for the property.
func (p Property) String() string {
	if int(p) < 0 || int(p) >= len(propertyKeywords) || propertyKeywords[p] == "" {
		return fmt.Sprintf("Unknown(%d)", p)
	}
	return propertyKeywords[p]
}

// PropertyByKeyword resolves a native keyword back to a Property, used by
// both the SF and RF parsers (spec.md §4.1).
func PropertyByKeyword(kw string) (Property, bool) {
	for i, name := range propertyKeywords {
		if name == kw {
			return Property(i), true
		}
	}
	return 0, false
}

// deadConditionKeywords are condition keywords the game once supported
// that no longer exist in any current item filter grammar (spec.md
// §4.4 "dead/removed keywords get a distinct error"). They are not in
// propertyKeywords, so a bare PropertyByKeyword miss can't tell a dead
// keyword from a genuinely unknown one; IsDeadConditionKeyword does.
var deadConditionKeywords = map[string]bool{
	"Prophecy":       true,
	"GemQualityType": true,
}

// IsDeadConditionKeyword reports whether kw names a condition that used
// to exist but has since been removed from the game, as opposed to one
// that was never a recognized keyword at all.
func IsDeadConditionKeyword(kw string) bool {
	return deadConditionKeywords[kw]
}

// Op identifies the comparison operator written in source, independent of
// the test-type it ultimately resolves to (spec.md §4.1).
type Op int

const (
	OpLess Op = iota
	OpLessEqual
	OpEqual
	OpExactEqual // "=="
	OpGreater
	OpGreaterEqual
	OpNotEqual
)

func (o Op) String() string {
	switch o {
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpEqual:
		return "="
	case OpExactEqual:
		return "=="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpNotEqual:
		return "!="
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// TestType identifies the shape of test a condition performs (spec.md §3
// "test-type tag"), used by conflict-detection queries during
// autogeneration (spec.md §4.4).
type TestType int

const (
	TestLowerBound TestType = iota
	TestUpperBound
	TestValuesEqual
	TestValuesUnequal
	TestSockets
	TestBooleanState
)

func (t TestType) String() string {
	switch t {
	case TestLowerBound:
		return "lower-bound"
	case TestUpperBound:
		return "upper-bound"
	case TestValuesEqual:
		return "values-equal"
	case TestValuesUnequal:
		return "values-unequal"
	case TestSockets:
		return "sockets"
	case TestBooleanState:
		return "boolean-state"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}
