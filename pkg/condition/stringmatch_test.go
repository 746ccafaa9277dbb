package condition

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/item"
)

func TestStringMatch_ExactRequiresFullNormalizedEquality(t *testing.T) {
	sm := StringMatch{Prop: PropBaseType, Exact: true, Values: []string{"Map"}}
	if !sm.TestItem(&item.Item{BaseType: "Maps"}, 1).Success {
		t.Error("expected exact match to tolerate English-plural 's', per spec")
	}
	if sm.TestItem(&item.Item{BaseType: "Underground Sea Map"}, 1).Success {
		t.Error("exact match should reject a substring occurrence")
	}
}

func TestStringMatch_SubstringMatchesAnywhere(t *testing.T) {
	sm := StringMatch{Prop: PropBaseType, Values: []string{"Map"}}
	if !sm.TestItem(&item.Item{BaseType: "Underground Sea Map"}, 1).Success {
		t.Error("expected substring match to find Map within the base type")
	}
}

func TestStringMatch_NegateInvertsResult(t *testing.T) {
	sm := StringMatch{Prop: PropClass, Negate: true, Values: []string{"Currency"}}
	if !sm.TestItem(&item.Item{Class: "Life Flasks"}, 1).Success {
		t.Error("expected != to succeed when no value matches")
	}
	if sm.TestItem(&item.Item{Class: "Currency"}, 1).Success {
		t.Error("expected != to fail when a value matches")
	}
}

func TestStringMatch_DiacriticFolding(t *testing.T) {
	sm := StringMatch{Prop: PropBaseType, Exact: true, Values: []string{"Hrimsorrow"}}
	if !sm.TestItem(&item.Item{BaseType: "Hrímsorrow"}, 1).Success {
		t.Error("expected diacritic folding to equate Hrímsorrow with Hrimsorrow")
	}
}

func TestStringMatch_TransfiguredGemRequiresFlag(t *testing.T) {
	sm := StringMatch{Prop: PropTransfiguredGem, Values: []string{"Anomalous"}}
	if sm.TestItem(&item.Item{BaseType: "Anomalous Fireball", TransfiguredGem: false}, 1).Success {
		t.Error("expected TransfiguredGem string match to fail when the item isn't flagged as one")
	}
	if !sm.TestItem(&item.Item{BaseType: "Anomalous Fireball", TransfiguredGem: true}, 1).Success {
		t.Error("expected TransfiguredGem string match to succeed when both the flag and name match")
	}
}

func TestStringMatch_IsValid(t *testing.T) {
	if (StringMatch{}).IsValid() {
		t.Error("expected an empty Values list to be invalid")
	}
	if !(StringMatch{Values: []string{"x"}}).IsValid() {
		t.Error("expected a non-empty Values list to be valid")
	}
}

func TestStringMatch_HasEnchantmentChecksAllMods(t *testing.T) {
	sm := StringMatch{Prop: PropHasEnchantment, Values: []string{"Damage Penetrates"}}
	it := &item.Item{EnchantmentMods: []string{"Minions deal 10% increased Damage", "Damage Penetrates 5% Fire Resistance"}}
	if !sm.TestItem(it, 1).Success {
		t.Error("expected a match against the second enchantment mod")
	}
}
