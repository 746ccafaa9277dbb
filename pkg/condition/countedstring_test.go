package condition

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/item"
)

func TestCountedString_NoCountMeansAtLeastOne(t *testing.T) {
	cs := CountedString{Prop: PropHasExplicitMod, Op: OpEqual, Values: []string{"of Elemental Protection"}}
	it := &item.Item{ExplicitMods: []string{"Minion Damage of Elemental Protection"}}
	if !cs.TestItem(it, 1).Success {
		t.Error("expected one matching mod to satisfy a bare HasExplicitMod")
	}
}

func TestCountedString_ExplicitCountMustMatchExactly(t *testing.T) {
	n := 2
	cs := CountedString{Prop: PropHasExplicitMod, Op: OpEqual, Count: &n, Values: []string{"Resistance"}}
	it := &item.Item{ExplicitMods: []string{"Fire Resistance", "Cold Resistance", "Lightning Resistance"}}
	if cs.TestItem(it, 1).Success {
		t.Error("expected 3 matching mods to fail an exact count of 2")
	}
}

func TestCountedString_GreaterEqualCount(t *testing.T) {
	n := 2
	cs := CountedString{Prop: PropHasExplicitMod, Op: OpGreaterEqual, Count: &n, Values: []string{"Resistance"}}
	it := &item.Item{ExplicitMods: []string{"Fire Resistance", "Cold Resistance", "Lightning Resistance"}}
	if !cs.TestItem(it, 1).Success {
		t.Error("expected 3 matching mods to satisfy >= 2")
	}
}

func TestCountedString_IsValidRejectsNotEqual(t *testing.T) {
	cs := CountedString{Op: OpNotEqual, Values: []string{"x"}}
	if cs.IsValid() {
		t.Error("HasExplicitMod != must be rejected as invalid")
	}
}

func TestCountedString_IsValidRejectsEmptyValues(t *testing.T) {
	if (CountedString{}).IsValid() {
		t.Error("expected an empty value list to be invalid")
	}
}
