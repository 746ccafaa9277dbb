package autogen

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/condition"
)

func TestCheck_ClassAndBaseTypeAlwaysForbidden(t *testing.T) {
	for name, cat := range Registry {
		if got := cat.Check(condition.PropClass); got != CompatForbidden {
			t.Errorf("%s: Check(Class) = %v, want CompatForbidden", name, got)
		}
		if got := cat.Check(condition.PropBaseType); got != CompatForbidden {
			t.Errorf("%s: Check(BaseType) = %v, want CompatForbidden", name, got)
		}
	}
}

func TestCheck_AlwaysAllowedAcrossCategories(t *testing.T) {
	always := []condition.Property{
		condition.PropIdentified, condition.PropCorrupted, condition.PropMirrored,
		condition.PropRarity, condition.PropAreaLevel,
	}
	for name, cat := range Registry {
		for _, p := range always {
			if got := cat.Check(p); got != CompatOK {
				t.Errorf("%s: Check(%v) = %v, want CompatOK", name, p, got)
			}
		}
	}
}

func TestCheck_GemAllowsCorruptedOnlyAsCategorySpecific(t *testing.T) {
	gems := Registry["gems"]
	if got := gems.Check(condition.PropGemLevel); got != CompatIncompatible {
		t.Errorf("gems: Check(GemLevel) = %v, want CompatIncompatible (autogen sets it itself)", got)
	}
}

func TestCheck_UnrelatedPropertyIsIncompatible(t *testing.T) {
	currency := Registry["currency"]
	if got := currency.Check(condition.PropSockets); got != CompatIncompatible {
		t.Errorf("currency: Check(Sockets) = %v, want CompatIncompatible", got)
	}
}

func TestCategoryByName(t *testing.T) {
	if _, ok := CategoryByName("currency"); !ok {
		t.Error("expected currency category to exist")
	}
	if _, ok := CategoryByName("not-a-category"); ok {
		t.Error("expected unknown category name to be absent")
	}
}
