package condition

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
)

func TestValueList_AcceptsListedRarity(t *testing.T) {
	vl := ValueList{Prop: PropRarity, Op: OpEqual, Values: []object.Rarity{object.RarityUnique, object.RarityRare}}
	if !vl.TestItem(&item.Item{Rarity: object.RarityUnique}, 1).Success {
		t.Error("expected Unique to match the accepted list")
	}
	if vl.TestItem(&item.Item{Rarity: object.RarityNormal}, 1).Success {
		t.Error("expected Normal to fail against [Unique, Rare]")
	}
}

func TestValueList_NotEqualInverts(t *testing.T) {
	vl := ValueList{Prop: PropRarity, Op: OpNotEqual, Values: []object.Rarity{object.RarityNormal}}
	if !vl.TestItem(&item.Item{Rarity: object.RarityUnique}, 1).Success {
		t.Error("expected Unique != Normal to succeed")
	}
	if vl.TestItem(&item.Item{Rarity: object.RarityNormal}, 1).Success {
		t.Error("expected Normal != Normal to fail")
	}
}

func TestValueList_IsValidRejectsEmpty(t *testing.T) {
	if (ValueList{Prop: PropRarity}).IsValid() {
		t.Error("expected an empty value list to be invalid")
	}
}
