package engine

import (
	"strings"
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
)

func rangeCond(prop condition.Property, lower bool, value float64, inclusive bool) condition.Condition {
	return condition.Range{Prop: prop, Lower: lower, Value: value, Inclusive: inclusive}
}

func TestPassItemThroughFilter_FirstMatchWins(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{
			Visibility: filter.Hide,
			Conditions: condition.Set{Conditions: []condition.Condition{
				rangeCond(condition.PropItemLevel, true, 80, true),
			}},
		},
		{
			Visibility: filter.Show,
			Conditions: condition.Set{}, // matches everything
		},
	}}

	it := &item.Item{ItemLevel: 85}
	result := PassItemThroughFilter(it, flt, 1)
	if result.Style.Visibility != filter.Hide {
		t.Fatalf("visibility = %v, want Hide", result.Style.Visibility)
	}
	if len(result.Trace) != 1 {
		t.Fatalf("trace length = %d, want 1 (matching stopped at first block)", len(result.Trace))
	}
}

func TestPassItemThroughFilter_ContinueChains(t *testing.T) {
	red := object.Color{R: 255}
	blue := object.Color{B: 255}
	flt := filter.Flat{Blocks: []filter.Block{
		{
			Visibility: filter.Show,
			Conditions: condition.Set{},
			Actions:    condition.Action{TextColor: &condition.ColorField{Value: red}},
			Continue:   filter.Continue{Present: true},
		},
		{
			Visibility: filter.Hide,
			Conditions: condition.Set{},
			Actions:    condition.Action{BorderColor: &condition.ColorField{Value: blue}},
		},
	}}

	result := PassItemThroughFilter(&item.Item{}, flt, 1)
	if result.Style.Visibility != filter.Hide {
		t.Fatalf("visibility = %v, want Hide (last visited block wins)", result.Style.Visibility)
	}
	if result.Style.Actions.TextColor == nil || result.Style.Actions.TextColor.Value != red {
		t.Errorf("TextColor not carried over from the continued block")
	}
	if result.Style.Actions.BorderColor == nil || result.Style.Actions.BorderColor.Value != blue {
		t.Errorf("BorderColor not set by the second block")
	}
	if len(result.Trace) != 2 {
		t.Fatalf("trace length = %d, want 2", len(result.Trace))
	}
	if !result.Trace[0].Continued {
		t.Errorf("first block trace should record Continued=true")
	}
}

func TestPassItemThroughFilter_NoMatchUsesCategoryDefault(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{
			Visibility: filter.Hide,
			Conditions: condition.Set{Conditions: []condition.Condition{
				rangeCond(condition.PropItemLevel, true, 80, true),
			}},
		},
	}}

	unique := &item.Item{Rarity: object.RarityUnique, ItemLevel: 1}
	result := PassItemThroughFilter(unique, flt, 1)
	if result.Style.Visibility != filter.Show {
		t.Errorf("visibility = %v, want Show (default, no block matched)", result.Style.Visibility)
	}
	if result.Style.Actions.TextColor == nil {
		t.Fatalf("expected category default text color for a unique item")
	}
	want := object.Color{R: 175, G: 96, B: 37}
	if got := result.Style.Actions.TextColor.Value; got != want {
		t.Errorf("TextColor = %+v, want %+v", got, want)
	}
}

func TestPassItemThroughFilter_ImportBlocksAreSkipped(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{Import: "shared.filter"},
		{Visibility: filter.Hide, Conditions: condition.Set{}},
	}}
	result := PassItemThroughFilter(&item.Item{}, flt, 1)
	if result.Style.Visibility != filter.Hide {
		t.Fatalf("visibility = %v, want Hide", result.Style.Visibility)
	}
	if len(result.Trace) != 1 {
		t.Fatalf("import block should not appear in the trace, got %d entries", len(result.Trace))
	}
}

func TestFilteringResult_StringRendersVisibilityAndTrace(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{Visibility: filter.Hide, Conditions: condition.Set{}},
	}}
	result := PassItemThroughFilter(&item.Item{}, flt, 1)
	out := result.String()
	for _, want := range []string{"Visibility: Hide", "Blocks visited: 1", "MATCH"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q, got:\n%s", want, out)
		}
	}
}

func TestCategoryDefaultStyle_MapBorderMirrorsText(t *testing.T) {
	mapItem := &item.Item{Class: "Maps", Rarity: object.RarityMagic}
	style := categoryDefaultStyle(mapItem)
	if style.Actions.BorderColor == nil || style.Actions.TextColor == nil {
		t.Fatalf("expected both border and text color on a magic map")
	}
	if style.Actions.BorderColor.Value != style.Actions.TextColor.Value {
		t.Errorf("map border color should mirror text color: %+v != %+v",
			style.Actions.BorderColor.Value, style.Actions.TextColor.Value)
	}
}
