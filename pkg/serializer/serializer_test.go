package serializer

import (
	"strings"
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/object"
)

func TestSerialize_EmptyPreambleOmitsHeader(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{Visibility: filter.Show},
	}}
	out := Serialize(flt, Preamble{})
	if strings.HasPrefix(out, "#") {
		t.Errorf("expected no preamble header, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "Show\n") {
		t.Errorf("expected output to start with Show block, got:\n%s", out)
	}
}

func TestSerialize_PreambleFields(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{{Visibility: filter.Hide}}}
	out := Serialize(flt, Preamble{
		Version:        "3.0",
		GenerationDate: "2026-07-30",
		PriceDataDate:  "2026-07-29",
		SourceTag:      "poe.ninja",
		LeagueName:     "Settlers",
	})
	for _, want := range []string{
		"# Generated by Filter Spirit 3.0",
		"# Generated on 2026-07-30",
		"# Price data downloaded 2026-07-29",
		"# Price data source: poe.ninja",
		"# League: Settlers",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSerialize_ImportBlock(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{{Import: "shared.filter"}}}
	out := Serialize(flt, Preamble{})
	if strings.TrimSpace(out) != "# import shared.filter" {
		t.Errorf("got %q, want a single import comment line", out)
	}
}

func TestSerialize_ActionLinesFixedOrder(t *testing.T) {
	act := condition.Action{
		BackgroundColor:  &condition.ColorField{Value: object.Color{R: 1, G: 2, B: 3}},
		BorderColor:      &condition.ColorField{Value: object.Color{R: 4, G: 5, B: 6}},
		TextColor:        &condition.ColorField{Value: object.Color{R: 7, G: 8, B: 9}},
		FontSize:         &condition.IntField{Value: 40},
		DisableDropSound: &condition.BoolField{Value: true},
	}
	flt := filter.Flat{Blocks: []filter.Block{{Visibility: filter.Show, Actions: act}}}
	out := Serialize(flt, Preamble{})

	order := []string{"SetBorderColor", "SetTextColor", "SetBackgroundColor", "SetFontSize", "DisableDropSound"}
	last := -1
	for _, kw := range order {
		idx := strings.Index(out, kw)
		if idx < 0 {
			t.Fatalf("missing action line %q in output:\n%s", kw, out)
		}
		if idx < last {
			t.Errorf("action line %q appears out of the expected fixed order in:\n%s", kw, out)
		}
		last = idx
	}
}

func TestSerialize_EnableDropSoundWhenFalse(t *testing.T) {
	act := condition.Action{DisableDropSound: &condition.BoolField{Value: false}}
	flt := filter.Flat{Blocks: []filter.Block{{Visibility: filter.Show, Actions: act}}}
	out := Serialize(flt, Preamble{})
	if !strings.Contains(out, "EnableDropSound") {
		t.Errorf("expected EnableDropSound line, got:\n%s", out)
	}
}

func TestSerialize_ContinueMarker(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{Visibility: filter.Show, Continue: filter.Continue{Present: true}},
	}}
	out := Serialize(flt, Preamble{})
	if !strings.Contains(out, "\tContinue\n") {
		t.Errorf("expected tab-indented Continue line, got:\n%q", out)
	}
}

func TestSerialize_InvalidConditionsOmitted(t *testing.T) {
	flt := filter.Flat{Blocks: []filter.Block{
		{
			Visibility: filter.Show,
			Conditions: condition.Set{Conditions: []condition.Condition{
				condition.StringMatch{Prop: condition.PropBaseType}, // no Values: invalid
			}},
		},
	}}
	out := Serialize(flt, Preamble{})
	if strings.Contains(out, "BaseType") {
		t.Errorf("invalid condition should be omitted from output, got:\n%s", out)
	}
}
