package filterspirit

import (
	"strings"
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/market"
	"github.com/filter-spirit/filterspirit/pkg/object"
)

const sampleSF = `
$mainColor = 255 0 0

Rarity Unique {
	SetTextColor $mainColor
	Show
}

Class "Life Flasks" {
	ItemLevel >= 60 {
		Hide
	}
}
`

func TestCompileSF_NoDiagnostics(t *testing.T) {
	compiled, err := CompileSF(sampleSF, Config{})
	if err != nil {
		t.Fatalf("CompileSF() failed: %v", err)
	}
	if compiled.Diags.HasErrors() {
		t.Fatalf("CompileSF() produced errors: %v", compiled.Diags.Messages)
	}
	if len(compiled.Filter.Blocks) != 2 {
		t.Fatalf("compiled spirit filter has %d blocks, want 2", len(compiled.Filter.Blocks))
	}
}

func TestCompileSF_BindAndMatch(t *testing.T) {
	compiled, err := CompileSF(sampleSF, Config{})
	if err != nil {
		t.Fatalf("CompileSF() failed: %v", err)
	}
	if compiled.Diags.HasErrors() {
		t.Fatalf("CompileSF() produced errors: %v", compiled.Diags.Messages)
	}

	flat, err := Bind(compiled, market.Snapshot{})
	if err != nil {
		t.Fatalf("Bind() failed: %v", err)
	}

	uniqueRing := &item.Item{Class: "Rings", BaseType: "Two-Stone Ring", Rarity: object.RarityUnique}
	result := Match(uniqueRing, flat, 1)
	if result.Style.Visibility != filter.Show {
		t.Errorf("visibility = %v, want Show", result.Style.Visibility)
	}
	if result.Style.Actions.TextColor == nil {
		t.Fatalf("expected TextColor to be set")
	}
	if got := result.Style.Actions.TextColor.Value; got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("TextColor = %+v, want {255 0 0}", got)
	}

	oldFlask := &item.Item{Class: "Life Flasks", BaseType: "Small Life Flask", Rarity: object.RarityNormal, ItemLevel: 70}
	flaskResult := Match(oldFlask, flat, 1)
	if flaskResult.Style.Visibility != filter.Hide {
		t.Errorf("visibility = %v, want Hide", flaskResult.Style.Visibility)
	}
}

func TestSerialize_RoundTripsThroughRF(t *testing.T) {
	compiled, err := CompileSF(sampleSF, Config{})
	if err != nil {
		t.Fatalf("CompileSF() failed: %v", err)
	}
	flat, err := Bind(compiled, market.Snapshot{})
	if err != nil {
		t.Fatalf("Bind() failed: %v", err)
	}

	out := Serialize(flat, Config{Version: "3.0", LeagueName: "Settlers"})
	if !strings.Contains(out, "Show") {
		t.Errorf("serialized output missing Show block:\n%s", out)
	}
	if !strings.Contains(out, "# League: Settlers") {
		t.Errorf("serialized output missing preamble league line:\n%s", out)
	}

	rfFlat, diags, err := ParseRFAndCompile(out)
	if err != nil {
		t.Fatalf("ParseRFAndCompile() failed: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("ParseRFAndCompile() produced errors: %v", diags.Messages)
	}
	if len(rfFlat.Blocks) != len(flat.Blocks) {
		t.Errorf("round-tripped block count = %d, want %d", len(rfFlat.Blocks), len(flat.Blocks))
	}
}

func TestCompileSF_ParseFailureReturnsError(t *testing.T) {
	_, err := CompileSF("Rarity ===", Config{})
	if err == nil {
		t.Fatal("CompileSF() succeeded, want parse error")
	}
}
