package autogen

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/market"
)

func priceRange(lo, hi *float64) condition.PriceRange {
	var pr condition.PriceRange
	if lo != nil {
		pr.Lower = &condition.Range{Prop: condition.PropPrice, Lower: true, Value: *lo, Inclusive: true}
	}
	if hi != nil {
		pr.Upper = &condition.Range{Prop: condition.PropPrice, Lower: false, Value: *hi, Inclusive: true}
	}
	return pr
}

func f(v float64) *float64 { return &v }

func TestStackableBlocks_GroupsByIdenticalBounds(t *testing.T) {
	snapshot := market.Snapshot{Categories: map[string][]market.Entry{
		"currency": {
			{Name: "Orb of Alteration", ChaosValue: 0.1, MaxStackSize: 1000},
			{Name: "Orb of Chance", ChaosValue: 0.05, MaxStackSize: 1000},
			{Name: "Exalted Orb", ChaosValue: 50, MaxStackSize: 1000},
		},
	}}

	cat := Registry["currency"]
	pr := priceRange(f(1), nil) // Price >= 1

	blocks, err := stackableBlocks(cat, pr, filter.Block{Visibility: filter.Show}, snapshot)
	if err != nil {
		t.Fatalf("stackableBlocks() failed: %v", err)
	}
	// Alteration: ceil(1/0.1)=10, Chance: ceil(1/0.05)=20, Exalted: ceil(1/50)=1 — three distinct bounds.
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3 distinct stack-amount groups", len(blocks))
	}
}

func TestStackableBlocks_RejectsOverMaxStackSize(t *testing.T) {
	snapshot := market.Snapshot{Categories: map[string][]market.Entry{
		"currency": {
			{Name: "Orb of Alteration", ChaosValue: 0.001, MaxStackSize: 40}, // ceil(10/0.001) way over 40
		},
	}}
	cat := Registry["currency"]
	pr := priceRange(f(10), nil)

	blocks, err := stackableBlocks(cat, pr, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("stackableBlocks() failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("expected the entry to be rejected for exceeding max stack size, got %d blocks", len(blocks))
	}
}

func TestStackableBlocks_RejectsZeroUpperBound(t *testing.T) {
	snapshot := market.Snapshot{Categories: map[string][]market.Entry{
		"currency": {
			{Name: "Exalted Orb", ChaosValue: 50, MaxStackSize: 10},
		},
	}}
	cat := Registry["currency"]
	pr := priceRange(nil, f(10)) // floor(10/50) = 0

	blocks, err := stackableBlocks(cat, pr, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("stackableBlocks() failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("expected zero-amount_max entries to be dropped, got %d blocks", len(blocks))
	}
}

func TestStackableBlocks_NoBoundSortsFirst(t *testing.T) {
	snapshot := market.Snapshot{Categories: map[string][]market.Entry{
		"currency": {
			{Name: "Chaos Orb", ChaosValue: 1, MaxStackSize: 10},
			{Name: "Exalted Orb", ChaosValue: 50, MaxStackSize: 10},
		},
	}}
	cat := Registry["currency"]
	blocks, err := stackableBlocks(cat, condition.PriceRange{}, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("stackableBlocks() failed: %v", err)
	}
	// No price bound at all: both entries have no amount bounds and group into one block.
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (both entries share the unbounded group)", len(blocks))
	}
}

func TestSimpleBlocks_DropsLowConfidenceAndOutOfRange(t *testing.T) {
	snapshot := market.Snapshot{Categories: map[string][]market.Entry{
		"divination": {
			{Name: "The Doctor", ChaosValue: 500},
			{Name: "Rain of Chaos", ChaosValue: 1, IsLowConfidence: true},
			{Name: "The Nurse", ChaosValue: 2},
		},
	}}
	cat := Registry["divination"]
	pr := priceRange(f(10), nil)

	blocks, err := simpleBlocks(cat, pr, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("simpleBlocks() failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	basetype := findStringMatch(t, blocks[0].Conditions, condition.PropBaseType)
	if len(basetype.Values) != 1 || basetype.Values[0] != "The Doctor" {
		t.Errorf("BaseType values = %v, want just [The Doctor]", basetype.Values)
	}
}

func TestSimpleBlocks_EmptyResultProducesNoBlock(t *testing.T) {
	cat := Registry["divination"]
	blocks, err := simpleBlocks(cat, condition.PriceRange{}, filter.Block{}, market.Snapshot{})
	if err != nil {
		t.Fatalf("simpleBlocks() failed: %v", err)
	}
	if blocks != nil {
		t.Errorf("expected no blocks for an empty snapshot, got %v", blocks)
	}
}

func TestGemBlocks_OnePerTriple(t *testing.T) {
	snapshot := market.Snapshot{Gems: []market.GemEntry{
		{Name: "Awakened Fire Penetration Support", Level: 1, Quality: 0, ChaosValue: 5},
		{Name: "Awakened Fire Penetration Support", Level: 1, Quality: 0, IsCorrupted: true, ChaosValue: 8},
		{Name: "Awakened Fire Penetration Support", Level: 5, Quality: 0, ChaosValue: 20},
	}}
	cat := Registry["gems"]
	blocks, err := gemBlocks(cat, condition.PriceRange{}, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("gemBlocks() failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3 distinct (level,quality,corrupted) triples", len(blocks))
	}
}

func TestGemBlocks_AwakenedLevelExtendsRange(t *testing.T) {
	snapshot := market.Snapshot{Gems: []market.GemEntry{
		{Name: "Awakened Fire Penetration Support", Level: 5, Quality: 0, ChaosValue: 20},
		{Name: "Awakened Fire Penetration Support", Level: 40, Quality: 0, ChaosValue: 300},
	}}
	cat := Registry["gems"]
	blocks, err := gemBlocks(cat, condition.PriceRange{}, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("gemBlocks() failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 (including the level-40 awakened entry)", len(blocks))
	}
}

func TestGemBlocks_PriceFiltersEntries(t *testing.T) {
	snapshot := market.Snapshot{Gems: []market.GemEntry{
		{Name: "Cheap Gem", Level: 1, Quality: 0, ChaosValue: 1},
		{Name: "Expensive Gem", Level: 1, Quality: 0, ChaosValue: 100},
	}}
	cat := Registry["gems"]
	pr := priceRange(f(10), nil)
	blocks, err := gemBlocks(cat, pr, filter.Block{}, snapshot)
	if err != nil {
		t.Fatalf("gemBlocks() failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (only the expensive entry clears the price bound)", len(blocks))
	}
	basetype := findStringMatch(t, blocks[0].Conditions, condition.PropBaseType)
	if len(basetype.Values) != 1 || basetype.Values[0] != "Expensive Gem" {
		t.Errorf("BaseType values = %v, want just [Expensive Gem]", basetype.Values)
	}
}

func findStringMatch(t *testing.T, set condition.Set, prop condition.Property) condition.StringMatch {
	t.Helper()
	for _, c := range set.Conditions {
		if sm, ok := c.(condition.StringMatch); ok && sm.Prop == prop {
			return sm
		}
	}
	t.Fatalf("no StringMatch condition found for property %v", prop)
	return condition.StringMatch{}
}
