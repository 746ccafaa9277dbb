package autogen

import (
	"math"
	"sort"

	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/market"
)

// Generator returns the binding-time closure for category over template,
// dispatching to the stackable, simple, or gem expansion rule (spec.md
// §4.5). template already carries the visibility, inherited actions,
// continue marker, and every non-price, compatible condition validated
// by the compiler — every generated block augments a copy of it with the
// category's own Class/BaseType/(StackSize|GemLevel/Quality/Corrupted)
// conditions.
func Generator(cat Category, pr condition.PriceRange, template filter.Block) filter.Generator {
	switch {
	case cat.IsGem:
		return func(snapshot market.Snapshot) ([]filter.Block, error) { return gemBlocks(cat, pr, template, snapshot) }
	case cat.Stackable:
		return func(snapshot market.Snapshot) ([]filter.Block, error) { return stackableBlocks(cat, pr, template, snapshot) }
	default:
		return func(snapshot market.Snapshot) ([]filter.Block, error) { return simpleBlocks(cat, pr, template, snapshot) }
	}
}

type stackEntry struct {
	name      string
	amountMin int
	hasMin    bool
	amountMax int
	hasMax    bool
}

// stackableBlocks implements spec.md §4.5 "Stackable item autogen": per
// entry amount-bound computation, sort by (amount_min, amount_max), then
// group contiguous entries sharing identical bounds into one block each.
func stackableBlocks(cat Category, pr condition.PriceRange, template filter.Block, snapshot market.Snapshot) ([]filter.Block, error) {
	lo, hasLo, hi, hasHi := pr.Bounds()

	var eligible []stackEntry
	for _, e := range snapshot.Category(cat.Name) {
		if e.ChaosValue <= 0 {
			continue
		}
		se := stackEntry{name: e.Name}
		if hasLo {
			amountMin := int(math.Ceil(lo / e.ChaosValue))
			if e.MaxStackSize > 0 && amountMin > e.MaxStackSize {
				continue
			}
			se.amountMin, se.hasMin = amountMin, true
		}
		if hasHi {
			amountMax := int(math.Floor(hi / e.ChaosValue))
			if amountMax == 0 {
				continue
			}
			se.amountMax, se.hasMax = amountMax, true
		}
		eligible = append(eligible, se)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.hasMin != b.hasMin {
			return !a.hasMin // "no bound" sorts first
		}
		if a.hasMin && a.amountMin != b.amountMin {
			return a.amountMin < b.amountMin
		}
		if a.hasMax != b.hasMax {
			return !a.hasMax
		}
		return a.amountMax < b.amountMax
	})

	var out []filter.Block
	i := 0
	for i < len(eligible) {
		j := i + 1
		for j < len(eligible) && sameBounds(eligible[i], eligible[j]) {
			j++
		}
		group := eligible[i:j]
		names := make([]string, len(group))
		for k, g := range group {
			names[k] = g.name
		}
		out = append(out, buildBlock(cat, template, names, group[0].hasMin, group[0].amountMin, group[0].hasMax, group[0].amountMax, 0, 0, false, false))
		i = j
	}
	return out, nil
}

func sameBounds(a, b stackEntry) bool {
	return a.hasMin == b.hasMin && a.amountMin == b.amountMin && a.hasMax == b.hasMax && a.amountMax == b.amountMax
}

// simpleBlocks implements spec.md §4.5 "Simple item autogen": a single
// block naming every in-range, non-low-confidence entry.
func simpleBlocks(cat Category, pr condition.PriceRange, template filter.Block, snapshot market.Snapshot) ([]filter.Block, error) {
	lo, hasLo, hi, hasHi := pr.Bounds()

	var names []string
	for _, e := range snapshot.Category(cat.Name) {
		if e.IsLowConfidence {
			continue
		}
		if hasLo && e.ChaosValue < lo {
			continue
		}
		if hasHi && e.ChaosValue > hi {
			continue
		}
		names = append(names, e.Name)
	}
	if len(names) == 0 {
		return nil, nil
	}
	return []filter.Block{buildBlock(cat, template, names, false, 0, false, 0, 0, 0, false, false)}, nil
}

// Game-defined gem level/quality ranges (spec.md §4.5 "Gem autogen").
const (
	maxGemLevel         = 21
	maxAwakenedGemLevel = 40
	maxGemQuality       = 23
)

// gemBlocks implements spec.md §4.5 "Gem autogen": one block per
// (level, quality, is_corrupted) triple that has at least one matching
// market entry.
func gemBlocks(cat Category, pr condition.PriceRange, template filter.Block, snapshot market.Snapshot) ([]filter.Block, error) {
	lo, hasLo, hi, hasHi := pr.Bounds()

	byTriple := map[[3]int][]string{}
	for _, g := range snapshot.Gems {
		if hasLo && g.ChaosValue < lo {
			continue
		}
		if hasHi && g.ChaosValue > hi {
			continue
		}
		corrupted := 0
		if g.IsCorrupted {
			corrupted = 1
		}
		key := [3]int{g.Level, g.Quality, corrupted}
		byTriple[key] = append(byTriple[key], g.Name)
	}

	maxLevel := maxGemLevel
	if hasAwakenedCandidate(snapshot) {
		maxLevel = maxAwakenedGemLevel
	}

	var out []filter.Block
	for level := 1; level <= maxLevel; level++ {
		for quality := 0; quality <= maxGemQuality; quality++ {
			for _, corruptedInt := range [2]int{0, 1} {
				names := byTriple[[3]int{level, quality, corruptedInt}]
				if len(names) == 0 {
					continue
				}
				out = append(out, buildBlock(cat, template, names, false, 0, false, 0, level, quality, true, corruptedInt == 1))
			}
		}
	}
	return out, nil
}

func hasAwakenedCandidate(snapshot market.Snapshot) bool {
	for _, g := range snapshot.Gems {
		if g.Level > maxGemLevel {
			return true
		}
	}
	return false
}

// buildBlock augments a copy of template with the category's fixed
// Class, the BaseType list, and whichever numeric conditions this
// autogen kind contributes (spec.md §4.5).
func buildBlock(cat Category, template filter.Block, names []string, hasMin bool, amountMin int, hasMax bool, amountMax int, gemLevel, gemQuality int, isGem, corrupted bool) filter.Block {
	block := template
	block.Conditions = template.Conditions.
		Append(condition.StringMatch{Prop: condition.PropClass, Exact: true, Values: cat.Classes}).
		Append(condition.StringMatch{Prop: condition.PropBaseType, Exact: true, Values: names})

	if hasMin {
		block.Conditions = block.Conditions.Append(condition.Range{Prop: condition.PropStackSize, Lower: true, Value: float64(amountMin), Inclusive: true})
	}
	if hasMax {
		block.Conditions = block.Conditions.Append(condition.Range{Prop: condition.PropStackSize, Lower: false, Value: float64(amountMax), Inclusive: true})
	}
	if isGem {
		block.Conditions = block.Conditions.
			Append(condition.Range{Prop: condition.PropGemLevel, Lower: true, Value: float64(gemLevel), Inclusive: true}).
			Append(condition.Range{Prop: condition.PropGemLevel, Lower: false, Value: float64(gemLevel), Inclusive: true}).
			Append(condition.Range{Prop: condition.PropQuality, Lower: true, Value: float64(gemQuality), Inclusive: true}).
			Append(condition.Range{Prop: condition.PropQuality, Lower: false, Value: float64(gemQuality), Inclusive: true}).
			Append(condition.Boolean{Prop: condition.PropCorrupted, Expected: corrupted})
	}
	return block
}
