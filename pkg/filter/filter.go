// Package filter defines the block-level data model that the compiler
// produces, autogeneration expands, the engine applies, and the
// serializer prints: flat blocks, spirit blocks (flat blocks still
// carrying an autogeneration closure), and the two filters built from
// them (spec.md §3 "Item filter block", "Flat filter", "Spirit filter
// block", "Spirit filter").
package filter

import (
	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/market"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// Visibility is the block-level show/hide/minimal decision (spec.md §3).
type Visibility int

const (
	Show Visibility = iota
	Hide
	Minimal
)

func (v Visibility) String() string {
	switch v {
	case Show:
		return "Show"
	case Hide:
		return "Hide"
	case Minimal:
		return "Minimal"
	default:
		return "Show"
	}
}

// Continue marks a block as chaining into the next one when it matches
// (spec.md §3 "continue marker (with origin if present)").
type Continue struct {
	Present bool
	Origin  position.Origin
}

// Block is a single flat, directly-serializable filter rule (spec.md §3
// "Item filter block"): a visibility, a condition set, an action set,
// and an optional Continue marker. No nesting, no names, no expressions
// — by the time a Block exists, everything has already been resolved.
type Block struct {
	Visibility Visibility
	Conditions condition.Set
	Actions    condition.Action
	Continue   Continue
	Origin     position.Origin

	// Import, when non-empty, marks this Block as an import directive
	// rather than a rule (spec.md §4.4 "Import statement").
	Import string
}

// IsValid reports whether every condition in the block is individually
// valid (spec.md §8 "Condition validity": "Invalid conditions ... cause
// their block to be silently discarded").
func (b Block) IsValid() bool {
	if b.Import != "" {
		return true
	}
	return b.Conditions.Valid()
}

// Flat is an ordered, fully-resolved sequence of blocks, ready for the
// engine and the serializer (spec.md §3 "Flat filter").
type Flat struct {
	Blocks []Block
}

// Generator synthesizes zero or more flat Blocks from a block template
// and a live market snapshot at bind time (spec.md §4.5). Autogeneration
// closures hold a handle to the block template and may be invoked
// repeatedly against different snapshots (spec.md §5).
type Generator func(snapshot market.Snapshot) ([]Block, error)

// Spirit is a flat Block plus an optional autogeneration extension: a
// price-range condition, the autogeneration category name, and a
// generator closure invoked at bind time (spec.md §3 "Spirit filter
// block").
type Spirit struct {
	Block      Block
	HasAutogen bool
	PriceRange condition.PriceRange
	Category   string
	Generate   Generator
}

// SpiritFilter is an ordered sequence of Spirit blocks, still containing
// unbound autogeneration closures (spec.md §3 "Spirit filter").
type SpiritFilter struct {
	Blocks []Spirit
}

// Bind expands every Spirit block against snapshot, producing a Flat
// filter in source order (spec.md §5 "block emission order strictly
// matches source order"). Blocks whose generated result is empty, or
// whose own conditions are invalid, are silently dropped (spec.md §4.5
// "the block is therefore discarded by is_valid()").
func (sf SpiritFilter) Bind(snapshot market.Snapshot) (Flat, error) {
	var out Flat
	for _, sb := range sf.Blocks {
		if !sb.HasAutogen {
			if sb.Block.IsValid() {
				out.Blocks = append(out.Blocks, sb.Block)
			}
			continue
		}
		generated, err := sb.Generate(snapshot)
		if err != nil {
			return Flat{}, err
		}
		for _, b := range generated {
			if b.IsValid() {
				out.Blocks = append(out.Blocks, b)
			}
		}
	}
	return out, nil
}
