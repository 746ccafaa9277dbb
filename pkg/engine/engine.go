// Package engine implements the filter-matching pipeline of spec.md §4.6:
// given an item, a compiled flat filter, and the current area level, it
// deterministically finds the matching blocks (honoring `Continue`
// chaining), composes the resulting style, and records a full match
// trace. It performs no I/O, no RNG, and no memoization (spec.md §4.6
// "Determinism"), matching the teacher's own `DefaultValidator.Validate`
// shape: iterate an ordered rule set, accumulate a structured report, as
// a pure function of its inputs.
package engine

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// Style is the resolved display state an item receives: the visibility
// decision plus the composed action set (spec.md §3 "Resolved style").
type Style struct {
	Visibility filter.Visibility
	Actions    condition.Action
}

// BlockTrace records one visited block's outcome during matching (spec.md
// §3 "Filtering result ... every block visited, its per-condition
// results, and whether traversal continued").
type BlockTrace struct {
	BlockOrigin    position.Origin
	Matched        bool
	ConditionTrace []condition.MatchResult
	Continued      bool
	ContinueOrigin position.Origin
}

// FilteringResult is the full output of pass_item_through_filter (spec.md
// §3 "Filtering result"): the resolved style plus the ordered trace of
// every block visited.
type FilteringResult struct {
	Style Style
	Trace []BlockTrace
}

// PassItemThroughFilter implements spec.md §4.6's four-step algorithm.
func PassItemThroughFilter(it *item.Item, flt filter.Flat, areaLevel int) FilteringResult {
	result := FilteringResult{Style: categoryDefaultStyle(it)}

	for _, block := range flt.Blocks {
		if block.Import != "" {
			continue
		}

		matched, condResults := block.Conditions.TestAll(it, areaLevel)
		trace := BlockTrace{BlockOrigin: block.Origin, Matched: matched, ConditionTrace: condResults}

		if matched {
			result.Style.Visibility = block.Visibility
			result.Style.Actions = result.Style.Actions.MergeOver(block.Actions)

			if block.Continue.Present {
				trace.Continued = true
				trace.ContinueOrigin = block.Continue.Origin
				result.Trace = append(result.Trace, trace)
				continue
			}
			result.Trace = append(result.Trace, trace)
			break
		}

		result.Trace = append(result.Trace, trace)
	}

	return result
}

// String renders a human-readable per-block trace of a FilteringResult,
// for the filter-debug path (spec.md §1): every visited block's outcome,
// its per-condition successes, and whether traversal continued past it.
func (r FilteringResult) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Filtering Result ===\n\n")
	fmt.Fprintf(&b, "Visibility: %s\n", r.Style.Visibility)
	fmt.Fprintf(&b, "Blocks visited: %d\n\n", len(r.Trace))

	for i, bt := range r.Trace {
		status := "NO MATCH"
		if bt.Matched {
			status = "MATCH"
		}
		fmt.Fprintf(&b, "%d. [%s] block at %s\n", i+1, status, bt.BlockOrigin)
		for j, cr := range bt.ConditionTrace {
			condStatus := "fail"
			if cr.Success {
				condStatus = "ok"
			}
			fmt.Fprintf(&b, "     condition %d: %s (%s)\n", j+1, condStatus, cr.ConditionOrigin)
		}
		if bt.Continued {
			fmt.Fprintf(&b, "     continues to next block (%s)\n", bt.ContinueOrigin)
		}
	}

	return b.String()
}

// categoryDefaultStyle seeds the style a category receives before any
// block has matched (spec.md §4.6 step 1, and §4.7 "Action field-wise
// override": "the category default if none [block set that field]").
// Every item defaults to Show; categories with a conventional client
// color/visibility receive it here.
func categoryDefaultStyle(it *item.Item) Style {
	style := Style{Visibility: filter.Show}

	switch {
	case it.Rarity == object.RarityMagic:
		style.Actions.TextColor = &condition.ColorField{Value: object.Color{R: 136, G: 136, B: 255}}
	case it.Rarity == object.RarityRare:
		style.Actions.TextColor = &condition.ColorField{Value: object.Color{R: 255, G: 255, B: 119}}
	case it.Rarity == object.RarityUnique:
		style.Actions.TextColor = &condition.ColorField{Value: object.Color{R: 175, G: 96, B: 37}}
	}

	if it.Class == "Divination Card" {
		style.Actions.TextColor = &condition.ColorField{Value: object.Color{R: 14, G: 186, B: 155}}
	}
	if it.Class == "Maps" {
		if style.Actions.TextColor != nil {
			style.Actions.BorderColor = &condition.ColorField{Value: style.Actions.TextColor.Value}
		}
	}

	return style
}
