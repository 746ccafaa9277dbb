package filterspirit

import (
	"fmt"

	"github.com/filter-spirit/filterspirit/pkg/compiler"
	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/engine"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/item"
	"github.com/filter-spirit/filterspirit/pkg/market"
	"github.com/filter-spirit/filterspirit/pkg/parser"
	"github.com/filter-spirit/filterspirit/pkg/serializer"
)

// CompiledSF is the result of compiling SF source: the unbound spirit
// filter plus every diagnostic collected along the way (spec.md §2
// "Control flow": parse, resolve, compile, [bind], serialize).
type CompiledSF struct {
	Filter filter.SpiritFilter
	Diags  *diagnostics.Bag
}

// CompileSF runs the full SF pipeline (spec.md §4.1-§4.4): parse,
// resolve symbols, and lower statements into a spirit filter. Any
// autogeneration directives in src remain unbound `filter.Generator`
// closures until Bind runs against a market.Snapshot.
func CompileSF(src string, cfg Config) (CompiledSF, error) {
	result, err := parser.ParseSF(src)
	if err != nil {
		return CompiledSF{}, fmt.Errorf("parsing SF source: %w", err)
	}

	settings := compiler.Settings{
		RuthlessMode:          cfg.RuthlessMode,
		StopOnError:           cfg.StopOnError,
		TreatWarningsAsErrors: cfg.TreatWarningsAsErrors,
	}

	table, diags := compiler.ResolveSymbols(result.File.Definitions, settings)
	if settings.StopOnError && diags.HasErrors() {
		return CompiledSF{Diags: diags}, nil
	}

	spiritFilter, compileDiags := compiler.Compile(result.File.Statements, table, settings)
	diags.Messages = append(diags.Messages, compileDiags.Messages...)

	return CompiledSF{Filter: spiritFilter, Diags: diags}, nil
}

// ParseRFAndCompile runs the full RF pipeline (spec.md §4.1, §8
// "Round-trip for native filters"): parse native syntax and lower it
// straight into a flat filter. RF carries no names and no
// autogeneration, so the result is already bound.
func ParseRFAndCompile(src string) (filter.Flat, *diagnostics.Bag, error) {
	result, err := parser.ParseRF(src)
	if err != nil {
		return filter.Flat{}, nil, fmt.Errorf("parsing RF source: %w", err)
	}
	flat, diags := compiler.CompileRF(result.File)
	return flat, diags, nil
}

// Bind resolves every autogeneration directive in a compiled spirit
// filter against snapshot, producing a flat filter ready for matching
// or serialization (spec.md §4.5 "Autogeneration binds ... against a
// market data snapshot").
func Bind(compiled CompiledSF, snapshot market.Snapshot) (filter.Flat, error) {
	if err := snapshot.Validate(); err != nil {
		return filter.Flat{}, fmt.Errorf("invalid market snapshot: %w", err)
	}
	return compiled.Filter.Bind(snapshot)
}

// Match runs one item through a bound flat filter at the given area
// level (spec.md §4.6 "pass_item_through_filter").
func Match(it *item.Item, flt filter.Flat, areaLevel int) engine.FilteringResult {
	return engine.PassItemThroughFilter(it, flt, areaLevel)
}

// Serialize renders a bound flat filter to bit-exact native syntax,
// with the Config's metadata fields forming the preamble (spec.md §6
// "Preamble").
func Serialize(flt filter.Flat, cfg Config) string {
	return serializer.Serialize(flt, serializer.Preamble{
		Version:          cfg.Version,
		SourceTag:        cfg.SourceTag,
		LeagueName:       cfg.LeagueName,
		AttributionLines: cfg.AttributionLines,
	})
}
