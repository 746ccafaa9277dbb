// Package market defines the immutable market-data snapshot contract
// that the compiler and autogeneration consume (spec.md §6 "Market data
// collaborator interface (consumed)"). Fetching live prices over the
// network and persisting a local cache are external collaborators
// (spec.md §1 "Out of scope"); this package only models the data shape
// and its validation once a snapshot has been obtained.
package market

import "fmt"

// Entry is one priced market-data row for a stackable or simple
// autogeneration category (spec.md §6): a BaseType name, its unit price
// in chaos-equivalent value, its known maximum stack size (0 when the
// category is unstackable), and whether the feed flags it as a
// low-confidence sample (spec.md §4.5 "Low-confidence entry").
type Entry struct {
	Name            string
	ChaosValue      float64
	MaxStackSize    int
	IsLowConfidence bool
}

// GemEntry is one priced market-data row for a specific gem variant at a
// given level/quality/corruption triple (spec.md §4.5 "Gem autogen").
type GemEntry struct {
	Name        string
	Level       int
	Quality     int
	IsCorrupted bool
	ChaosValue  float64
}

// Snapshot is the immutable market-data view the compiler binds against.
// A Snapshot is built once and never mutated afterward (spec.md §5
// "immutable for the duration of a compilation").
type Snapshot struct {
	// Categories maps an autogeneration category name (e.g. "currency",
	// "fragments", "scarabs") to its priced entries.
	Categories map[string][]Entry
	// Gems holds every gem variant's pricing, independent of category.
	Gems []GemEntry

	// LeagueName, DownloadDate, and SourceTag feed the serializer's
	// preamble (spec.md §6 "Preamble").
	LeagueName   string
	DownloadDate string
	SourceTag    string
}

// Validate rejects a Snapshot with duplicate entries within a category or
// duplicate gem variants, and negative prices, which would otherwise
// silently corrupt autogeneration's sort-and-group step (spec.md §4.5).
func (s Snapshot) Validate() error {
	for category, entries := range s.Categories {
		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			if seen[e.Name] {
				return fmt.Errorf("market snapshot: duplicate entry %q in category %q", e.Name, category)
			}
			seen[e.Name] = true
			if e.ChaosValue < 0 {
				return fmt.Errorf("market snapshot: entry %q in category %q has negative chaos value %g", e.Name, category, e.ChaosValue)
			}
		}
	}
	type gemKey struct {
		name        string
		level       int
		quality     int
		isCorrupted bool
	}
	seenGems := make(map[gemKey]bool, len(s.Gems))
	for _, g := range s.Gems {
		k := gemKey{g.Name, g.Level, g.Quality, g.IsCorrupted}
		if seenGems[k] {
			return fmt.Errorf("market snapshot: duplicate gem entry %q at level=%d quality=%d corrupted=%v", g.Name, g.Level, g.Quality, g.IsCorrupted)
		}
		seenGems[k] = true
		if g.ChaosValue < 0 {
			return fmt.Errorf("market snapshot: gem %q has negative chaos value %g", g.Name, g.ChaosValue)
		}
	}
	return nil
}

// Category returns the priced entries for name, or nil if the category
// is absent from the snapshot.
func (s Snapshot) Category(name string) []Entry {
	return s.Categories[name]
}
