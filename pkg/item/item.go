// Package item defines the in-game drop model that the filter engine
// tests conditions against (spec.md §3 "Item").
package item

import "github.com/filter-spirit/filterspirit/pkg/object"

// SocketGroup is a maximal set of linked sockets on an item, each slot
// carrying the color installed in it (spec.md §3, §4.7).
type SocketGroup struct {
	Colors []object.SocketColor
}

// Len returns the number of sockets in the group.
func (g SocketGroup) Len() int { return len(g.Colors) }

// CountColor returns how many sockets in the group are color c.
func (g SocketGroup) CountColor(c object.SocketColor) int {
	n := 0
	for _, col := range g.Colors {
		if col == c {
			n++
		}
	}
	return n
}

// Item is the subset of a dropped item's state that filter conditions
// can observe (spec.md §3).
type Item struct {
	Class     string
	BaseType  string
	Rarity    object.Rarity
	ItemLevel int
	DropLevel int
	Quality   int
	Width     int
	Height    int

	StackSize *int
	GemLevel  *int
	MapTier   *int

	Sockets        []SocketGroup
	LinkedSockets  int // largest group size, computed from Sockets
	Identified     bool
	Corrupted      bool
	Mirrored      bool
	FracturedItem  bool
	SynthesisedItem bool
	ShapedMap      bool
	ElderMap       bool
	BlightedMap    bool
	UberBlightedMap bool
	Replica        bool

	Influences []object.Influence

	ExplicitMods    []string
	ImplicitMods    []string
	EnchantmentMods []string
	ArchnemesisMods []string

	EnchantmentLabel            string
	EnchantmentClusterJewelNode string

	Prophecy         bool
	TransfiguredGem  bool
	MemoryStrands    *int
	HasCrucibleTree  bool
	ZanaMemory       bool
	Scourged         bool
	AlternateQuality bool

	HasSearingExarchImplicit bool
	HasEaterOfWorldsImplicit bool

	BaseArmour          *int
	BaseEvasion         *int
	BaseEnergyShield    *int
	BaseWard            *int
	BaseDefencePercentile *int

	CorruptedMods *int
}

// ComputeLinkedSockets sets LinkedSockets to the size of the item's
// largest socket group, per spec.md §3 ("linked sockets (computed from
// socket layout)").
func (it *Item) ComputeLinkedSockets() {
	max := 0
	for _, g := range it.Sockets {
		if g.Len() > max {
			max = g.Len()
		}
	}
	it.LinkedSockets = max
}

// TotalSockets returns the item's total socket count across all groups.
func (it *Item) TotalSockets() int {
	n := 0
	for _, g := range it.Sockets {
		n += g.Len()
	}
	return n
}

// HasInfluence reports whether inf is present among the item's influences.
func (it *Item) HasInfluence(inf object.Influence) bool {
	for _, i := range it.Influences {
		if i == inf {
			return true
		}
	}
	return false
}
