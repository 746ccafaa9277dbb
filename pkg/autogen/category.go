// Package autogen implements binding-time autogeneration (spec.md §4.5):
// expanding a spirit block's closure against a live market snapshot into
// zero or more concrete flat blocks.
package autogen

import "github.com/filter-spirit/filterspirit/pkg/condition"

// Category describes one autogeneration category: its market-data key,
// the fixed item class(es) it produces, whether its items stack, and
// which other conditions are compatible alongside it (spec.md §4.4 step
// 3 "Verify every other condition in the block is compatible with the
// selected class(es)").
type Category struct {
	Name         string
	Classes      []string
	Stackable    bool
	IsGem        bool
	AllowedProps map[condition.Property]bool
}

// alwaysAllowed are conditions compatible with every autogen category
// regardless of item class, since they test item-wide state rather than
// a class-specific field.
var alwaysAllowed = map[condition.Property]bool{
	condition.PropIdentified: true, condition.PropCorrupted: true, condition.PropMirrored: true,
	condition.PropRarity: true, condition.PropAreaLevel: true,
}

// forbidden are conditions that collide with fields autogeneration
// itself sets (spec.md §4.4 "unrelated conditions produce
// autogen-forbidden-condition" — Class/BaseType are not unrelated, they
// are actively overwritten).
var forbidden = map[condition.Property]bool{
	condition.PropClass: true, condition.PropBaseType: true,
}

// Registry is the fixed set of autogeneration categories Filter Spirit
// knows about (spec.md §4.5 examples: "currency, shards, essences,
// fossils, oils", "divination cards, incubators, scarabs, tattoos", and
// the dedicated gem path).
var Registry = map[string]Category{
	"currency": {
		Name: "currency", Classes: []string{"Currency"}, Stackable: true,
		AllowedProps: map[condition.Property]bool{},
	},
	"fragments": {
		Name: "fragments", Classes: []string{"Map Fragments"}, Stackable: true,
		AllowedProps: map[condition.Property]bool{},
	},
	"essences": {
		Name: "essences", Classes: []string{"Currency"}, Stackable: true,
		AllowedProps: map[condition.Property]bool{},
	},
	"fossils": {
		Name: "fossils", Classes: []string{"Currency"}, Stackable: true,
		AllowedProps: map[condition.Property]bool{},
	},
	"oils": {
		Name: "oils", Classes: []string{"Currency"}, Stackable: true,
		AllowedProps: map[condition.Property]bool{},
	},
	"shards": {
		Name: "shards", Classes: []string{"Currency"}, Stackable: true,
		AllowedProps: map[condition.Property]bool{},
	},
	"scarabs": {
		Name: "scarabs", Classes: []string{"Scarabs"}, Stackable: false,
		AllowedProps: map[condition.Property]bool{},
	},
	"divination": {
		Name: "divination", Classes: []string{"Divination Card"}, Stackable: false,
		AllowedProps: map[condition.Property]bool{},
	},
	"incubators": {
		Name: "incubators", Classes: []string{"Incubator"}, Stackable: false,
		AllowedProps: map[condition.Property]bool{},
	},
	"tattoos": {
		Name: "tattoos", Classes: []string{"Tattoos"}, Stackable: false,
		AllowedProps: map[condition.Property]bool{},
	},
	"gems": {
		Name: "gems", Classes: []string{"Gems active", "Gems support"}, IsGem: true,
		AllowedProps: map[condition.Property]bool{condition.PropCorrupted: true},
	},
}

// CategoryByName resolves an autogen category keyword.
func CategoryByName(name string) (Category, bool) {
	c, ok := Registry[name]
	return c, ok
}

// Compatibility classifies prop against category (spec.md §4.4 step 3).
type Compatibility int

const (
	CompatOK Compatibility = iota
	CompatForbidden
	CompatIncompatible
)

// Check classifies one non-price, non-autogen condition property.
func (c Category) Check(prop condition.Property) Compatibility {
	if forbidden[prop] {
		return CompatForbidden
	}
	if alwaysAllowed[prop] || c.AllowedProps[prop] {
		return CompatOK
	}
	return CompatIncompatible
}
