package condition

import (
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
)

// ColorField, IntField, SoundField, MinimapField, and BeamField each pair
// an action value with the origin where it was set (spec.md §3 "Action
// set ... Each optional field carries its origin").
type ColorField struct {
	Value  object.Color
	Origin position.Origin
}

type IntField struct {
	Value  int
	Origin position.Origin
}

type SoundField struct {
	Value  object.AlertSound
	Origin position.Origin
}

type MinimapField struct {
	Value  object.MinimapIcon
	Origin position.Origin
}

type BeamField struct {
	Value  object.BeamEffect
	Origin position.Origin
}

type BoolField struct {
	Value  bool
	Origin position.Origin
}

// Action is the optional-field action set of spec.md §3. Fields compose
// by later-overrides-earlier on a per-field basis (spec.md §4.6 "Action
// field-wise override").
type Action struct {
	BorderColor      *ColorField
	TextColor        *ColorField
	BackgroundColor  *ColorField
	FontSize         *IntField
	AlertSound       *SoundField
	DisableDropSound *BoolField
	MinimapIcon      *MinimapField
	BeamEffect       *BeamField
}

// MergeOver returns a new Action where every field set in override takes
// precedence over the corresponding field in a, and every field left
// unset in override falls back to a's value (spec.md §4.4 "inherited_
// actions: the growing action set, overridden field-wise by inner
// actions").
func (a Action) MergeOver(override Action) Action {
	out := a
	if override.BorderColor != nil {
		out.BorderColor = override.BorderColor
	}
	if override.TextColor != nil {
		out.TextColor = override.TextColor
	}
	if override.BackgroundColor != nil {
		out.BackgroundColor = override.BackgroundColor
	}
	if override.FontSize != nil {
		out.FontSize = override.FontSize
	}
	if override.AlertSound != nil {
		out.AlertSound = override.AlertSound
	}
	if override.DisableDropSound != nil {
		out.DisableDropSound = override.DisableDropSound
	}
	if override.MinimapIcon != nil {
		out.MinimapIcon = override.MinimapIcon
	}
	if override.BeamEffect != nil {
		out.BeamEffect = override.BeamEffect
	}
	return out
}
