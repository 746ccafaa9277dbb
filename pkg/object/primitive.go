// Package object implements the primitive value model shared by the
// parser, evaluator, condition model, and engine: scalars, enums, and
// homogeneous arrays, each carrying the source Origin it was produced
// from (spec.md §3 "Primitive object").
package object

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/position"
)

// Kind identifies which primitive variant a Primitive holds.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindFractional
	KindString
	KindRarity
	KindShape
	KindSuit
	KindInfluence
	KindSocketColor
	KindSocketSpec
	KindColor
	KindMinimapIcon
	KindBeamEffect
	KindFontSize
	KindSoundID
	KindVolume
	KindLevel
	KindAlertSound
	KindShaperVoiceLine
	KindGemQualityType
)

// String returns the diagnostic name of a Kind, e.g. for type-mismatch
// messages (spec.md §4.3).
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFractional:
		return "fractional"
	case KindString:
		return "string"
	case KindRarity:
		return "rarity"
	case KindShape:
		return "shape"
	case KindSuit:
		return "suit"
	case KindInfluence:
		return "influence"
	case KindSocketColor:
		return "socket-color"
	case KindSocketSpec:
		return "socket-spec"
	case KindColor:
		return "color"
	case KindMinimapIcon:
		return "minimap-icon"
	case KindBeamEffect:
		return "beam-effect"
	case KindFontSize:
		return "font-size"
	case KindSoundID:
		return "sound-id"
	case KindVolume:
		return "volume"
	case KindLevel:
		return "level"
	case KindAlertSound:
		return "alert-sound"
	case KindShaperVoiceLine:
		return "shaper-voice-line"
	case KindGemQualityType:
		return "gem-quality-type"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Rarity enumerates item rarities (spec.md §3).
type Rarity int

const (
	RarityNormal Rarity = iota
	RarityMagic
	RarityRare
	RarityUnique
)

func (r Rarity) String() string {
	switch r {
	case RarityNormal:
		return "Normal"
	case RarityMagic:
		return "Magic"
	case RarityRare:
		return "Rare"
	case RarityUnique:
		return "Unique"
	default:
		return fmt.Sprintf("Unknown(%d)", r)
	}
}

// Shape enumerates minimap icon shapes (spec.md §3).
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeDiamond
	ShapeHexagon
	ShapeSquare
	ShapeStar
	ShapeTriangle
	ShapeCross
	ShapeMoon
	ShapeRaindrop
	ShapeKite
	ShapePentagon
	ShapeUpsideDownHouse
)

func (s Shape) String() string {
	names := [...]string{
		"Circle", "Diamond", "Hexagon", "Square", "Star", "Triangle",
		"Cross", "Moon", "Raindrop", "Kite", "Pentagon", "UpsideDownHouse",
	}
	if int(s) < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Unknown(%d)", s)
	}
	return names[s]
}

// Suit enumerates the color families used by minimap icons, beam
// effects, and socket colors (spec.md §3).
type Suit int

const (
	SuitRed Suit = iota
	SuitGreen
	SuitBlue
	SuitBrown
	SuitWhite
	SuitYellow
	SuitCyan
	SuitGrey
	SuitOrange
	SuitPink
	SuitPurple
)

func (s Suit) String() string {
	names := [...]string{
		"Red", "Green", "Blue", "Brown", "White", "Yellow", "Cyan", "Grey",
		"Orange", "Pink", "Purple",
	}
	if int(s) < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Unknown(%d)", s)
	}
	return names[s]
}

// Influence enumerates the binary item-influence tags (spec.md §3).
type Influence int

const (
	InfluenceNone Influence = iota
	InfluenceShaper
	InfluenceElder
	InfluenceCrusader
	InfluenceRedeemer
	InfluenceHunter
	InfluenceWarlord
)

func (i Influence) String() string {
	names := [...]string{
		"None", "Shaper", "Elder", "Crusader", "Redeemer", "Hunter", "Warlord",
	}
	if int(i) < 0 || int(i) >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

// SocketColor enumerates the single-letter socket color codes (spec.md §3).
type SocketColor int

const (
	SocketR SocketColor = iota
	SocketG
	SocketB
	SocketW
	SocketA
	SocketD
)

func (c SocketColor) String() string {
	switch c {
	case SocketR:
		return "R"
	case SocketG:
		return "G"
	case SocketB:
		return "B"
	case SocketW:
		return "W"
	case SocketA:
		return "A"
	case SocketD:
		return "D"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ParseSocketColor maps a single letter to a SocketColor.
func ParseSocketColor(letter byte) (SocketColor, bool) {
	switch letter {
	case 'R':
		return SocketR, true
	case 'G':
		return SocketG, true
	case 'B':
		return SocketB, true
	case 'W':
		return SocketW, true
	case 'A':
		return SocketA, true
	case 'D':
		return SocketD, true
	default:
		return 0, false
	}
}

// SocketSpec represents a socket-count/color literal such as "5RGB" or
// "RRGB" (spec.md §3, §4.3).
type SocketSpec struct {
	// Count is the required total socket count, or -1 if unspecified.
	Count int
	// Required maps each color to the minimum number of sockets of that
	// color the item must have.
	Required map[SocketColor]int
}

// Validate rejects a SocketSpec whose required colors exceed its count,
// or that carries neither a count nor any color requirement (spec.md §4.3).
func (s SocketSpec) Validate() error {
	total := 0
	for _, n := range s.Required {
		total += n
	}
	if s.Count == -1 && total == 0 {
		return fmt.Errorf("socket spec must have a count or at least one color")
	}
	if s.Count != -1 && total > s.Count {
		return fmt.Errorf("socket spec requires %d colored sockets but only declares count %d", total, s.Count)
	}
	return nil
}

// String renders the canonical "[count]LETTERS" form.
func (s SocketSpec) String() string {
	var b strings.Builder
	if s.Count != -1 {
		fmt.Fprintf(&b, "%d", s.Count)
	}
	order := []SocketColor{SocketR, SocketG, SocketB, SocketW, SocketA, SocketD}
	for _, c := range order {
		n := s.Required[c]
		for i := 0; i < n; i++ {
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// Color is an RGB(A) action value (spec.md §3).
type Color struct {
	R, G, B int
	A       *int
}

func (c Color) String() string {
	if c.A != nil {
		return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, *c.A)
	}
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// MinimapIcon is the Size/Suit/Shape triple for the MinimapIcon action.
type MinimapIcon struct {
	Size  int // 0, 1, or 2
	Suit  Suit
	Shape Shape
}

func (m MinimapIcon) String() string {
	return fmt.Sprintf("%d %s %s", m.Size, m.Suit, m.Shape)
}

// BeamEffect is the Suit/Temp pair for the PlayEffect action.
type BeamEffect struct {
	Suit Suit
	Temp bool
}

func (b BeamEffect) String() string {
	if b.Temp {
		return fmt.Sprintf("%s Temp", b.Suit)
	}
	return b.Suit.String()
}

// AlertSound is either a numeric sound id or a custom file path, each
// with an optional volume (spec.md §3).
type AlertSound struct {
	ID     int
	Path   string
	Volume *int
	Custom bool
}

func (a AlertSound) String() string {
	var head string
	if a.Custom {
		head = fmt.Sprintf("%q", a.Path)
	} else {
		head = fmt.Sprintf("%d", a.ID)
	}
	if a.Volume != nil {
		return fmt.Sprintf("%s %d", head, *a.Volume)
	}
	return head
}

// Primitive is the tagged-variant scalar carried by every object.Object.
// Only the field matching Kind is meaningful; this mirrors the teacher's
// preference for plain structs over an interface-heavy visitor hierarchy.
type Primitive struct {
	Kind Kind

	Bool       bool
	Int        int32
	Frac       float64
	Str        string
	Rarity     Rarity
	Shape      Shape
	Suit       Suit
	Influence  Influence
	SockColor  SocketColor
	SockSpec   SocketSpec
	Color      Color
	Minimap    MinimapIcon
	Beam       BeamEffect
	AlertSound AlertSound
}

// String renders the primitive using native filter operand syntax where
// applicable (spec.md §6).
func (p Primitive) String() string {
	switch p.Kind {
	case KindBoolean:
		if p.Bool {
			return "True"
		}
		return "False"
	case KindInteger, KindFontSize, KindSoundID, KindVolume, KindLevel:
		return fmt.Sprintf("%d", p.Int)
	case KindFractional:
		return fmt.Sprintf("%g", p.Frac)
	case KindString, KindGemQualityType:
		return fmt.Sprintf("%q", p.Str)
	case KindRarity:
		return p.Rarity.String()
	case KindShape:
		return p.Shape.String()
	case KindSuit, KindShaperVoiceLine:
		return p.Suit.String()
	case KindInfluence:
		return p.Influence.String()
	case KindSocketColor:
		return p.SockColor.String()
	case KindSocketSpec:
		return p.SockSpec.String()
	case KindColor:
		return p.Color.String()
	case KindMinimapIcon:
		return p.Minimap.String()
	case KindBeamEffect:
		return p.Beam.String()
	case KindAlertSound:
		return p.AlertSound.String()
	default:
		return fmt.Sprintf("<%s>", p.Kind)
	}
}

// Bool builds a boolean Primitive.
func Bool(v bool) Primitive { return Primitive{Kind: KindBoolean, Bool: v} }

// Int builds an integer Primitive.
func Int(v int32) Primitive { return Primitive{Kind: KindInteger, Int: v} }

// Frac builds a fractional Primitive.
func Frac(v float64) Primitive { return Primitive{Kind: KindFractional, Frac: v} }

// Str builds a string Primitive.
func Str(v string) Primitive { return Primitive{Kind: KindString, Str: v} }

// Object wraps either a single Primitive or a homogeneous Array of them,
// together with the Origin where its value was produced (spec.md §3
// "Object"). Arrays may not nest (spec.md §4.3, "nested-arrays-not-allowed").
type Object struct {
	Single Primitive
	Array  []Primitive
	IsList bool
	Origin position.Origin
}

// Single1 wraps a single primitive with an origin.
func Single1(p Primitive, origin position.Origin) Object {
	return Object{Single: p, Origin: origin}
}

// List wraps a homogeneous array of primitives with an origin. The
// caller must have already checked homogeneity (spec.md §8 "Array
// homogeneity"); List itself does not re-validate.
func List(items []Primitive, origin position.Origin) Object {
	return Object{Array: items, IsList: true, Origin: origin}
}

// Kind returns the Kind of a single-valued Object, or the element Kind
// of a list Object. It panics on an empty list, which a well-formed
// evaluator never produces (spec.md §4.3 rejects empty constructor
// results upstream).
func (o Object) Kind() Kind {
	if o.IsList {
		return o.Array[0].Kind
	}
	return o.Single.Kind
}

// WithOrigin returns a copy of o with its Origin replaced, used when a
// name reference copies a bound object but attributes the reference site
// as its new value-origin (spec.md §4.3, "A name reference evaluates to
// a copy of the bound object with value-origin set to the reference site").
func (o Object) WithOrigin(origin position.Origin) Object {
	o.Origin = origin
	return o
}

// String renders the object using native filter syntax, space-joining
// list elements (spec.md §6).
func (o Object) String() string {
	if !o.IsList {
		return o.Single.String()
	}
	parts := make([]string, len(o.Array))
	for i, p := range o.Array {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// Homogeneous reports whether every element of a list Object shares the
// same Kind, per spec.md §8's "Array homogeneity" property.
func (o Object) Homogeneous() bool {
	if !o.IsList || len(o.Array) == 0 {
		return true
	}
	k := o.Array[0].Kind
	for _, p := range o.Array[1:] {
		if p.Kind != k {
			return false
		}
	}
	return true
}

// Named pairs an Object with the Origin at which its name was defined
// (spec.md §3 "Named object").
type Named struct {
	Name       string
	Object     Object
	NameOrigin position.Origin
}
