// Package evaluator implements the expression evaluator of spec.md §4.3:
// it folds a sequence of SF primitive expressions, resolved against a
// symbol table, into exactly one object, matching the recognized
// "constructor" shapes in priority order.
package evaluator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

// Error carries one evaluator failure: its closed diagnostic identifier
// (spec.md §4.3), the primary origin, and a human description. Some
// identifiers (no-matching-constructor-found, non-homogeneous-array)
// also populate Notes with the rejected-attempt origins (spec.md §4.8
// "each message has one primary origin plus any number of notes").
type Error struct {
	ID     diagnostics.ID
	Origin position.Origin
	Text   string
	Notes  []diagnostics.NoteEntry
}

func (e *Error) Error() string { return e.Text }

var socketSpecPattern = regexp.MustCompile(`^[0-9]*[RGBWAD]+$`)

// resolved is one element of a value sequence after name references
// have been resolved to a concrete primitive, still tagged with the
// surface spelling that produced it so later constructor-matching can
// branch on it (a plain integer value vs. a suit keyword, say).
type resolved struct {
	prim   object.Primitive
	origin position.Origin
	// surfaceKeyword is the raw keyword text when this element came from
	// a bare identifier token, so shape-matching can recognize "Temp",
	// suit names, and shape names without re-deriving them from prim.
	surfaceKeyword string
	isKeyword      bool
}

// Evaluate folds exprs into exactly one Object, per spec.md §4.3.
func Evaluate(exprs []sfast.Expr, table *symboltable.Table) (object.Object, error) {
	if len(exprs) == 0 {
		return object.Object{}, &Error{ID: diagnostics.InvalidAmountOfArguments, Text: "empty value sequence"}
	}

	elems := make([]resolved, len(exprs))
	for i, e := range exprs {
		r, err := resolveElement(e, table)
		if err != nil {
			return object.Object{}, err
		}
		elems[i] = r
	}

	switch len(elems) {
	case 1:
		return object.Single1(elems[0].prim, elems[0].origin), nil
	case 2:
		if o, ok := tryBeamEffect(elems); ok {
			return o, nil
		}
		if o, ok := tryAlertSoundByID(elems); ok {
			return o, nil
		}
		if o, ok := tryCustomAlertSound(elems); ok {
			return o, nil
		}
	case 3:
		if o, ok := tryMinimapIcon(elems); ok {
			return o, nil
		}
		if o, ok := tryColor(elems); ok {
			return o, nil
		}
	case 4:
		if o, ok := tryColor(elems); ok {
			return o, nil
		}
	}

	if o, err, ok := tryArray(elems); ok {
		return o, err
	}

	return object.Object{}, &Error{
		ID:     diagnostics.NoMatchingConstructorFound,
		Origin: spanAll(elems),
		Text:   "no matching constructor for this operand sequence",
	}
}

func spanAll(elems []resolved) position.Origin {
	s := elems[0].origin
	for _, e := range elems[1:] {
		s = position.Span(s, e.origin)
	}
	return s
}

// resolveElement turns one Expr into a resolved value: a literal
// becomes its own primitive with its own origin (spec.md §4.3, "A
// literal evaluates to its primitive object with its own origin"); a
// name reference becomes a copy of the bound object with the reference
// site as its value-origin (spec.md §4.3).
func resolveElement(e sfast.Expr, table *symboltable.Table) (resolved, error) {
	switch v := e.(type) {
	case sfast.NameRef:
		n, ok := table.LookupObject(v.Name.Name)
		if !ok {
			return resolved{}, &Error{ID: diagnostics.NoSuchName, Origin: v.Name.Origin, Text: "no such name: $" + v.Name.Name}
		}
		obj := n.Object.WithOrigin(v.Name.Origin)
		if obj.IsList {
			return resolved{}, &Error{ID: diagnostics.NestedArraysNotAllowed, Origin: v.Name.Origin, Text: "name reference to an array cannot appear inside another sequence"}
		}
		return resolved{prim: obj.Single, origin: obj.Origin}, nil
	case sfast.Literal:
		return resolveLiteral(v)
	default:
		return resolved{}, &Error{ID: diagnostics.UnknownExpression, Origin: e.Origin(), Text: "unrecognized expression"}
	}
}

func resolveLiteral(l sfast.Literal) (resolved, error) {
	switch l.Kind {
	case sfast.LitInt:
		n, err := strconv.ParseInt(l.Text, 10, 32)
		if err != nil {
			return resolved{}, &Error{ID: diagnostics.TypeMismatch, Origin: l.Orig, Text: "malformed integer literal " + l.Text}
		}
		return resolved{prim: object.Int(int32(n)), origin: l.Orig}, nil
	case sfast.LitFrac:
		f, err := strconv.ParseFloat(l.Text, 64)
		if err != nil {
			return resolved{}, &Error{ID: diagnostics.TypeMismatch, Origin: l.Orig, Text: "malformed fractional literal " + l.Text}
		}
		return resolved{prim: object.Frac(f), origin: l.Orig}, nil
	case sfast.LitString:
		return resolved{prim: object.Str(l.Text), origin: l.Orig}, nil
	case sfast.LitBool:
		return resolved{prim: object.Bool(l.Text == "True"), origin: l.Orig}, nil
	case sfast.LitKeyword:
		return resolveKeyword(l.Text, l.Orig)
	case sfast.LitSocketSpec:
		spec, err := parseSocketSpec(l.Text)
		if err != nil {
			return resolved{}, &Error{ID: diagnostics.InvalidSocketGroup, Origin: l.Orig, Text: err.Error()}
		}
		return resolved{prim: object.Primitive{Kind: object.KindSocketSpec, SockSpec: spec}, origin: l.Orig}, nil
	default:
		return resolved{}, &Error{ID: diagnostics.UnknownExpression, Origin: l.Orig, Text: "unrecognized literal"}
	}
}

var suitNames = map[string]object.Suit{
	"Red": object.SuitRed, "Green": object.SuitGreen, "Blue": object.SuitBlue,
	"Brown": object.SuitBrown, "White": object.SuitWhite, "Yellow": object.SuitYellow,
	"Cyan": object.SuitCyan, "Grey": object.SuitGrey, "Orange": object.SuitOrange,
	"Pink": object.SuitPink, "Purple": object.SuitPurple,
}

var shapeNames = map[string]object.Shape{
	"Circle": object.ShapeCircle, "Diamond": object.ShapeDiamond, "Hexagon": object.ShapeHexagon,
	"Square": object.ShapeSquare, "Star": object.ShapeStar, "Triangle": object.ShapeTriangle,
	"Cross": object.ShapeCross, "Moon": object.ShapeMoon, "Raindrop": object.ShapeRaindrop,
	"Kite": object.ShapeKite, "Pentagon": object.ShapePentagon, "UpsideDownHouse": object.ShapeUpsideDownHouse,
}

var influenceNames = map[string]object.Influence{
	"None": object.InfluenceNone, "Shaper": object.InfluenceShaper, "Elder": object.InfluenceElder,
	"Crusader": object.InfluenceCrusader, "Redeemer": object.InfluenceRedeemer,
	"Hunter": object.InfluenceHunter, "Warlord": object.InfluenceWarlord,
}

var rarityNames = map[string]object.Rarity{
	"Normal": object.RarityNormal, "Magic": object.RarityMagic,
	"Rare": object.RarityRare, "Unique": object.RarityUnique,
}

// resolveKeyword classifies a bare identifier token. Socket specs are
// tried first since their lexical shape (digits + RGBWAD letters) never
// collides with an enum spelling; enums are then tried in a fixed
// order; anything else passes through as an opaque string (autogen
// category names, gem-quality-type labels, shaper voice lines, and the
// "Temp" marker which callers recognize by surfaceKeyword instead).
func resolveKeyword(text string, orig position.Origin) (resolved, error) {
	r := resolved{origin: orig, surfaceKeyword: text, isKeyword: true}

	if socketSpecPattern.MatchString(text) && strings.ContainsAny(text, "RGBWAD") {
		spec, err := parseSocketSpec(text)
		if err != nil {
			return resolved{}, &Error{ID: diagnostics.InvalidSocketGroup, Origin: orig, Text: err.Error()}
		}
		r.prim = object.Primitive{Kind: object.KindSocketSpec, SockSpec: spec}
		return r, nil
	}
	if s, ok := suitNames[text]; ok {
		r.prim = object.Primitive{Kind: object.KindSuit, Suit: s}
		return r, nil
	}
	if s, ok := shapeNames[text]; ok {
		r.prim = object.Primitive{Kind: object.KindShape, Shape: s}
		return r, nil
	}
	if inf, ok := influenceNames[text]; ok {
		r.prim = object.Primitive{Kind: object.KindInfluence, Influence: inf}
		return r, nil
	}
	if rar, ok := rarityNames[text]; ok {
		r.prim = object.Primitive{Kind: object.KindRarity, Rarity: rar}
		return r, nil
	}
	// opaque passthrough: autogen categories, gem quality types, voice lines
	r.prim = object.Str(text)
	return r, nil
}

func parseSocketSpec(text string) (object.SocketSpec, error) {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	spec := object.SocketSpec{Count: -1, Required: map[object.SocketColor]int{}}
	if i > 0 {
		n, err := strconv.Atoi(text[:i])
		if err != nil {
			return object.SocketSpec{}, err
		}
		spec.Count = n
	}
	for _, c := range text[i:] {
		sc, ok := object.ParseSocketColor(byte(c))
		if !ok {
			return object.SocketSpec{}, fmt.Errorf("illegal characters in socket group: %s", text)
		}
		spec.Required[sc]++
	}
	return spec, spec.Validate()
}

func tryColor(elems []resolved) (object.Object, bool) {
	for _, e := range elems {
		if e.prim.Kind != object.KindInteger {
			return object.Object{}, false
		}
	}
	c := object.Color{R: int(elems[0].prim.Int), G: int(elems[1].prim.Int), B: int(elems[2].prim.Int)}
	if len(elems) == 4 {
		a := int(elems[3].prim.Int)
		c.A = &a
	}
	return object.Single1(object.Primitive{Kind: object.KindColor, Color: c}, spanAll(elems)), true
}

func tryMinimapIcon(elems []resolved) (object.Object, bool) {
	if elems[0].prim.Kind != object.KindInteger || elems[1].prim.Kind != object.KindSuit || elems[2].prim.Kind != object.KindShape {
		return object.Object{}, false
	}
	icon := object.MinimapIcon{Size: int(elems[0].prim.Int), Suit: elems[1].prim.Suit, Shape: elems[2].prim.Shape}
	return object.Single1(object.Primitive{Kind: object.KindMinimapIcon, Minimap: icon}, spanAll(elems)), true
}

func tryBeamEffect(elems []resolved) (object.Object, bool) {
	if elems[0].prim.Kind != object.KindSuit {
		return object.Object{}, false
	}
	if !elems[1].isKeyword || elems[1].surfaceKeyword != "Temp" {
		return object.Object{}, false
	}
	eff := object.BeamEffect{Suit: elems[0].prim.Suit, Temp: true}
	return object.Single1(object.Primitive{Kind: object.KindBeamEffect, Beam: eff}, spanAll(elems)), true
}

func tryAlertSoundByID(elems []resolved) (object.Object, bool) {
	if elems[0].prim.Kind != object.KindInteger || elems[1].prim.Kind != object.KindInteger {
		return object.Object{}, false
	}
	vol := int(elems[1].prim.Int)
	snd := object.AlertSound{ID: int(elems[0].prim.Int), Volume: &vol}
	return object.Single1(object.Primitive{Kind: object.KindAlertSound, AlertSound: snd}, spanAll(elems)), true
}

func tryCustomAlertSound(elems []resolved) (object.Object, bool) {
	if elems[0].prim.Kind != object.KindString || elems[1].prim.Kind != object.KindInteger {
		return object.Object{}, false
	}
	vol := int(elems[1].prim.Int)
	snd := object.AlertSound{Path: elems[0].prim.Str, Custom: true, Volume: &vol}
	return object.Single1(object.Primitive{Kind: object.KindAlertSound, AlertSound: snd}, spanAll(elems)), true
}

// tryArray folds N elements of identical primitive kind into an array
// object (spec.md §4.3 "N values of the same primitive type → an array
// of N"). The returned bool reports whether this shape applies at all;
// the error, when non-nil, reports which element broke homogeneity.
func tryArray(elems []resolved) (object.Object, error, bool) {
	kind := elems[0].prim.Kind
	prims := make([]object.Primitive, len(elems))
	for i, e := range elems {
		if e.prim.Kind != kind {
			return object.Object{}, &Error{
				ID:     diagnostics.NonHomogeneousArray,
				Origin: e.origin,
				Text:   "array elements must share a primitive type",
				Notes:  []diagnostics.NoteEntry{{Text: "first element typed here", Origin: elems[0].origin}},
			}, true
		}
		prims[i] = e.prim
	}
	return object.List(prims, spanAll(elems)), nil, true
}
