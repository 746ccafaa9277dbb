package compiler

import (
	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/evaluator"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

// buildAction lowers one parsed ActionStmt into a single-field Action,
// ready to be merged into the inherited action set (spec.md §4.4
// "Action ... apply to inherited_actions").
func buildAction(stmt sfast.ActionStmt, table *symboltable.Table) (condition.Action, error) {
	// EnableDropSound and DisableDropSound take no operands.
	var obj object.Object
	if stmt.Keyword != "EnableDropSound" && stmt.Keyword != "DisableDropSound" {
		var err error
		obj, err = evaluator.Evaluate(stmt.Operands, table)
		if err != nil {
			return condition.Action{}, err
		}
	}

	var out condition.Action
	switch stmt.Keyword {
	case "SetBorderColor":
		c, err := requireColor(stmt, obj)
		if err != nil {
			return condition.Action{}, err
		}
		out.BorderColor = &condition.ColorField{Value: c, Origin: stmt.Orig}
	case "SetTextColor":
		c, err := requireColor(stmt, obj)
		if err != nil {
			return condition.Action{}, err
		}
		out.TextColor = &condition.ColorField{Value: c, Origin: stmt.Orig}
	case "SetBackgroundColor":
		c, err := requireColor(stmt, obj)
		if err != nil {
			return condition.Action{}, err
		}
		out.BackgroundColor = &condition.ColorField{Value: c, Origin: stmt.Orig}
	case "SetFontSize":
		n, err := requireInt(stmt, obj)
		if err != nil {
			return condition.Action{}, err
		}
		out.FontSize = &condition.IntField{Value: n, Origin: stmt.Orig}
	case "PlayAlertSound", "PlayAlertSoundPositional":
		snd, err := requireAlertSound(stmt, obj, false)
		if err != nil {
			return condition.Action{}, err
		}
		out.AlertSound = &condition.SoundField{Value: snd, Origin: stmt.Orig}
	case "CustomAlertSound":
		snd, err := requireAlertSound(stmt, obj, true)
		if err != nil {
			return condition.Action{}, err
		}
		out.AlertSound = &condition.SoundField{Value: snd, Origin: stmt.Orig}
	case "EnableDropSound":
		out.DisableDropSound = &condition.BoolField{Value: false, Origin: stmt.Orig}
	case "DisableDropSound":
		out.DisableDropSound = &condition.BoolField{Value: true, Origin: stmt.Orig}
	case "MinimapIcon":
		if obj.IsList || obj.Single.Kind != object.KindMinimapIcon {
			return condition.Action{}, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: "MinimapIcon expects a size+suit+shape operand"}
		}
		out.MinimapIcon = &condition.MinimapField{Value: obj.Single.Minimap, Origin: stmt.Orig}
	case "PlayEffect":
		if obj.IsList || obj.Single.Kind != object.KindBeamEffect {
			return condition.Action{}, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: "PlayEffect expects a suit (+ Temp) operand"}
		}
		out.BeamEffect = &condition.BeamField{Value: obj.Single.Beam, Origin: stmt.Orig}
	default:
		return condition.Action{}, &evaluator.Error{ID: diagnostics.UnknownStatement, Origin: stmt.Orig, Text: "unknown action keyword " + stmt.Keyword}
	}
	return out, nil
}

func requireColor(stmt sfast.ActionStmt, obj object.Object) (object.Color, error) {
	if obj.IsList || obj.Single.Kind != object.KindColor {
		return object.Color{}, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects a 3- or 4-integer color operand"}
	}
	return obj.Single.Color, nil
}

func requireInt(stmt sfast.ActionStmt, obj object.Object) (int, error) {
	if obj.IsList || obj.Single.Kind != object.KindInteger {
		return 0, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects an integer operand"}
	}
	return int(obj.Single.Int), nil
}

// requireAlertSound accepts either the full AlertSound constructor shape
// (id/path + volume, evaluator.tryAlertSoundByID / tryCustomAlertSound)
// or a bare single id/path with no volume, since volume is optional
// (spec.md §4.3 "numeric or shaper-voice-line id (+ optional integer
// volume)").
func requireAlertSound(stmt sfast.ActionStmt, obj object.Object, custom bool) (object.AlertSound, error) {
	if obj.IsList {
		return object.AlertSound{}, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects a sound-id or path (+ optional volume) operand"}
	}
	switch obj.Single.Kind {
	case object.KindAlertSound:
		snd := obj.Single.AlertSound
		if snd.Custom != custom {
			return object.AlertSound{}, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " operand shape does not match"}
		}
		return snd, nil
	case object.KindInteger:
		if custom {
			break
		}
		return object.AlertSound{ID: int(obj.Single.Int)}, nil
	case object.KindString:
		if !custom {
			break
		}
		return object.AlertSound{Path: obj.Single.Str, Custom: true}, nil
	}
	return object.AlertSound{}, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects a sound-id or path (+ optional volume) operand"}
}
