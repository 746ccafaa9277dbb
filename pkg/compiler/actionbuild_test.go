package compiler

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

func TestBuildAction_SetTextColorRGB(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "SetTextColor", Operands: []sfast.Expr{intLit("255"), intLit("0"), intLit("0")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.TextColor == nil || act.TextColor.Value.R != 255 {
		t.Fatalf("expected TextColor R=255, got %+v", act.TextColor)
	}
}

func TestBuildAction_SetTextColorWithAlpha(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "SetTextColor", Operands: []sfast.Expr{intLit("1"), intLit("2"), intLit("3"), intLit("4")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.TextColor.Value.A == nil || *act.TextColor.Value.A != 4 {
		t.Fatalf("expected an alpha channel of 4, got %+v", act.TextColor.Value)
	}
}

func TestBuildAction_SetFontSize(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "SetFontSize", Operands: []sfast.Expr{intLit("40")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.FontSize == nil || act.FontSize.Value != 40 {
		t.Fatalf("expected FontSize=40, got %+v", act.FontSize)
	}
}

func TestBuildAction_PlayAlertSoundByID(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "PlayAlertSound", Operands: []sfast.Expr{intLit("6")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.AlertSound == nil || act.AlertSound.Value.ID != 6 || act.AlertSound.Value.Custom {
		t.Fatalf("expected a non-custom alert sound id=6, got %+v", act.AlertSound)
	}
}

func TestBuildAction_PlayAlertSoundWithVolume(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "PlayAlertSound", Operands: []sfast.Expr{intLit("6"), intLit("300")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.AlertSound.Value.Volume == nil || *act.AlertSound.Value.Volume != 300 {
		t.Fatalf("expected volume=300, got %+v", act.AlertSound.Value)
	}
}

func TestBuildAction_CustomAlertSoundRequiresStringPath(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "CustomAlertSound", Operands: []sfast.Expr{strLit("my_sound.mp3")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.AlertSound == nil || !act.AlertSound.Value.Custom || act.AlertSound.Value.Path != "my_sound.mp3" {
		t.Fatalf("expected a custom alert sound with path my_sound.mp3, got %+v", act.AlertSound)
	}
}

func TestBuildAction_DisableAndEnableDropSound(t *testing.T) {
	disable, err := buildAction(sfast.ActionStmt{Keyword: "DisableDropSound"}, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction(DisableDropSound) failed: %v", err)
	}
	if disable.DisableDropSound == nil || !disable.DisableDropSound.Value {
		t.Errorf("expected DisableDropSound=true")
	}

	enable, err := buildAction(sfast.ActionStmt{Keyword: "EnableDropSound"}, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction(EnableDropSound) failed: %v", err)
	}
	if enable.DisableDropSound == nil || enable.DisableDropSound.Value {
		t.Errorf("expected DisableDropSound=false")
	}
}

func TestBuildAction_MinimapIcon(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "MinimapIcon", Operands: []sfast.Expr{intLit("0"), kwLit("Red"), kwLit("Circle")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.MinimapIcon == nil || act.MinimapIcon.Value.Size != 0 {
		t.Fatalf("expected a minimap icon, got %+v", act.MinimapIcon)
	}
}

func TestBuildAction_PlayEffectWithTemp(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "PlayEffect", Operands: []sfast.Expr{kwLit("Red"), kwLit("Temp")}}
	act, err := buildAction(stmt, symboltable.New())
	if err != nil {
		t.Fatalf("buildAction() failed: %v", err)
	}
	if act.BeamEffect == nil || !act.BeamEffect.Value.Temp {
		t.Fatalf("expected a temporary beam effect, got %+v", act.BeamEffect)
	}
}

func TestBuildAction_WrongOperandTypeErrors(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "SetFontSize", Operands: []sfast.Expr{strLit("big")}}
	if _, err := buildAction(stmt, symboltable.New()); err == nil {
		t.Fatal("expected a type-mismatch error for a non-integer font size")
	}
}

func TestBuildAction_UnknownKeywordErrors(t *testing.T) {
	stmt := sfast.ActionStmt{Keyword: "NotARealAction", Operands: []sfast.Expr{intLit("1")}}
	if _, err := buildAction(stmt, symboltable.New()); err == nil {
		t.Fatal("expected an error for an unrecognized action keyword")
	}
}
