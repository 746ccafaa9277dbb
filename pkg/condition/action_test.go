package condition

import (
	"testing"

	"github.com/filter-spirit/filterspirit/pkg/object"
)

func TestAction_MergeOver_FieldWiseOverride(t *testing.T) {
	base := Action{
		TextColor: &ColorField{Value: object.Color{R: 1}},
		FontSize:  &IntField{Value: 30},
	}
	override := Action{
		TextColor: &ColorField{Value: object.Color{R: 2}},
	}
	merged := base.MergeOver(override)
	if merged.TextColor.Value.R != 2 {
		t.Errorf("TextColor should be overridden, got R=%d", merged.TextColor.Value.R)
	}
	if merged.FontSize == nil || merged.FontSize.Value != 30 {
		t.Errorf("FontSize should survive unset in override, got %+v", merged.FontSize)
	}
}

func TestAction_MergeOver_EmptyOverrideChangesNothing(t *testing.T) {
	base := Action{FontSize: &IntField{Value: 45}}
	merged := base.MergeOver(Action{})
	if merged.FontSize == nil || merged.FontSize.Value != 45 {
		t.Errorf("expected FontSize to be unchanged, got %+v", merged.FontSize)
	}
}

func TestAction_MergeOver_DoesNotMutateBase(t *testing.T) {
	base := Action{FontSize: &IntField{Value: 10}}
	_ = base.MergeOver(Action{FontSize: &IntField{Value: 99}})
	if base.FontSize.Value != 10 {
		t.Errorf("MergeOver must not mutate its receiver, got %d", base.FontSize.Value)
	}
}
