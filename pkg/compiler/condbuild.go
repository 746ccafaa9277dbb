package compiler

import (
	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/evaluator"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

func toConditionOp(op sfast.OpToken) condition.Op {
	switch op {
	case sfast.OpLessTok:
		return condition.OpLess
	case sfast.OpLessEqualTok:
		return condition.OpLessEqual
	case sfast.OpExactEqualTok:
		return condition.OpExactEqual
	case sfast.OpGreaterTok:
		return condition.OpGreater
	case sfast.OpGreaterEqualTok:
		return condition.OpGreaterEqual
	case sfast.OpNotEqualTok:
		return condition.OpNotEqual
	default:
		return condition.OpEqual
	}
}

var booleanProperties = map[condition.Property]bool{
	condition.PropIdentified: true, condition.PropCorrupted: true, condition.PropMirrored: true,
	condition.PropFracturedItem: true, condition.PropSynthesisedItem: true, condition.PropAnyEnchantment: true,
	condition.PropShapedMap: true, condition.PropElderMap: true, condition.PropBlightedMap: true,
	condition.PropUberBlightedMap: true, condition.PropReplica: true, condition.PropHasCruciblePassiveTree: true,
	condition.PropZanaMemory: true, condition.PropScourged: true, condition.PropAlternateQuality: true,
	condition.PropHasSearingExarchImplicit: true, condition.PropHasEaterOfWorldsImplicit: true,
	condition.PropElderItem: true, condition.PropShaperItem: true,
}

var rangeProperties = map[condition.Property]bool{
	condition.PropItemLevel: true, condition.PropDropLevel: true, condition.PropQuality: true,
	condition.PropLinkedSockets: true, condition.PropWidth: true, condition.PropHeight: true,
	condition.PropStackSize: true, condition.PropGemLevel: true, condition.PropMapTier: true,
	condition.PropCorruptedMods: true, condition.PropEnchantmentPassiveNum: true,
	condition.PropBaseArmour: true, condition.PropBaseEvasion: true, condition.PropBaseEnergyShield: true,
	condition.PropBaseWard: true, condition.PropBaseDefencePercentile: true, condition.PropMemoryStrands: true,
	condition.PropAreaLevel: true, condition.PropPrice: true,
}

var stringMatchProperties = map[condition.Property]bool{
	condition.PropClass: true, condition.PropBaseType: true, condition.PropHasEnchantment: true,
	condition.PropEnchantmentPassiveNode: true, condition.PropArchnemesisMod: true,
}

// buildCondition lowers one parsed ConditionStmt into zero or more
// concrete conditions (most keywords produce exactly one; bare equality
// on a range property produces two — a lower and an upper bound at the
// same value — since Range only ever stores one side, spec.md §4.7).
func buildCondition(stmt sfast.ConditionStmt, table *symboltable.Table) ([]condition.Condition, error) {
	prop, ok := condition.PropertyByKeyword(stmt.Keyword)
	if !ok {
		if condition.IsDeadConditionKeyword(stmt.Keyword) {
			return nil, &evaluator.Error{ID: diagnostics.DeadCondition, Origin: stmt.Orig, Text: "this condition no longer exists: " + stmt.Keyword}
		}
		return nil, &evaluator.Error{ID: diagnostics.UnknownStatement, Origin: stmt.Orig, Text: "unknown condition keyword " + stmt.Keyword}
	}

	switch {
	case booleanProperties[prop]:
		return buildBoolean(stmt, prop, table)
	case rangeProperties[prop]:
		return buildRange(stmt, prop, table)
	case prop == condition.PropRarity:
		return buildValueList(stmt, table)
	case prop == condition.PropHasInfluence:
		return buildHasInfluence(stmt, table)
	case prop == condition.PropSockets || prop == condition.PropSocketGroup:
		return buildSockets(stmt, prop, table)
	case prop == condition.PropHasExplicitMod:
		return buildCountedString(stmt, table)
	case stringMatchProperties[prop]:
		return buildStringMatch(stmt, prop, false, table)
	case prop == condition.PropTransfiguredGem:
		return buildTransfiguredGem(stmt, table)
	default:
		return nil, &evaluator.Error{ID: diagnostics.UnknownStatement, Origin: stmt.Orig, Text: "unhandled condition keyword " + stmt.Keyword}
	}
}

func buildBoolean(stmt sfast.ConditionStmt, prop condition.Property, table *symboltable.Table) ([]condition.Condition, error) {
	expected := true
	if len(stmt.Operands) > 0 {
		obj, err := evaluator.Evaluate(stmt.Operands, table)
		if err != nil {
			return nil, err
		}
		if obj.IsList || obj.Single.Kind != object.KindBoolean {
			return nil, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects a boolean operand"}
		}
		expected = obj.Single.Bool
	}
	return []condition.Condition{condition.Boolean{Prop: prop, Expected: expected, Orig: stmt.Orig}}, nil
}

func buildRange(stmt sfast.ConditionStmt, prop condition.Property, table *symboltable.Table) ([]condition.Condition, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, table)
	if err != nil {
		return nil, err
	}
	if obj.IsList || (obj.Single.Kind != object.KindInteger && obj.Single.Kind != object.KindFractional) {
		return nil, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects a numeric operand"}
	}
	value := float64(obj.Single.Int)
	if obj.Single.Kind == object.KindFractional {
		value = obj.Single.Frac
	}

	op := toConditionOp(stmt.Op)
	switch op {
	case condition.OpLess:
		return []condition.Condition{condition.Range{Prop: prop, Lower: false, Value: value, Inclusive: false, Orig: stmt.Orig}}, nil
	case condition.OpLessEqual:
		return []condition.Condition{condition.Range{Prop: prop, Lower: false, Value: value, Inclusive: true, Orig: stmt.Orig}}, nil
	case condition.OpGreater:
		return []condition.Condition{condition.Range{Prop: prop, Lower: true, Value: value, Inclusive: false, Orig: stmt.Orig}}, nil
	case condition.OpGreaterEqual:
		return []condition.Condition{condition.Range{Prop: prop, Lower: true, Value: value, Inclusive: true, Orig: stmt.Orig}}, nil
	default: // bare, "=", or "==": exact value, both bounds inclusive
		return []condition.Condition{
			condition.Range{Prop: prop, Lower: true, Value: value, Inclusive: true, Orig: stmt.Orig},
			condition.Range{Prop: prop, Lower: false, Value: value, Inclusive: true, Orig: stmt.Orig},
		}, nil
	}
}

func buildValueList(stmt sfast.ConditionStmt, table *symboltable.Table) ([]condition.Condition, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, table)
	if err != nil {
		return nil, err
	}
	prims := flattenPrimitives(obj)
	values := make([]object.Rarity, 0, len(prims))
	for _, p := range prims {
		if p.Kind != object.KindRarity {
			return nil, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: "Rarity expects rarity operands"}
		}
		values = append(values, p.Rarity)
	}
	return []condition.Condition{condition.ValueList{Prop: condition.PropRarity, Op: toConditionOp(stmt.Op), Values: values, Orig: stmt.Orig}}, nil
}

func buildHasInfluence(stmt sfast.ConditionStmt, table *symboltable.Table) ([]condition.Condition, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, table)
	if err != nil {
		return nil, err
	}
	prims := flattenPrimitives(obj)
	values := make([]object.Influence, 0, len(prims))
	for _, p := range prims {
		if p.Kind != object.KindInfluence {
			return nil, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: "HasInfluence expects influence operands"}
		}
		values = append(values, p.Influence)
	}
	exact := stmt.Op == sfast.OpExactEqualTok
	return []condition.Condition{condition.HasInfluence{Values: values, Exact: exact, Orig: stmt.Orig}}, nil
}

func buildSockets(stmt sfast.ConditionStmt, prop condition.Property, table *symboltable.Table) ([]condition.Condition, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, table)
	if err != nil {
		return nil, err
	}
	if obj.IsList || obj.Single.Kind != object.KindSocketSpec {
		return nil, &evaluator.Error{ID: diagnostics.InvalidSocketGroup, Origin: stmt.Orig, Text: stmt.Keyword + " expects a socket-spec operand"}
	}
	spec := obj.Single.SockSpec
	if err := spec.Validate(); err != nil {
		return nil, &evaluator.Error{ID: diagnostics.InvalidSocketGroup, Origin: stmt.Orig, Text: err.Error()}
	}
	return []condition.Condition{condition.Sockets{Prop: prop, Op: toConditionOp(stmt.Op), Spec: spec, Orig: stmt.Orig}}, nil
}

func buildStringMatch(stmt sfast.ConditionStmt, prop condition.Property, forceNonExact bool, table *symboltable.Table) ([]condition.Condition, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, table)
	if err != nil {
		return nil, err
	}
	prims := flattenPrimitives(obj)
	values := make([]string, 0, len(prims))
	for _, p := range prims {
		if p.Kind != object.KindString {
			return nil, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: stmt.Keyword + " expects string operands"}
		}
		values = append(values, p.Str)
	}
	exact := stmt.Op == sfast.OpExactEqualTok && !forceNonExact
	negate := stmt.Op == sfast.OpNotEqualTok
	return []condition.Condition{condition.StringMatch{Prop: prop, Exact: exact, Negate: negate, Values: values, Orig: stmt.Orig}}, nil
}

func buildTransfiguredGem(stmt sfast.ConditionStmt, table *symboltable.Table) ([]condition.Condition, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, table)
	if err != nil {
		return nil, err
	}
	if !obj.IsList && obj.Single.Kind == object.KindBoolean {
		return []condition.Condition{condition.Boolean{Prop: condition.PropTransfiguredGem, Expected: obj.Single.Bool, Orig: stmt.Orig}}, nil
	}
	return buildStringMatch(stmt, condition.PropTransfiguredGem, false, table)
}

func buildCountedString(stmt sfast.ConditionStmt, table *symboltable.Table) ([]condition.Condition, error) {
	if toConditionOp(stmt.Op) == condition.OpNotEqual {
		return nil, &evaluator.Error{ID: diagnostics.InvalidStatement, Origin: stmt.Orig, Text: "HasExplicitMod != is rejected: the game's own implementation is buggy"}
	}
	operands := stmt.Operands
	var count *int
	if len(operands) > 1 {
		if lit, ok := operands[0].(sfast.Literal); ok && lit.Kind == sfast.LitInt {
			single, err := evaluator.Evaluate(operands[:1], table)
			if err == nil && single.Single.Kind == object.KindInteger {
				n := int(single.Single.Int)
				count = &n
				operands = operands[1:]
			}
		}
	}
	obj, err := evaluator.Evaluate(operands, table)
	if err != nil {
		return nil, err
	}
	prims := flattenPrimitives(obj)
	values := make([]string, 0, len(prims))
	for _, p := range prims {
		if p.Kind != object.KindString {
			return nil, &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: "HasExplicitMod expects string operands"}
		}
		values = append(values, p.Str)
	}
	return []condition.Condition{condition.CountedString{
		Prop: condition.PropHasExplicitMod, Op: toConditionOp(stmt.Op), Count: count, Values: values, Orig: stmt.Orig,
	}}, nil
}

func flattenPrimitives(obj object.Object) []object.Primitive {
	if obj.IsList {
		return obj.Array
	}
	return []object.Primitive{obj.Single}
}
