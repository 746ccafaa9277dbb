package compiler

import (
	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/rfast"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

// CompileRF lowers an already-parsed RF file straight into a flat
// filter (spec.md §3 "Flat filter"). RF has no names, no inheritance, no
// autogeneration — every block's own condition/action lines already
// stand alone — so this reuses the SF condition/action builders against
// an empty symbol table rather than duplicating their dispatch logic
// (spec.md §8 "Round-trip for native filters").
func CompileRF(file rfast.File) (filter.Flat, *diagnostics.Bag) {
	table := symboltable.New()
	diags := &diagnostics.Bag{}
	var out filter.Flat

	for _, rb := range file.Blocks {
		block := filter.Block{
			Visibility: toFilterVisibilityRF(rb.Visibility),
			Continue:   filter.Continue{Present: rb.HasContinue, Origin: rb.ContinueOrig},
			Origin:     rb.Orig,
		}

		ok := true
		for _, cl := range rb.Conditions {
			stmt := toSFConditionStmt(cl)
			conds, err := buildCondition(stmt, table)
			if err != nil {
				addEvalErr(diags, err)
				ok = false
				continue
			}
			for _, c := range conds {
				block.Conditions = block.Conditions.Append(c)
			}
		}
		for _, al := range rb.Actions {
			stmt := toSFActionStmt(al)
			act, err := buildAction(stmt, table)
			if err != nil {
				addEvalErr(diags, err)
				ok = false
				continue
			}
			block.Actions = block.Actions.MergeOver(act)
		}
		if ok {
			out.Blocks = append(out.Blocks, block)
		}
	}

	return out, diags
}

func toFilterVisibilityRF(v rfast.Visibility) filter.Visibility {
	switch v {
	case rfast.VisHide:
		return filter.Hide
	case rfast.VisMinimal:
		return filter.Minimal
	default:
		return filter.Show
	}
}

func toSFConditionStmt(cl rfast.ConditionLine) sfast.ConditionStmt {
	return sfast.ConditionStmt{
		Keyword:  cl.Keyword,
		Op:       toSFOp(cl.Op),
		Operands: toSFExprs(cl.Operands),
		Orig:     cl.Orig,
	}
}

func toSFActionStmt(al rfast.ActionLine) sfast.ActionStmt {
	return sfast.ActionStmt{
		Keyword:  al.Keyword,
		Operands: toSFExprs(al.Operands),
		Orig:     al.Orig,
	}
}

func toSFExprs(operands []rfast.Operand) []sfast.Expr {
	out := make([]sfast.Expr, len(operands))
	for i, op := range operands {
		out[i] = sfast.Literal{Kind: toSFLiteralKind(op), Text: op.Text, Orig: op.Orig}
	}
	return out
}

// toSFLiteralKind maps one RF operand to its SF literal kind. RF has no
// dedicated boolean token kind (the lexer emits "True"/"False" as bare
// identifiers, rfast.OperandKeyword); they are recognized here so the
// shared evaluator's LitBool branch handles them instead of falling
// through to an opaque string passthrough.
func toSFLiteralKind(op rfast.Operand) sfast.LiteralKind {
	switch op.Kind {
	case rfast.OperandString:
		return sfast.LitString
	case rfast.OperandKeyword:
		if op.Text == "True" || op.Text == "False" {
			return sfast.LitBool
		}
		return sfast.LitKeyword
	case rfast.OperandSocketSpec:
		return sfast.LitSocketSpec
	default:
		return sfast.LitInt
	}
}

func toSFOp(op rfast.Op) sfast.OpToken {
	switch op {
	case rfast.OpLess:
		return sfast.OpLessTok
	case rfast.OpLessEqual:
		return sfast.OpLessEqualTok
	case rfast.OpExactEqual:
		return sfast.OpExactEqualTok
	case rfast.OpGreater:
		return sfast.OpGreaterTok
	case rfast.OpGreaterEqual:
		return sfast.OpGreaterEqualTok
	case rfast.OpNotEqual:
		return sfast.OpNotEqualTok
	default:
		return sfast.OpNone
	}
}
