// Package compiler implements the recursive-descent lowering pass of
// spec.md §4.4: it walks a parsed SF statement sequence, threading
// inherited conditions and actions by value through nested blocks, and
// emits a spirit filter — still carrying unresolved autogeneration
// closures — ready for pkg/autogen to bind against a market snapshot.
package compiler

import (
	"github.com/filter-spirit/filterspirit/pkg/autogen"
	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/evaluator"
	"github.com/filter-spirit/filterspirit/pkg/filter"
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

// Settings configures the behavior of a single compilation (spec.md §4.4
// "notably ruthless_mode, stop_on_error, treat_warnings_as_errors").
type Settings struct {
	RuthlessMode          bool
	StopOnError           bool
	TreatWarningsAsErrors bool
}

// blockState is the inherited condition/action/autogen context threaded
// by value through nested blocks (spec.md §4.4): copying it on recursion
// and letting a sibling branch diverge without explicit rollback is the
// same by-value-threading idiom as condition.Set.Append.
type blockState struct {
	conds      condition.Set
	actions    condition.Action
	hasAutogen bool
	category   string
	catOrigin  position.Origin
	priceRange condition.PriceRange
}

// compiler carries the mutable pieces of one compilation: the symbol
// table resolution already produced, accumulated diagnostics, and the
// stop-on-error short-circuit flag (adapted from the teacher's
// ctx.Done() cancellation check in DefaultGenerator.Generate, since a
// compilation has no actual context.Context to cancel).
type compiler struct {
	table    *symboltable.Table
	settings Settings
	diags    *diagnostics.Bag
	stopped  bool
}

// Compile lowers a parsed SF file's top-level statements into a spirit
// filter, given an already-resolved symbol table (spec.md §4.4).
func Compile(stmts []sfast.Statement, table *symboltable.Table, settings Settings) (filter.SpiritFilter, *diagnostics.Bag) {
	c := &compiler{table: table, settings: settings, diags: &diagnostics.Bag{}}
	var sf filter.SpiritFilter
	c.lowerStatements(stmts, blockState{}, &sf)
	return sf, c.diags
}

func (c *compiler) report(m diagnostics.Message) {
	c.diags.Add(m)
	if m.Severity == diagnostics.Error && c.settings.StopOnError {
		c.stopped = true
	}
}

func (c *compiler) reportErr(err error) {
	if ee, ok := err.(*evaluator.Error); ok {
		c.report(diagnostics.Message{Severity: diagnostics.Error, ID: ee.ID, Origin: ee.Origin, Text: ee.Text, Notes: ee.Notes})
		return
	}
	c.report(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.InternalCompilerError, Text: err.Error()})
}

// lowerStatements walks one statement list — either the file's top level
// or a nested block's body — under state, appending finalized spirit
// blocks to out in source order (spec.md §5 "block emission order
// strictly matches source order").
func (c *compiler) lowerStatements(stmts []sfast.Statement, state blockState, out *filter.SpiritFilter) {
	for _, stmt := range stmts {
		if c.stopped {
			return
		}
		switch s := stmt.(type) {
		case sfast.ActionStmt:
			act, err := buildAction(s, c.table)
			if err != nil {
				c.reportErr(err)
				continue
			}
			state.actions = state.actions.MergeOver(act)

		case sfast.ImportStmt:
			out.Blocks = append(out.Blocks, filter.Spirit{
				Block: filter.Block{Import: s.Path, Origin: s.Orig},
			})

		case sfast.ExpandStmt:
			c.expand(s, state, out)

		case sfast.NestedBlock:
			c.enterBlock(s, state, out)

		case sfast.VisibilityStmt:
			c.finalize(s, state, out)

		default:
			c.report(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.UnknownStatement, Origin: stmt.Origin(), Text: "unknown statement"})
		}
	}
}

// enterBlock lowers a NestedBlock: its leading ConditionStmts (including
// a possible Autogen pseudo-condition) extend state for the body alone,
// then recursion into Body uses that extended, still purely local,
// state — the caller's own state is left untouched (spec.md §4.4
// "Recursive block lowering").
func (c *compiler) enterBlock(nb sfast.NestedBlock, state blockState, out *filter.SpiritFilter) {
	for _, cstmt := range nb.Conditions {
		if c.stopped {
			return
		}
		if cstmt.Keyword == "Autogen" {
			cat, err := c.resolveAutogenCategory(cstmt)
			if err != nil {
				c.reportErr(err)
				continue
			}
			state.hasAutogen = true
			state.category = cat
			state.catOrigin = cstmt.Orig
			continue
		}

		conds, err := buildCondition(cstmt, c.table)
		if err != nil {
			c.reportErr(err)
			continue
		}
		for _, cond := range conds {
			if r, ok := cond.(condition.Range); ok {
				for _, prev := range state.conds.FindAll(r.Prop) {
					if pr, ok := prev.(condition.Range); ok && pr.Lower == r.Lower {
						id, side := diagnostics.UpperBoundRedefinition, "upper"
						if r.Lower {
							id, side = diagnostics.LowerBoundRedefinition, "lower"
						}
						c.report(diagnostics.Message{Severity: diagnostics.Error, ID: id, Origin: r.Orig, Text: side + " bound redefined"}.WithNote("previous bound here", pr.Orig))
					}
				}
			}
			state.conds = state.conds.Append(cond)
			if cond.Property() == condition.PropPrice {
				if r, ok := cond.(condition.Range); ok {
					rCopy := r
					if r.Lower {
						state.priceRange.Lower = &rCopy
					} else {
						state.priceRange.Upper = &rCopy
					}
				}
			}
		}
	}
	state.priceRange.BlockOrig = nb.Orig

	c.lowerStatements(nb.Body, state, out)
}

// resolveAutogenCategory evaluates the single operand of an `Autogen`
// pseudo-condition to its category keyword (spec.md §4.4 step 1).
func (c *compiler) resolveAutogenCategory(stmt sfast.ConditionStmt) (string, error) {
	obj, err := evaluator.Evaluate(stmt.Operands, c.table)
	if err != nil {
		return "", err
	}
	if obj.IsList || obj.Single.Kind != object.KindString {
		return "", &evaluator.Error{ID: diagnostics.TypeMismatch, Origin: stmt.Orig, Text: "Autogen expects a category keyword"}
	}
	return obj.Single.Str, nil
}

// expand resolves `Expand $name` by looking up the named block-tree in
// the symbol table and recursing into its statements under the current
// state (spec.md §4.4 "Expansion": "behaves as if the named tree's
// statements appeared verbatim in place of the Expand statement").
// Diagnostics raised while lowering the expanded statements gain a note
// pointing back at the Expand site, so an error inside a reused tree
// still cites where it was pulled in from (spec.md §7).
func (c *compiler) expand(stmt sfast.ExpandStmt, state blockState, out *filter.SpiritFilter) {
	tree, ok := c.table.LookupTree(stmt.Name.Name)
	if !ok {
		c.report(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.NoSuchName, Origin: stmt.Name.Origin, Text: "no such name: $" + stmt.Name.Name})
		return
	}

	before := len(c.diags.Messages)
	c.lowerStatements(tree.Statements, state, out)
	for i := before; i < len(c.diags.Messages); i++ {
		c.diags.Messages[i] = c.diags.Messages[i].WithNote("expanded here", stmt.Orig)
	}
}

// finalize closes off a block at a VisibilityStmt: applies ruthless-mode
// substitution, validates price/autogen consistency, and either commits
// a plain flat block or an autogeneration-bearing spirit block (spec.md
// §4.4 "Visibility statement").
func (c *compiler) finalize(stmt sfast.VisibilityStmt, state blockState, out *filter.SpiritFilter) {
	vis := toFilterVisibility(stmt.Visibility)
	if c.settings.RuthlessMode {
		switch vis {
		case filter.Hide:
			vis = filter.Minimal
			c.report(diagnostics.Message{Severity: diagnostics.Warning, ID: diagnostics.InvalidStatement, Origin: stmt.Orig, Text: "ruthless mode: Hide is replaced by Minimal"})
		case filter.Minimal:
			vis = filter.Hide
			c.report(diagnostics.Message{Severity: diagnostics.Warning, ID: diagnostics.InvalidStatement, Origin: stmt.Orig, Text: "ruthless mode: Minimal is replaced by Hide"})
		}
	}

	if !state.hasAutogen {
		if priceConds := state.conds.FindAll(condition.PropPrice); len(priceConds) > 0 {
			msg := diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.PriceWithoutAutogen, Origin: stmt.Orig, Text: "price-range condition without an Autogen directive"}
			for _, pc := range priceConds {
				msg = msg.WithNote("price bound here", pc.Origin())
			}
			c.report(msg)
			return
		}
	}

	block := filter.Block{
		Visibility: vis,
		Conditions: state.conds,
		Actions:    state.actions,
		Continue:   filter.Continue{Present: stmt.HasContinue, Origin: stmt.ContinueOrigin},
		Origin:     stmt.Orig,
	}

	if !state.hasAutogen {
		out.Blocks = append(out.Blocks, filter.Spirit{Block: block})
		return
	}

	cat, ok := autogen.CategoryByName(state.category)
	if !ok {
		c.report(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.InvalidStatement, Origin: state.catOrigin, Text: "unknown autogeneration category " + state.category})
		return
	}
	if !c.checkAutogenCompatibility(cat, state) {
		return
	}

	out.Blocks = append(out.Blocks, filter.Spirit{
		Block:      block,
		HasAutogen: true,
		PriceRange: state.priceRange,
		Category:   state.category,
		Generate:   autogen.Generator(cat, state.priceRange, block),
	})
}

// checkAutogenCompatibility verifies every non-price condition inherited
// into an autogeneration block is compatible with the selected category
// (spec.md §4.4 step 3), reporting autogen-forbidden-condition or
// autogen-incompatible-condition as appropriate.
func (c *compiler) checkAutogenCompatibility(cat autogen.Category, state blockState) bool {
	ok := true
	for _, cond := range state.conds.Conditions {
		if cond.Property() == condition.PropPrice {
			continue
		}
		switch cat.Check(cond.Property()) {
		case autogen.CompatForbidden:
			c.report(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.AutogenForbiddenCondition, Origin: cond.Origin(), Text: cond.Property().String() + " conflicts with autogeneration category " + cat.Name})
			ok = false
		case autogen.CompatIncompatible:
			c.report(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.AutogenIncompatibleCond, Origin: cond.Origin(), Text: cond.Property().String() + " is not compatible with autogeneration category " + cat.Name})
			ok = false
		}
	}
	if _, hasLo, _, hasHi := state.priceRange.Bounds(); !hasLo && !hasHi {
		c.report(diagnostics.Message{Severity: diagnostics.Warning, ID: diagnostics.AutogenWithoutPrice, Origin: state.catOrigin, Text: "Autogen " + cat.Name + " has no price bound; generated blocks will carry no price-derived stack size"})
	}
	return ok
}

func toFilterVisibility(v sfast.Visibility) filter.Visibility {
	switch v {
	case sfast.VisHide:
		return filter.Hide
	case sfast.VisMinimal:
		return filter.Minimal
	default:
		return filter.Show
	}
}
