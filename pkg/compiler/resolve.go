package compiler

import (
	"github.com/filter-spirit/filterspirit/pkg/diagnostics"
	"github.com/filter-spirit/filterspirit/pkg/evaluator"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
	"github.com/filter-spirit/filterspirit/pkg/symboltable"
)

// ResolveSymbols evaluates every top-level `$name = ...` definition in
// source order and populates a fresh symbol table (spec.md §4.2): value
// definitions are evaluated immediately through the evaluator, block-tree
// definitions are stored unexpanded for later `Expand`. A later
// definition may reference an earlier one, never the reverse (spec.md
// §4.2 "definitions are resolved top-to-bottom; forward references are a
// no-such-name error").
func ResolveSymbols(defs []sfast.Definition, settings Settings) (*symboltable.Table, *diagnostics.Bag) {
	table := symboltable.New()
	diags := &diagnostics.Bag{}

	for _, def := range defs {
		if def.Tree != nil {
			if err := table.DefineTree(def.Name.Name, symboltable.Tree{Statements: def.Tree}, def.Name.Origin); err != nil {
				addRedefinition(diags, err)
				if settings.StopOnError {
					return table, diags
				}
			}
			continue
		}

		obj, err := evaluator.Evaluate(def.Values, table)
		if err != nil {
			addEvalErr(diags, err)
			if settings.StopOnError {
				return table, diags
			}
			continue
		}
		if err := table.DefineObject(def.Name.Name, obj, def.Name.Origin); err != nil {
			addRedefinition(diags, err)
			if settings.StopOnError {
				return table, diags
			}
		}
	}

	return table, diags
}

func addRedefinition(diags *diagnostics.Bag, err error) {
	re, ok := err.(*symboltable.Redefinition)
	if !ok {
		diags.Add(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.InternalCompilerError, Text: err.Error()})
		return
	}
	diags.Add(diagnostics.Message{
		Severity: diagnostics.Error,
		ID:       diagnostics.NameAlreadyExists,
		Origin:   re.DuplicateOrigin,
		Text:     "name already exists: $" + re.Name,
	}.WithNote("original definition here", re.OriginalOrigin))
}

func addEvalErr(diags *diagnostics.Bag, err error) {
	if ee, ok := err.(*evaluator.Error); ok {
		diags.Add(diagnostics.Message{Severity: diagnostics.Error, ID: ee.ID, Origin: ee.Origin, Text: ee.Text, Notes: ee.Notes})
		return
	}
	diags.Add(diagnostics.Message{Severity: diagnostics.Error, ID: diagnostics.InternalCompilerError, Text: err.Error()})
}
