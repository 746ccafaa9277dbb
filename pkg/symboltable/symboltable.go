// Package symboltable implements the single-pass top-level symbol
// resolver of spec.md §4.2: two maps keyed by identifier — evaluated
// objects and unexpanded statement trees — with redefinition detection
// across both.
package symboltable

import (
	"github.com/filter-spirit/filterspirit/pkg/object"
	"github.com/filter-spirit/filterspirit/pkg/position"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
)

// Tree is an unexpanded block-definition body, kept for late expansion
// by `Expand $name` (spec.md §4.4).
type Tree struct {
	Statements []sfast.Statement
	Origin     position.Origin
}

// Table holds the two symbol maps of spec.md §3 "Symbol table":
// fully-evaluated objects and unexpanded trees. A name may appear in at
// most one of the two maps.
type Table struct {
	objects map[string]object.Named
	trees   map[string]Tree
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{objects: map[string]object.Named{}, trees: map[string]Tree{}}
}

// Redefinition describes a name collision: the origin of the original
// binding and the origin of the attempted duplicate (spec.md §4.2
// "fail with name-already-exists carrying the original-name origin and
// the duplicate-name origin").
type Redefinition struct {
	Name            string
	OriginalOrigin  position.Origin
	DuplicateOrigin position.Origin
}

func (r *Redefinition) Error() string {
	return "name already exists: $" + r.Name
}

// originOf returns the origin at which name was first bound, or
// position.None if it is unbound.
func (t *Table) originOf(name string) (position.Origin, bool) {
	if n, ok := t.objects[name]; ok {
		return n.NameOrigin, true
	}
	if tr, ok := t.trees[name]; ok {
		return tr.Origin, true
	}
	return position.None, false
}

// DefineObject inserts an evaluated object binding. It fails with a
// *Redefinition if name is already bound in either map.
func (t *Table) DefineObject(name string, obj object.Object, nameOrigin position.Origin) error {
	if orig, bound := t.originOf(name); bound {
		return &Redefinition{Name: name, OriginalOrigin: orig, DuplicateOrigin: nameOrigin}
	}
	t.objects[name] = object.Named{Name: name, Object: obj, NameOrigin: nameOrigin}
	return nil
}

// DefineTree inserts an unexpanded block-tree binding. It fails with a
// *Redefinition if name is already bound in either map.
func (t *Table) DefineTree(name string, tree Tree, nameOrigin position.Origin) error {
	if orig, bound := t.originOf(name); bound {
		return &Redefinition{Name: name, OriginalOrigin: orig, DuplicateOrigin: nameOrigin}
	}
	tree.Origin = nameOrigin
	t.trees[name] = tree
	return nil
}

// LookupObject returns the object bound to name, if any.
func (t *Table) LookupObject(name string) (object.Named, bool) {
	n, ok := t.objects[name]
	return n, ok
}

// LookupTree returns the statement tree bound to name, if any (used by
// the compiler to resolve `Expand $name`, spec.md §4.4).
func (t *Table) LookupTree(name string) (Tree, bool) {
	tr, ok := t.trees[name]
	return tr, ok
}

// Len returns the combined count of object and tree bindings, used by
// the "symbol uniqueness" testable property (spec.md §8): no two
// bindings may share a name across both maps, so this count must equal
// the number of distinct names ever successfully defined.
func (t *Table) Len() int {
	return len(t.objects) + len(t.trees)
}
