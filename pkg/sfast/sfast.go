// Package sfast defines the AST node types for the SF source grammar
// (spec.md §4.1 "SF grammar"): definitions, statements, conditions,
// actions, and the primitive expressions that make up a value sequence.
// Nodes are plain structs, no visitor machinery — a direct descendant
// only needs a type switch to walk them (the teacher's own preference
// for data-shaped trees over interface-heavy hierarchies).
package sfast

import "github.com/filter-spirit/filterspirit/pkg/position"

// Ident is a `$name` reference or definition target.
type Ident struct {
	Name   string
	Origin position.Origin
}

// Expr is one primitive expression appearing in a value sequence: a
// literal token or a name reference. The evaluator (pkg/evaluator)
// resolves a sequence of these into exactly one object (spec.md §4.3).
type Expr interface {
	exprNode()
	Origin() position.Origin
}

// Literal is a single scalar token: integer, fractional, string,
// boolean, or bare enum-keyword identifier (Rarity/Shape/Suit/etc. carry
// their keyword as Text).
type Literal struct {
	Kind LiteralKind
	Text string // raw source text, e.g. `"Chaos Orb"`, `5`, `Red`
	Orig position.Origin
}

func (Literal) exprNode()                      {}
func (l Literal) Origin() position.Origin       { return l.Orig }

// LiteralKind distinguishes the lexical shape of a Literal so the
// evaluator doesn't need to re-lex it.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFrac
	LitString
	LitBool
	LitKeyword // an enum keyword such as Red, Circle, Temp, Shaper
	LitSocketSpec
)

// NameRef is a `$foo` reference inside a value sequence.
type NameRef struct {
	Name Ident
}

func (NameRef) exprNode()                { }
func (n NameRef) Origin() position.Origin { return n.Name.Origin }

// Definition binds `$name = <sequence>` (a value definition) or
// `$name = { ... }` (a block tree definition), spec.md §4.1.
type Definition struct {
	Name   Ident
	Values []Expr      // non-nil when this is a value definition
	Tree   []Statement // non-nil when this is a block-tree definition
	Orig   position.Origin
}

// Statement is one entry in a statement sequence: an action, a
// visibility statement, a nested rule block, an Expand, an import, or a
// condition (only legal immediately before a nested block).
type Statement interface {
	stmtNode()
	Origin() position.Origin
}

// ConditionStmt is a single condition clause, e.g. `ItemLevel >= 70`.
// It is only valid as one of a run of conditions immediately preceding
// a NestedBlock (spec.md §4.4 "Conditions may only be followed by a
// nested block").
type ConditionStmt struct {
	Keyword string
	Op      OpToken
	Operands []Expr
	Orig    position.Origin
}

func (ConditionStmt) stmtNode()                { }
func (c ConditionStmt) Origin() position.Origin { return c.Orig }

// OpToken is the lexical comparison-operator token (spec.md §4.1):
// `<`, `<=`, `=`, `==`, `>`, `>=`, `!=`, or absent (OpNone).
type OpToken int

const (
	OpNone OpToken = iota
	OpLessTok
	OpLessEqualTok
	OpEqualTok
	OpExactEqualTok
	OpGreaterTok
	OpGreaterEqualTok
	OpNotEqualTok
)

// ActionStmt is a single action clause, e.g. `SetTextColor 255 0 0`.
// Actions must precede any condition in the same scope (spec.md §4.4).
type ActionStmt struct {
	Keyword  string
	Operands []Expr
	Orig     position.Origin
}

func (ActionStmt) stmtNode()                { }
func (a ActionStmt) Origin() position.Origin { return a.Orig }

// Visibility is the lexical show/hide/minimal keyword.
type Visibility int

const (
	VisShow Visibility = iota
	VisHide
	VisMinimal
)

// VisibilityStmt finalizes a block: a visibility keyword optionally
// followed by `Continue` (spec.md §4.4).
type VisibilityStmt struct {
	Visibility     Visibility
	HasContinue    bool
	ContinueOrigin position.Origin
	Orig           position.Origin
}

func (VisibilityStmt) stmtNode()                { }
func (v VisibilityStmt) Origin() position.Origin { return v.Orig }

// NestedBlock is zero or more ConditionStmts followed by `{
// statement* }` (spec.md §4.1). Conditions is the run of condition
// clauses that introduced this block; Body is everything inside the
// braces.
type NestedBlock struct {
	Conditions []ConditionStmt
	Body       []Statement
	Orig       position.Origin
}

func (NestedBlock) stmtNode()                { }
func (n NestedBlock) Origin() position.Origin { return n.Orig }

// ExpandStmt is `Expand $name` (spec.md §4.4 "Expansion").
type ExpandStmt struct {
	Name Ident
	Orig position.Origin
}

func (ExpandStmt) stmtNode()                { }
func (e ExpandStmt) Origin() position.Origin { return e.Orig }

// ImportStmt is an import directive (spec.md §4.4 "Import statement").
type ImportStmt struct {
	Path string
	Orig position.Origin
}

func (ImportStmt) stmtNode()                { }
func (i ImportStmt) Origin() position.Origin { return i.Orig }

// File is the root of a parsed SF source: its definitions followed by
// its top-level statements (spec.md §4.1 "Top level is a sequence of
// definitions followed by a sequence of statements").
type File struct {
	Definitions []Definition
	Statements  []Statement
}
