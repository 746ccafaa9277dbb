// Package rfast defines the AST node types for the RF native flat
// grammar (spec.md §4.1 "RF grammar"): a sequence of blocks, each one a
// visibility keyword followed by condition and action lines. No
// nesting, no names, no `$`, no expressions — every operand is a
// literal.
package rfast

import "github.com/filter-spirit/filterspirit/pkg/position"

// Operand is a single literal RF operand: an integer, a quoted string,
// a bare enum keyword, or a socket-spec token.
type Operand struct {
	Kind OperandKind
	Text string
	Orig position.Origin
}

// OperandKind distinguishes the lexical shape of an Operand.
type OperandKind int

const (
	OperandInt OperandKind = iota
	OperandString
	OperandKeyword
	OperandSocketSpec
)

// Op is the lexical comparison operator on a condition line; absent
// means "no operator written" (spec.md §4.1).
type Op int

const (
	OpNone Op = iota
	OpLess
	OpLessEqual
	OpEqual
	OpExactEqual
	OpGreater
	OpGreaterEqual
	OpNotEqual
)

// ConditionLine is one tab-prefixed condition line inside a block, e.g.
// `\tItemLevel >= 70` (spec.md §6 "Each condition and action is on its
// own line prefixed by a tab").
type ConditionLine struct {
	Keyword  string
	Op       Op
	Operands []Operand
	Orig     position.Origin
}

// ActionLine is one tab-prefixed action line inside a block, e.g.
// `\tSetTextColor 255 0 0`.
type ActionLine struct {
	Keyword  string
	Operands []Operand
	Orig     position.Origin
}

// Visibility is the lexical show/hide/minimal keyword that opens a
// block.
type Visibility int

const (
	VisShow Visibility = iota
	VisHide
	VisMinimal
)

// Block is one RF native filter block: a visibility line, its
// condition lines, its action lines (kept in two separate slices, so
// the interleaving of conditions and actions in the source is not
// recorded), and an optional `Continue` line.
type Block struct {
	Visibility  Visibility
	Conditions  []ConditionLine
	Actions     []ActionLine
	HasContinue bool
	ContinueOrig position.Origin
	Orig        position.Origin
}

// File is the root of a parsed RF source: an ordered sequence of
// blocks (spec.md §3 "Flat filter").
type File struct {
	Blocks []Block
}
