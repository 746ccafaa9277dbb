// Package diagnostics implements the closed set of error/warning/note
// identifiers of spec.md §4.8 and §7, and renders them against the
// original source text the way spec.md §6 describes: severity tag,
// source line, and an underline/caret.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/filter-spirit/filterspirit/pkg/position"
)

// Severity is one of the three levels of spec.md §7.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// ID is the closed set of diagnostic identifiers from spec.md §4.8.
type ID string

const (
	ParseFailure               ID = "parse-failure"
	NameAlreadyExists          ID = "name-already-exists"
	NoSuchName                 ID = "no-such-name"
	NoSuchFunction             ID = "no-such-function"
	InvalidAmountOfArguments   ID = "invalid-amount-of-arguments"
	TypeMismatch               ID = "type-mismatch"
	NonHomogeneousArray        ID = "non-homogeneous-array"
	NestedArraysNotAllowed     ID = "nested-arrays-not-allowed"
	EmptySocketGroup           ID = "empty-socket-group"
	IllegalCharsInSocketGroup  ID = "illegal-characters-in-socket-group"
	InvalidSocketGroup         ID = "invalid-socket-group"
	InvalidMinimapIconSize     ID = "invalid-minimap-icon-size"
	NoMatchingConstructorFound ID = "no-matching-constructor-found"
	FailedConstructorCall      ID = "failed-constructor-call"
	ConditionRedefinition      ID = "condition-redefinition"
	LowerBoundRedefinition     ID = "lower-bound-redefinition"
	UpperBoundRedefinition     ID = "upper-bound-redefinition"
	UnknownStatement           ID = "unknown-statement"
	DeadCondition              ID = "dead-condition"
	UnknownExpression          ID = "unknown-expression"
	InvalidStatement           ID = "invalid-statement"
	AutogenForbiddenCondition  ID = "autogen-forbidden-condition"
	AutogenIncompatibleCond    ID = "autogen-incompatible-condition"
	AutogenWithoutPrice        ID = "autogen-without-price"
	PriceWithoutAutogen        ID = "price-without-autogen"
	InternalCompilerError      ID = "internal-compiler-error"
)

// NoteEntry is a secondary, auxiliary origin attached to a Message, e.g. the
// "happened inside expansion at ..." chain of spec.md §4.4/§7.
type NoteEntry struct {
	Text   string
	Origin position.Origin
}

// Message is one diagnostic: a severity, a closed identifier, a primary
// origin, human text, and zero or more secondary notes (spec.md §4.8).
type Message struct {
	Severity Severity
	ID       ID
	Origin   position.Origin
	Text     string
	Notes    []NoteEntry
}

// WithNote returns a copy of m with an additional note appended. Notes
// follow the error they annotate in discovery order (spec.md §5).
func (m Message) WithNote(text string, origin position.Origin) Message {
	m.Notes = append(append([]NoteEntry{}, m.Notes...), NoteEntry{Text: text, Origin: origin})
	return m
}

// Bag accumulates diagnostics across a single compilation, in discovery
// order (spec.md §5 "Diagnostics are emitted in the order they are
// discovered during a single-threaded depth-first walk").
type Bag struct {
	Messages []Message
}

// Add appends m to the bag.
func (b *Bag) Add(m Message) {
	b.Messages = append(b.Messages, m)
}

// HasErrors reports whether any accumulated message is an Error.
func (b *Bag) HasErrors() bool {
	for _, m := range b.Messages {
		if m.Severity == Error {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any accumulated message is a Warning.
func (b *Bag) HasWarnings() bool {
	for _, m := range b.Messages {
		if m.Severity == Warning {
			return true
		}
	}
	return false
}

// Fatal reports whether the bag, under the given
// treat-warnings-as-errors policy, represents a fatal outcome (spec.md §6
// "Exit and failure": "returns a distinguishable no-filter-produced
// outcome on any fatal error or when warnings are treated as errors").
func (b *Bag) Fatal(treatWarningsAsErrors bool) bool {
	if b.HasErrors() {
		return true
	}
	return treatWarningsAsErrors && b.HasWarnings()
}

// Render formats every message in the bag against src using the native
// excerpt format of spec.md §6: "severity tag, source file name (if
// known), one-based line/column of the primary origin, and the
// excerpted source line with an ASCII underline".
func (b *Bag) Render(filename, src string) string {
	var out strings.Builder
	for _, m := range b.Messages {
		out.WriteString(RenderMessage(m, filename, src))
		out.WriteString("\n")
	}
	return out.String()
}

// RenderMessage formats a single message against src.
func RenderMessage(m Message, filename, src string) string {
	var out strings.Builder
	line, col := position.LineCol(src, m.Origin.Begin)
	loc := fmt.Sprintf("%d:%d", line, col)
	if filename != "" {
		loc = filename + ":" + loc
	}
	fmt.Fprintf(&out, "%s: %s [%s]\n", m.Severity, m.Text, m.ID)
	fmt.Fprintf(&out, "  --> %s\n", loc)
	out.WriteString(renderExcerpt(src, m.Origin))
	for _, n := range m.Notes {
		nline, ncol := position.LineCol(src, n.Origin.Begin)
		fmt.Fprintf(&out, "  note: %s\n", n.Text)
		fmt.Fprintf(&out, "    --> %d:%d\n", nline, ncol)
		out.WriteString(renderExcerpt(src, n.Origin))
	}
	return out.String()
}

// renderExcerpt prints the source line containing origin, with an
// underline spanning the origin's width or a caret when it is a single
// point (spec.md §4.8 "Rendering prints the line number, the full source
// line, an underline across the range, and a caret under the first
// column when the range is a single point").
func renderExcerpt(src string, origin position.Origin) string {
	lineText := position.LineText(src, origin.Begin)
	_, col := position.LineCol(src, origin.Begin)

	width := origin.Len()
	if width <= 0 {
		width = 1
	}
	marker := strings.Repeat("^", 1)
	if origin.Len() > 1 {
		marker = strings.Repeat("^", origin.Len())
	}

	var out strings.Builder
	fmt.Fprintf(&out, "    %s\n", lineText)
	fmt.Fprintf(&out, "    %s%s\n", strings.Repeat(" ", col-1), marker)
	return out.String()
}
