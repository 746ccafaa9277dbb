package parser

import "github.com/filter-spirit/filterspirit/pkg/position"

// Failure is the parse-failure data of spec.md §4.1 "Parser contract":
// the failing position, the rule name that was expected, and a snapshot
// of the input for diagnostic formatting.
type Failure struct {
	Origin  position.Origin
	Rule    string
	Input   string
}

func (f *Failure) Error() string {
	return "parse failure: expected " + f.Rule
}

func newFailure(src string, orig position.Origin, rule string) *Failure {
	return &Failure{Origin: orig, Rule: rule, Input: src}
}
