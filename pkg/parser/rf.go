package parser

import (
	"github.com/filter-spirit/filterspirit/pkg/position"
	"github.com/filter-spirit/filterspirit/pkg/rfast"
)

var rfVisibilityKeywords = map[string]rfast.Visibility{
	"Show": rfast.VisShow, "Hide": rfast.VisHide, "Minimal": rfast.VisMinimal,
}

// RFResult is the success value of ParseRF.
type RFResult struct {
	File rfast.File
}

// ParseRF parses native RF source text (spec.md §4.1 "RF grammar"): a
// flat sequence of blocks, each one a visibility keyword followed by
// condition and action lines. No nesting, no names, no expressions.
func ParseRF(src string) (RFResult, error) {
	lex := NewLexer(src)
	var blocks []rfast.Block
	for lex.Peek().Kind != TokEOF {
		b, err := parseRFBlock(src, lex)
		if err != nil {
			return RFResult{}, err
		}
		blocks = append(blocks, b)
	}
	return RFResult{File: rfast.File{Blocks: blocks}}, nil
}

func parseRFBlock(src string, lex *Lexer) (rfast.Block, error) {
	visTok := lex.Next()
	vis, ok := rfVisibilityKeywords[visTok.Text]
	if visTok.Kind != TokIdent || !ok {
		return rfast.Block{}, newFailure(src, visTok.Orig, "'Show', 'Hide', or 'Minimal'")
	}

	block := rfast.Block{Visibility: vis, Orig: visTok.Orig}

	for {
		next := lex.Peek()
		if next.Kind != TokIdent {
			break
		}
		if _, isVis := rfVisibilityKeywords[next.Text]; isVis {
			break // next block begins
		}
		if next.Text == "Continue" {
			ct := lex.Next()
			block.HasContinue = true
			block.ContinueOrig = ct.Orig
			block.Orig = position.Span(block.Orig, ct.Orig)
			continue
		}
		if actionKeywords[next.Text] {
			a, err := parseRFActionLine(src, lex)
			if err != nil {
				return rfast.Block{}, err
			}
			block.Actions = append(block.Actions, a)
			block.Orig = position.Span(block.Orig, a.Orig)
			continue
		}
		c, err := parseRFConditionLine(src, lex)
		if err != nil {
			return rfast.Block{}, err
		}
		block.Conditions = append(block.Conditions, c)
		block.Orig = position.Span(block.Orig, c.Orig)
	}
	return block, nil
}

func parseRFConditionLine(src string, lex *Lexer) (rfast.ConditionLine, error) {
	kwTok := lex.Next()
	op := rfast.OpNone
	switch lex.Peek().Kind {
	case TokLess:
		lex.Next()
		op = rfast.OpLess
	case TokLessEqual:
		lex.Next()
		op = rfast.OpLessEqual
	case TokEqual:
		lex.Next()
		op = rfast.OpEqual
	case TokExactEqual:
		lex.Next()
		op = rfast.OpExactEqual
	case TokGreater:
		lex.Next()
		op = rfast.OpGreater
	case TokGreaterEqual:
		lex.Next()
		op = rfast.OpGreaterEqual
	case TokNotEqual:
		lex.Next()
		op = rfast.OpNotEqual
	}
	operands, last, err := parseRFOperands(src, lex)
	if err != nil {
		return rfast.ConditionLine{}, err
	}
	return rfast.ConditionLine{Keyword: kwTok.Text, Op: op, Operands: operands, Orig: position.Span(kwTok.Orig, last)}, nil
}

func parseRFActionLine(src string, lex *Lexer) (rfast.ActionLine, error) {
	kwTok := lex.Next()
	operands, last, err := parseRFOperands(src, lex)
	if err != nil {
		return rfast.ActionLine{}, err
	}
	return rfast.ActionLine{Keyword: kwTok.Text, Operands: operands, Orig: position.Span(kwTok.Orig, last)}, nil
}

func parseRFOperands(src string, lex *Lexer) ([]rfast.Operand, position.Origin, error) {
	var out []rfast.Operand
	last := position.None
	for {
		t := lex.Peek()
		if len(out) > 0 {
			for i := last.End; i < t.Orig.Begin; i++ {
				if src[i] == '\n' {
					return out, last, nil // the next line starts a new condition or action
				}
			}
		}
		var kind rfast.OperandKind
		switch t.Kind {
		case TokInt:
			kind = rfast.OperandInt
		case TokString:
			kind = rfast.OperandString
		case TokIdent:
			kind = rfast.OperandKeyword
		default:
			if len(out) == 0 {
				return nil, position.None, newFailure(src, t.Orig, "condition or action operand")
			}
			return out, last, nil
		}
		lex.Next()
		out = append(out, rfast.Operand{Kind: kind, Text: t.Text, Orig: t.Orig})
		last = t.Orig
	}
}
