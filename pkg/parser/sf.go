package parser

import (
	"github.com/filter-spirit/filterspirit/pkg/condition"
	"github.com/filter-spirit/filterspirit/pkg/position"
	"github.com/filter-spirit/filterspirit/pkg/sfast"
)

var actionKeywords = map[string]bool{
	"SetBorderColor": true, "SetTextColor": true, "SetBackgroundColor": true,
	"SetFontSize": true, "PlayAlertSound": true, "PlayAlertSoundPositional": true,
	"CustomAlertSound": true, "EnableDropSound": true, "DisableDropSound": true,
	"MinimapIcon": true, "PlayEffect": true,
}

var visibilityKeywords = map[string]sfast.Visibility{
	"Show": sfast.VisShow, "Hide": sfast.VisHide, "Minimal": sfast.VisMinimal,
}

// SFResult is the success value of ParseSF: the parsed file. Every
// sfast node already carries its own origin directly, which serves the
// same "resolve a node back to its source range" role spec.md §4.1
// asks of a side lookup table, without the extra indirection of opaque
// tags.
type SFResult struct {
	File sfast.File
}

// sfParser holds the shared lexer state for one ParseSF call.
type sfParser struct {
	lex *Lexer
	src string
}

// ParseSF parses SF source text (spec.md §4.1 "SF grammar"): a
// sequence of definitions followed by a sequence of statements. The
// first encountered error stops parsing (spec.md "Error handling").
func ParseSF(src string) (SFResult, error) {
	p := &sfParser{lex: NewLexer(src), src: src}

	var defs []sfast.Definition
	for p.lex.Peek().Kind == TokDollarIdent {
		d, err := p.parseDefinition()
		if err != nil {
			return SFResult{}, err
		}
		defs = append(defs, d)
	}

	stmts, err := p.parseStatements(TokEOF)
	if err != nil {
		return SFResult{}, err
	}

	return SFResult{File: sfast.File{Definitions: defs, Statements: stmts}}, nil
}

func (p *sfParser) parseDefinition() (sfast.Definition, error) {
	nameTok := p.lex.Next() // TokDollarIdent
	name := sfast.Ident{Name: nameTok.Text, Origin: nameTok.Orig}

	eq := p.lex.Next()
	if eq.Kind != TokEqual {
		return sfast.Definition{}, newFailure(p.src, eq.Orig, "'=' in definition")
	}

	if p.lex.Peek().Kind == TokLBrace {
		p.lex.Next()
		body, err := p.parseStatements(TokRBrace)
		if err != nil {
			return sfast.Definition{}, err
		}
		rb := p.lex.Next()
		if rb.Kind != TokRBrace {
			return sfast.Definition{}, newFailure(p.src, rb.Orig, "'}' closing block definition")
		}
		return sfast.Definition{Name: name, Tree: body, Orig: position.Span(nameTok.Orig, rb.Orig)}, nil
	}

	values, last, err := p.parseValueSequence()
	if err != nil {
		return sfast.Definition{}, err
	}
	return sfast.Definition{Name: name, Values: values, Orig: position.Span(nameTok.Orig, last)}, nil
}

// parseValueSequence consumes one or more primitive expressions up to
// (but not including) the next `$name`, keyword, or brace — i.e. the
// value-position sequence of spec.md §4.3.
func (p *sfParser) parseValueSequence() ([]sfast.Expr, position.Origin, error) {
	var exprs []sfast.Expr
	last := position.None
	for {
		k := p.lex.Peek().Kind
		if k == TokDollarIdent && len(exprs) > 0 {
			// a bare $name starts the NEXT definition, not a continuation
			break
		}
		if k != TokInt && k != TokFrac && k != TokString && k != TokIdent && k != TokDollarIdent {
			break
		}
		if k == TokIdent {
			text := p.lex.Peek().Text
			_, isVis := visibilityKeywords[text]
			_, isProp := condition.PropertyByKeyword(text)
			if isVis || isProp || actionKeywords[text] || condition.IsDeadConditionKeyword(text) ||
				text == "Autogen" || text == "Expand" || text == "Import" || text == "Continue" {
				break // a statement keyword starts the next statement
			}
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, position.None, err
		}
		exprs = append(exprs, e)
		last = e.Origin()
	}
	if len(exprs) == 0 {
		t := p.lex.Peek()
		return nil, position.None, newFailure(p.src, t.Orig, "value expression")
	}
	return exprs, last, nil
}

func (p *sfParser) parseExpr() (sfast.Expr, error) {
	t := p.lex.Next()
	switch t.Kind {
	case TokDollarIdent:
		return sfast.NameRef{Name: sfast.Ident{Name: t.Text, Origin: t.Orig}}, nil
	case TokInt:
		return sfast.Literal{Kind: sfast.LitInt, Text: t.Text, Orig: t.Orig}, nil
	case TokFrac:
		return sfast.Literal{Kind: sfast.LitFrac, Text: t.Text, Orig: t.Orig}, nil
	case TokString:
		return sfast.Literal{Kind: sfast.LitString, Text: t.Text, Orig: t.Orig}, nil
	case TokIdent:
		if t.Text == "True" || t.Text == "False" {
			return sfast.Literal{Kind: sfast.LitBool, Text: t.Text, Orig: t.Orig}, nil
		}
		return sfast.Literal{Kind: sfast.LitKeyword, Text: t.Text, Orig: t.Orig}, nil
	default:
		return nil, newFailure(p.src, t.Orig, "value expression")
	}
}

// parseStatements parses statements until stop (TokRBrace or TokEOF).
func (p *sfParser) parseStatements(stop TokenKind) ([]sfast.Statement, error) {
	var stmts []sfast.Statement
	var pendingConds []sfast.ConditionStmt
	for {
		next := p.lex.Peek()
		if next.Kind == stop {
			if len(pendingConds) > 0 {
				return nil, newFailure(p.src, next.Orig, "nested block after condition")
			}
			return stmts, nil
		}
		if next.Kind == TokEOF && stop == TokRBrace {
			return nil, newFailure(p.src, next.Orig, "'}'")
		}
		if next.Kind != TokIdent {
			return nil, newFailure(p.src, next.Orig, "statement")
		}

		if vis, isVis := visibilityKeywords[next.Text]; isVis {
			p.lex.Next()
			orig := next.Orig
			hasContinue := false
			contOrig := position.None
			if p.lex.Peek().Kind == TokIdent && p.lex.Peek().Text == "Continue" {
				ct := p.lex.Next()
				hasContinue = true
				contOrig = ct.Orig
				orig = position.Span(orig, ct.Orig)
			}
			vstmt := sfast.VisibilityStmt{Visibility: vis, HasContinue: hasContinue, ContinueOrigin: contOrig, Orig: orig}
			if len(pendingConds) > 0 {
				nb := sfast.NestedBlock{Conditions: pendingConds, Body: []sfast.Statement{vstmt}, Orig: position.Span(pendingConds[0].Orig, orig)}
				stmts = append(stmts, nb)
				pendingConds = nil
			} else {
				stmts = append(stmts, vstmt)
			}
			continue
		}

		if next.Text == "Expand" {
			if len(pendingConds) > 0 {
				return nil, newFailure(p.src, next.Orig, "nested block after condition")
			}
			p.lex.Next()
			nameTok := p.lex.Next()
			if nameTok.Kind != TokDollarIdent {
				return nil, newFailure(p.src, nameTok.Orig, "'$name' after Expand")
			}
			stmts = append(stmts, sfast.ExpandStmt{
				Name: sfast.Ident{Name: nameTok.Text, Origin: nameTok.Orig},
				Orig: position.Span(next.Orig, nameTok.Orig),
			})
			continue
		}

		if next.Text == "Import" {
			if len(pendingConds) > 0 {
				return nil, newFailure(p.src, next.Orig, "nested block after condition")
			}
			p.lex.Next()
			pathTok := p.lex.Next()
			if pathTok.Kind != TokString {
				return nil, newFailure(p.src, pathTok.Orig, "quoted path after Import")
			}
			stmts = append(stmts, sfast.ImportStmt{Path: pathTok.Text, Orig: position.Span(next.Orig, pathTok.Orig)})
			continue
		}

		if actionKeywords[next.Text] {
			if len(pendingConds) > 0 {
				return nil, newFailure(p.src, next.Orig, "action before condition in same scope")
			}
			a, err := p.parseAction()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, a)
			continue
		}

		_, isProperty := condition.PropertyByKeyword(next.Text)
		if !isProperty && next.Text != "Autogen" && !condition.IsDeadConditionKeyword(next.Text) {
			return nil, newFailure(p.src, next.Orig, "known statement keyword")
		}

		c, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		pendingConds = append(pendingConds, c)

		if p.lex.Peek().Kind == TokLBrace {
			p.lex.Next()
			body, err := p.parseStatements(TokRBrace)
			if err != nil {
				return nil, err
			}
			rb := p.lex.Next()
			if rb.Kind != TokRBrace {
				return nil, newFailure(p.src, rb.Orig, "'}' closing nested block")
			}
			nb := sfast.NestedBlock{Conditions: pendingConds, Body: body, Orig: position.Span(pendingConds[0].Orig, rb.Orig)}
			stmts = append(stmts, nb)
			pendingConds = nil
		}
	}
}

func (p *sfParser) parseCondition() (sfast.ConditionStmt, error) {
	kwTok := p.lex.Next()
	op := sfast.OpNone
	switch p.lex.Peek().Kind {
	case TokLess:
		p.lex.Next()
		op = sfast.OpLessTok
	case TokLessEqual:
		p.lex.Next()
		op = sfast.OpLessEqualTok
	case TokEqual:
		p.lex.Next()
		op = sfast.OpEqualTok
	case TokExactEqual:
		p.lex.Next()
		op = sfast.OpExactEqualTok
	case TokGreater:
		p.lex.Next()
		op = sfast.OpGreaterTok
	case TokGreaterEqual:
		p.lex.Next()
		op = sfast.OpGreaterEqualTok
	case TokNotEqual:
		p.lex.Next()
		op = sfast.OpNotEqualTok
	}
	operands, last, err := p.parseValueSequence()
	if err != nil {
		return sfast.ConditionStmt{}, err
	}
	orig := position.Span(kwTok.Orig, last)
	return sfast.ConditionStmt{Keyword: kwTok.Text, Op: op, Operands: operands, Orig: orig}, nil
}

func (p *sfParser) parseAction() (sfast.ActionStmt, error) {
	kwTok := p.lex.Next()
	operands, last, err := p.parseValueSequence()
	if err != nil {
		return sfast.ActionStmt{}, err
	}
	return sfast.ActionStmt{Keyword: kwTok.Text, Operands: operands, Orig: position.Span(kwTok.Orig, last)}, nil
}
