// Package parser completes the DSL parser the teacher repo stubbed out
// (pkg/graph's ParseConstraintExpr/ConstraintAST — "TODO: Implement
// full DSL parser with proper tokenization" / "TODO: Implement full
// recursive descent parser or use a parsing library"): a shared
// tokenizer and two recursive-descent parsers, one per grammar of
// spec.md §4.1.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/filter-spirit/filterspirit/pkg/position"
)

// TokenKind classifies a lexical token. Both the SF and RF grammars
// share the same token set (spec.md §4.1 "Two grammars share the same
// fundamental tokens").
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokIdent       // bare word: a keyword, enum literal, or socket-spec
	TokDollarIdent // $name
	TokInt
	TokFrac
	TokString
	TokLess
	TokLessEqual
	TokEqual
	TokExactEqual
	TokGreater
	TokGreaterEqual
	TokNotEqual
	TokLBrace
	TokRBrace
)

// Token is one lexed token together with its source range.
type Token struct {
	Kind TokenKind
	Text string
	Orig position.Origin
}

// Lexer tokenizes SF or RF source text (the grammars share a skipper
// and token set, spec.md §4.1). It is a simple single-pass scanner with
// one token of lookahead via Peek.
type Lexer struct {
	src    string
	pos    int
	peeked *Token
}

// NewLexer returns a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}
	return *l.peeked
}

// Next consumes and returns the next token.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.scan()
}

func (l *Lexer) skipSkipper() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '-'
}

func isSocketColorLetter(c byte) bool {
	switch c {
	case 'R', 'G', 'B', 'W', 'A', 'D':
		return true
	default:
		return false
	}
}

func (l *Lexer) scan() Token {
	l.skipSkipper()
	start := l.pos
	if l.pos >= len(l.src) {
		return Token{Kind: TokEOF, Orig: position.Origin{Begin: start, End: start}}
	}

	c := l.src[l.pos]

	switch c {
	case '{':
		l.pos++
		return Token{Kind: TokLBrace, Text: "{", Orig: position.Origin{Begin: start, End: l.pos}}
	case '}':
		l.pos++
		return Token{Kind: TokRBrace, Text: "}", Orig: position.Origin{Begin: start, End: l.pos}}
	case '<':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
			return Token{Kind: TokLessEqual, Text: "<=", Orig: position.Origin{Begin: start, End: l.pos}}
		}
		return Token{Kind: TokLess, Text: "<", Orig: position.Origin{Begin: start, End: l.pos}}
	case '>':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
			return Token{Kind: TokGreaterEqual, Text: ">=", Orig: position.Origin{Begin: start, End: l.pos}}
		}
		return Token{Kind: TokGreater, Text: ">", Orig: position.Origin{Begin: start, End: l.pos}}
	case '=':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
			return Token{Kind: TokExactEqual, Text: "==", Orig: position.Origin{Begin: start, End: l.pos}}
		}
		return Token{Kind: TokEqual, Text: "=", Orig: position.Origin{Begin: start, End: l.pos}}
	case '!':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '=' {
			l.pos++
			return Token{Kind: TokNotEqual, Text: "!=", Orig: position.Origin{Begin: start, End: l.pos}}
		}
		// no bare '!' in the grammar; emit as its own single-rune ident so
		// the parser can report an unexpected-token error at this origin.
		return Token{Kind: TokIdent, Text: "!", Orig: position.Origin{Begin: start, End: l.pos}}
	case '"':
		return l.scanString(start)
	case '$':
		l.pos++
		identStart := l.pos
		for l.pos < len(l.src) {
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if !isIdentCont(r) {
				break
			}
			l.pos += size
		}
		return Token{Kind: TokDollarIdent, Text: l.src[identStart:l.pos], Orig: position.Origin{Begin: start, End: l.pos}}
	}

	if c >= '0' && c <= '9' || (c == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] >= '0' && l.src[l.pos+1] <= '9') {
		return l.scanNumber(start)
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	if isIdentStart(r) {
		for l.pos < len(l.src) {
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if !isIdentCont(r) {
				break
			}
			l.pos += size
		}
		return Token{Kind: TokIdent, Text: l.src[start:l.pos], Orig: position.Origin{Begin: start, End: l.pos}}
	}

	// Unrecognized byte: consume one rune so the parser sees forward
	// progress and can report parse-failure at this origin.
	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	return Token{Kind: TokIdent, Text: l.src[start:l.pos], Orig: position.Origin{Begin: start, End: l.pos}}
}

func (l *Lexer) scanString(start int) Token {
	l.pos++ // opening quote
	for l.pos < len(l.src) && l.src[l.pos] != '"' {
		// backslash escapes are not interpreted, spec.md §6
		l.pos++
	}
	if l.pos < len(l.src) {
		l.pos++ // closing quote
	}
	text := l.src[start:l.pos]
	text = strings.TrimPrefix(text, "\"")
	text = strings.TrimSuffix(text, "\"")
	return Token{Kind: TokString, Text: text, Orig: position.Origin{Begin: start, End: l.pos}}
}

func (l *Lexer) scanNumber(start int) Token {
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}
	kind := TokInt
	if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && l.src[l.pos+1] >= '0' && l.src[l.pos+1] <= '9' {
		kind = TokFrac
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
	}
	// A digit run immediately followed by socket-color letters, with no
	// intervening whitespace, is a socket-spec literal like "2RG"
	// (spec.md §4.3 "Socket-spec literals are parsed as [count]LETTERS").
	if kind == TokInt {
		letterStart := l.pos
		for l.pos < len(l.src) && isSocketColorLetter(l.src[l.pos]) {
			l.pos++
		}
		if l.pos > letterStart {
			return Token{Kind: TokIdent, Text: l.src[start:l.pos], Orig: position.Origin{Begin: start, End: l.pos}}
		}
	}
	return Token{Kind: kind, Text: l.src[start:l.pos], Orig: position.Origin{Begin: start, End: l.pos}}
}
