// Package toml implements a recursive-descent parser for the subset of
// TOML celes configuration files use, built directly on pkgs/lexer's
// base tokens rather than a grammar-generator. Inline arrays, inline
// tables, Unicode escapes, dates/times and inf/nan all surface as an
// ErrorUnimplemented diagnostic rather than silently misparsing.
package toml

import (
	"github.com/LainAmongYou/celes/pkgs/diagnostics"
	"github.com/LainAmongYou/celes/pkgs/lexer"
	"github.com/LainAmongYou/celes/pkgs/value"
)

// pendingHeader tracks the table a [header] or [[header]] opened, so it
// can be attached to the tree once its contents are fully read (at the
// next header, or at end of file).
type pendingHeader struct {
	path    []string
	isArray bool
	table   *value.Table
	row     uint32
	col     uint32
}

// Parser holds the state of a single parse of one TOML document.
type Parser struct {
	file  string
	lex   *lexer.Lexer
	diags *diagnostics.Sink

	root    *value.Table
	curTab  *value.Table
	pending *pendingHeader
}

// NewParser returns a parser positioned at the start of src. file is
// used only for diagnostic messages.
func NewParser(file, src string) *Parser {
	root := value.NewTable()
	return &Parser{
		file:   file,
		lex:    lexer.New(src),
		diags:  diagnostics.New(),
		root:   root,
		curTab: root,
	}
}

// Diagnostics returns the sink every error encountered during Parse was
// recorded to, success or not.
func (p *Parser) Diagnostics() *diagnostics.Sink {
	return p.diags
}

// Parse consumes the whole document and returns the root table. On
// failure the partially built tree is released and the first error is
// returned; diagnostics remain available via Diagnostics.
func (p *Parser) Parse() (*value.Table, error) {
	if err := p.parseDocument(); err != nil {
		p.root.Release()
		return nil, err
	}
	return p.root, nil
}

func (p *Parser) parseDocument() error {
	for {
		tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
		if !ok {
			break
		}
		switch tok.Ch {
		case '[':
			if err := p.parseTableHeader(); err != nil {
				return err
			}
			continue
		case '#':
			p.parseComment()
			continue
		}
		if err := p.parseKeyPair(p.curTab); err != nil {
			return err
		}
	}
	if p.pending != nil {
		if err := p.attachPending(); err != nil {
			return err
		}
	}
	return nil
}

// expectEOL requires the rest of the line to be blank, consuming
// trailing whitespace up to and including the newline.
func (p *Parser) expectEOL() error {
	for {
		tok, ok := p.lex.GetToken(lexer.ParseWhitespace)
		if !ok {
			return p.errEOF(p.lex.Row(), p.lex.Col())
		}
		if tok.WSType == lexer.WhitespaceNewline {
			return nil
		}
		if tok.Type != lexer.TokenWhitespace {
			return p.errUnexpectedText(tok.Row, tok.Col)
		}
	}
}

// passWhitespace skips leading whitespace, leaving the cursor at the
// start of the next token, and reports whether there's any input left.
func (p *Parser) passWhitespace() bool {
	tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return false
	}
	p.lex.ResetTo(tok)
	return true
}

func (p *Parser) expectNextCharIsDigit() error {
	ch, ok := p.lex.PeekChar()
	if !ok {
		return p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if ch.Type != lexer.TokenDigit {
		return p.errUnexpectedText(ch.Row, ch.Col)
	}
	return nil
}

func (p *Parser) expectNextChar(want byte, mode lexer.Mode) error {
	tok, ok := p.lex.GetToken(mode)
	if !ok {
		return p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if tok.PassedNewline {
		return p.errEOL(tok.Row, tok.Col)
	}
	if tok.Ch != rune(want) {
		return p.errUnexpectedText(tok.Row, tok.Col)
	}
	return nil
}

func (p *Parser) parseEscapeCode() (string, error) {
	ch, ok := p.lex.GetChar()
	if !ok {
		return "", p.errEOF(p.lex.Row(), p.lex.Col())
	}
	switch ch.Ch {
	case 'b':
		return "\b", nil
	case 't':
		return "\t", nil
	case 'n':
		return "\n", nil
	case 'f':
		return "\f", nil
	case 'r':
		return "\r", nil
	case '"':
		return "\"", nil
	case '\\':
		return "\\", nil
	case 'u', 'U':
		return "", p.errUnimplemented(ch.Row, ch.Col, "unicode escape codes")
	default:
		return "", p.errUnexpectedText(ch.Row, ch.Col)
	}
}

func (p *Parser) parseComment() {
	for {
		tok, ok := p.lex.GetToken(lexer.ParseWhitespace)
		if !ok {
			return
		}
		if tok.WSType == lexer.WhitespaceNewline {
			return
		}
	}
}
