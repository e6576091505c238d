package toml

import (
	"strings"

	"github.com/LainAmongYou/celes/pkgs/lexer"
	"github.com/LainAmongYou/celes/pkgs/value"
)

// parseSingularIdentifier reads one dotted-key segment: either a quoted
// string, or a bare run of alphanumeric/underscore/hyphen codepoints
// terminated by delimiter, a dot, or (after the first base token)
// any whitespace.
func (p *Parser) parseSingularIdentifier(delimiter byte) (string, error) {
	peeked, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return "", p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if peeked.Ch == '"' {
		return p.parseString()
	}
	if peeked.Ch == '\'' {
		return p.parseStringLiteral()
	}

	var b strings.Builder
	first := true
	for {
		tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
		if !ok {
			return "", p.errEOF(p.lex.Row(), p.lex.Col())
		}
		if tok.PassedNewline {
			return "", p.errEOL(tok.Row, tok.Col)
		}
		if !first && tok.PassedWhitespace {
			return b.String(), nil
		}
		if tok.Ch == rune(delimiter) || tok.Ch == '.' {
			return b.String(), nil
		}
		if tok.Type != lexer.TokenAlpha && tok.Type != lexer.TokenDigit && tok.Ch != '_' && tok.Ch != '-' {
			return "", p.errUnexpectedText(tok.Row, tok.Col)
		}
		p.lex.Pass(tok)
		b.WriteString(tok.Text)
		first = false
	}
}

// parseIdentifier reads a full dotted-key path, e.g. "a.b.c", leaving
// the terminating delimiter token unconsumed for the caller.
func (p *Parser) parseIdentifier(delimiter byte) ([]string, error) {
	if delimiter == '=' && !p.passWhitespace() {
		return nil, p.errEOF(p.lex.Row(), p.lex.Col())
	}

	var path []string
	for {
		seg, err := p.parseSingularIdentifier(delimiter)
		if err != nil {
			return nil, err
		}
		path = append(path, seg)

		tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
		if !ok {
			return nil, p.errEOF(p.lex.Row(), p.lex.Col())
		}
		if tok.PassedNewline {
			return nil, p.errEOL(tok.Row, tok.Col)
		}
		if tok.Ch == '.' {
			p.lex.Pass(tok)
			next, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
			if !ok {
				return nil, p.errEOF(p.lex.Row(), p.lex.Col())
			}
			if next.PassedNewline {
				return nil, p.errEOL(next.Row, next.Col)
			}
			continue
		}
		if tok.PassedWhitespace && tok.Ch != rune(delimiter) {
			return nil, p.errUnexpectedText(tok.Row, tok.Col)
		}
		return path, nil
	}
}

// parseValue reads a single TOML value of any scalar kind. Inline
// arrays and inline tables are recognized but rejected as
// unimplemented rather than silently misparsed.
func (p *Parser) parseValue() (value.Value, error) {
	tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return value.Invalid, p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if tok.PassedNewline {
		return value.Invalid, p.errEOL(tok.Row, tok.Col)
	}

	switch {
	case tok.Text == "true":
		p.lex.Pass(tok)
		return value.Boolean(true), nil
	case tok.Text == "false":
		p.lex.Pass(tok)
		return value.Boolean(false), nil
	case tok.Ch == '[':
		return value.Invalid, p.errUnimplemented(tok.Row, tok.Col, "inline arrays")
	case tok.Ch == '{':
		return value.Invalid, p.errUnimplemented(tok.Row, tok.Col, "inline tables")
	case tok.Ch == '"':
		s, err := p.parseString()
		if err != nil {
			return value.Invalid, err
		}
		return value.String(s), nil
	case tok.Ch == '\'':
		s, err := p.parseStringLiteral()
		if err != nil {
			return value.Invalid, err
		}
		return value.String(s), nil
	case tok.Ch == '+' || tok.Ch == '-':
		return p.parseNumber()
	case tok.Text == "inf":
		return value.Invalid, p.errUnimplemented(tok.Row, tok.Col, "infinity literals")
	case tok.Text == "nan":
		return value.Invalid, p.errUnimplemented(tok.Row, tok.Col, "nan literals")
	case tok.Type == lexer.TokenDigit:
		return p.parseNumber()
	}
	return value.Invalid, p.errUnexpectedText(tok.Row, tok.Col)
}
