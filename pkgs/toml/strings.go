package toml

import (
	"strings"

	"github.com/LainAmongYou/celes/pkgs/lexer"
)

// parseString consumes a basic or multiline basic string. The opening
// quote must be the next token; PeekRaw tells basic and multiline
// apart by looking at the two raw bytes after it, since the lexer
// itself never groups three quote characters into one token.
func (p *Parser) parseString() (string, error) {
	open, ok := p.lex.GetToken(lexer.IgnoreWhitespace)
	if !ok {
		return "", p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if p.lex.PeekRaw(2) == `""` {
		p.lex.GetChar()
		p.lex.GetChar()
		return p.parseMultilineStringBody()
	}
	return p.parseBasicStringBody(open.Row, open.Col)
}

func (p *Parser) parseBasicStringBody(startRow, startCol uint32) (string, error) {
	var b strings.Builder
	for {
		tok, ok := p.lex.GetToken(lexer.ParseWhitespace)
		if !ok {
			return "", p.errEOF(startRow, startCol)
		}
		if tok.WSType == lexer.WhitespaceNewline {
			return "", p.errEOL(tok.Row, tok.Col)
		}
		switch tok.Ch {
		case '\\':
			s, err := p.parseEscapeCode()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case '"':
			return b.String(), nil
		default:
			b.WriteString(tok.Text)
		}
	}
}

func (p *Parser) parseMultilineStringBody() (string, error) {
	var b strings.Builder
	for {
		if p.lex.PeekRaw(3) == `"""` {
			for i := 0; i < 3; i++ {
				p.lex.GetChar()
			}
			return b.String(), nil
		}
		ch, ok := p.lex.GetChar()
		if !ok {
			return "", p.errEOF(p.lex.Row(), p.lex.Col())
		}
		if ch.Ch == '\\' {
			s, err := p.parseEscapeCode()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			continue
		}
		b.WriteString(ch.Text)
	}
}

// parseStringLiteral consumes a basic or multiline literal string: no
// escape processing, every byte between the quotes is taken verbatim.
func (p *Parser) parseStringLiteral() (string, error) {
	open, ok := p.lex.GetToken(lexer.IgnoreWhitespace)
	if !ok {
		return "", p.errEOF(p.lex.Row(), p.lex.Col())
	}
	if p.lex.PeekRaw(2) == "''" {
		p.lex.GetChar()
		p.lex.GetChar()
		return p.parseMultilineStringLiteralBody()
	}
	return p.parseBasicStringLiteralBody(open.Row, open.Col)
}

func (p *Parser) parseBasicStringLiteralBody(startRow, startCol uint32) (string, error) {
	var b strings.Builder
	for {
		tok, ok := p.lex.GetToken(lexer.ParseWhitespace)
		if !ok {
			return "", p.errEOF(startRow, startCol)
		}
		if tok.WSType == lexer.WhitespaceNewline {
			return "", p.errEOL(tok.Row, tok.Col)
		}
		if tok.Ch == '\'' {
			return b.String(), nil
		}
		b.WriteString(tok.Text)
	}
}

func (p *Parser) parseMultilineStringLiteralBody() (string, error) {
	var b strings.Builder
	for {
		if p.lex.PeekRaw(3) == "'''" {
			for i := 0; i < 3; i++ {
				p.lex.GetChar()
			}
			return b.String(), nil
		}
		ch, ok := p.lex.GetChar()
		if !ok {
			return "", p.errEOF(p.lex.Row(), p.lex.Col())
		}
		b.WriteString(ch.Text)
	}
}
