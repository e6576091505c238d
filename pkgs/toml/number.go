package toml

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/LainAmongYou/celes/pkgs/lexer"
	"github.com/LainAmongYou/celes/pkgs/value"
)

// parseNumber reads an integer or real, including base-prefixed
// integers (0b/0o/0x) and underscore digit separators. The base prefix
// spans two base tokens of different classification ("0" then "x"), so
// it's detected with a raw two-byte lookahead rather than off a single
// token's text.
func (p *Parser) parseNumber() (value.Value, error) {
	var sb strings.Builder
	base := 10
	foundNumber := false
	foundDecimal := false
	foundExponent := false

	tok, ok := p.lex.PeekToken(lexer.IgnoreWhitespace)
	if !ok {
		return value.Invalid, p.errEOF(p.lex.Row(), p.lex.Col())
	}
	startRow, startCol := tok.Row, tok.Col
	p.lex.ResetTo(tok)

	if tok.Ch == '-' || tok.Ch == '+' {
		p.lex.Pass(tok)
		if tok.Ch == '-' {
			sb.WriteByte('-')
		}
		tok, ok = p.lex.PeekToken(lexer.ParseWhitespace)
		if !ok {
			return value.Invalid, p.errEOF(p.lex.Row(), p.lex.Col())
		}
	}

	switch strings.ToLower(p.lex.PeekRaw(2)) {
	case "0b":
		base = 2
	case "0o":
		base = 8
	case "0x":
		base = 16
	}

	switch {
	case base != 10:
		p.lex.Pass(tok)
		p.lex.GetChar()
	case tok.Text == "inf":
		return value.Invalid, p.errUnimplemented(tok.Row, tok.Col, "infinity literals")
	case tok.Text == "nan":
		return value.Invalid, p.errUnimplemented(tok.Row, tok.Col, "nan literals")
	}

numberLoop:
	for {
		ch, ok := p.lex.PeekChar()
		if !ok {
			break numberLoop
		}

		switch ch.Type {
		case lexer.TokenWhitespace:
			if sb.Len() > 0 {
				break numberLoop
			}
		case lexer.TokenDigit:
			foundNumber = true
			sb.WriteString(ch.Text)
			if int(ch.Ch-'0') >= base {
				return value.Invalid, p.errUnexpectedText(ch.Row, ch.Col)
			}
		case lexer.TokenAlpha:
			lower := unicode.ToLower(ch.Ch)
			switch {
			case base == 10 && foundNumber && !foundExponent && lower == 'e':
				foundExponent = true
				sb.WriteByte('e')
				p.lex.Pass(ch)
				sign, ok := p.lex.PeekChar()
				if !ok {
					return value.Invalid, p.errEOF(p.lex.Row(), p.lex.Col())
				}
				if sign.Ch == '+' || sign.Ch == '-' {
					p.lex.Pass(sign)
					sb.WriteString(sign.Text)
				}
				if err := p.expectNextCharIsDigit(); err != nil {
					return value.Invalid, err
				}
				continue numberLoop
			case base == 16 && lower >= 'a' && lower <= 'f':
				sb.WriteString(ch.Text)
			case ch.Ch == '_':
				p.lex.Pass(ch)
				if err := p.expectNextCharIsDigit(); err != nil {
					return value.Invalid, err
				}
				continue numberLoop
			default:
				return value.Invalid, p.errUnexpectedText(ch.Row, ch.Col)
			}
		case lexer.TokenOther:
			switch {
			case ch.Ch == '.' && base == 10 && foundNumber && !foundDecimal && !foundExponent:
				foundDecimal = true
				sb.WriteByte('.')
				p.lex.Pass(ch)
				if err := p.expectNextCharIsDigit(); err != nil {
					return value.Invalid, err
				}
				continue numberLoop
			case (ch.Ch == '-' || ch.Ch == ':') && base == 10 && foundNumber && !foundDecimal && !foundExponent:
				return value.Invalid, p.errUnimplemented(ch.Row, ch.Col, "dates and times")
			default:
				return value.Invalid, p.errUnexpectedText(ch.Row, ch.Col)
			}
		}

		p.lex.Pass(ch)
	}

	str := sb.String()
	if str == "" {
		return value.Invalid, p.errEOF(startRow, startCol)
	}

	if foundDecimal || foundExponent {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return value.Invalid, p.errUnexpectedText(startRow, startCol)
		}
		return value.Real(f), nil
	}

	n, err := strconv.ParseInt(str, base, 64)
	if err != nil {
		return value.Invalid, p.errUnexpectedText(startRow, startCol)
	}
	return value.Integer(n), nil
}
