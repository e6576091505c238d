package lexer

import "unicode/utf8"

// Lexer tokenizes UTF-8 source text into base tokens. It borrows the
// input string rather than copying it; a zero Lexer is not usable,
// use New.
type Lexer struct {
	buf string
	row uint32
	col uint32
	pos int // current byte offset, 1:1 with (row, col)
}

// New creates a lexer positioned at the start of buf.
func New(buf string) *Lexer {
	return &Lexer{buf: buf, row: 1, col: 1}
}

func classify(ch rune) TokenType {
	switch {
	case isSpace(ch):
		return TokenWhitespace
	case isDigit(ch):
		return TokenDigit
	case isLetter(ch) || ch >= 0x80:
		return TokenAlpha
	default:
		return TokenOther
	}
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isNewline(ch rune) bool { return ch == '\r' || ch == '\n' }

func isNewlinePair(a, b rune) bool {
	return (a == '\r' && b == '\n') || (a == '\n' && b == '\r')
}

// decodeAt decodes the rune starting at byte offset pos. It returns a
// zero rune and size 0 at end of input. A malformed sequence decodes
// as utf8.RuneError advancing by one byte; real TOML input never
// exercises this path.
func (l *Lexer) decodeAt(pos int) (rune, int) {
	if pos >= len(l.buf) {
		return 0, 0
	}
	ch, size := utf8.DecodeRuneInString(l.buf[pos:])
	return ch, size
}

// getTokenInternal implements the single-pass token-forming rule: a
// run of alpha or digit codepoints of uniform classification, or a
// single codepoint of any other classification (whitespace included,
// unless mode says to skip it).
func (l *Lexer) getTokenInternal(mode Mode, pop bool) (Token, bool) {
	ignoreWS := mode == IgnoreWhitespace

	pos := l.pos
	row, col := l.row, l.col

	tokenStart := -1
	startRow, startCol := row, col
	ttype := TokenNone
	wsType := WhitespaceUnknown
	passedWS := false
	passedNL := false
	count := 0
	var outCh rune
	stop := false

	for !stop {
		ch, size := l.decodeAt(pos)
		if size == 0 {
			break
		}
		charStart := pos
		newType := classify(ch)

		if ttype == TokenNone {
			ignore := false
			if newType == TokenWhitespace {
				passedWS = true
				if isNewline(ch) {
					passedNL = true
				}
				if ignoreWS {
					ignore = true
				} else {
					switch {
					case isNewline(ch):
						wsType = WhitespaceNewline
					case ch == '\t':
						wsType = WhitespaceTab
					case ch == ' ':
						wsType = WhitespaceSpace
					}
				}
			}

			if !ignore {
				outCh = ch
				tokenStart = charStart
				ttype = newType
				startRow, startCol = row, col
				if ttype != TokenDigit && ttype != TokenAlpha {
					stop = true
				}
				count++
			}
		} else if ttype != newType {
			pos = charStart
			break
		} else {
			count++
		}

		pos = charStart + size

		if isNewline(ch) {
			nextCh, nextSize := l.decodeAt(pos)
			if isNewlinePair(ch, nextCh) {
				pos += nextSize
			}
			row++
			col = 1
		} else {
			col++
		}
	}

	if pop {
		l.pos, l.row, l.col = pos, row, col
	}

	if tokenStart < 0 || pos <= tokenStart {
		return Token{}, false
	}

	tok := Token{
		Text:             l.buf[tokenStart:pos],
		Type:             ttype,
		WSType:           wsType,
		PassedWhitespace: passedWS,
		PassedNewline:    passedNL,
		Row:              startRow,
		Col:              startCol,
		Offset:           tokenStart,
		NextOffset:       pos,
		NextRow:          row,
		NextCol:          col,
	}
	if count == 1 {
		tok.Ch = outCh
	}
	return tok, true
}

// getCharInternal reads exactly one codepoint as its own token,
// regardless of run classification — used for one-character lookahead
// during number and multiline-string disambiguation.
func (l *Lexer) getCharInternal(pop bool) (Token, bool) {
	ch, size := l.decodeAt(l.pos)
	if size == 0 {
		return Token{}, false
	}

	startOffset := l.pos
	startRow, startCol := l.row, l.col
	pos := l.pos + size
	row, col := l.row, l.col+1
	wsType := WhitespaceUnknown

	ttype := classify(ch)
	if ttype == TokenWhitespace {
		if isNewline(ch) {
			nextCh, nextSize := l.decodeAt(pos)
			if isNewlinePair(ch, nextCh) {
				pos += nextSize
			}
			wsType = WhitespaceNewline
			row++
			col = 1
		} else if ch == '\t' {
			wsType = WhitespaceTab
		} else if ch == ' ' {
			wsType = WhitespaceSpace
		}
	}

	if pop {
		l.pos, l.row, l.col = pos, row, col
	}

	return Token{
		Text:       l.buf[startOffset:pos],
		Ch:         ch,
		Type:       ttype,
		WSType:     wsType,
		Row:        startRow,
		Col:        startCol,
		Offset:     startOffset,
		NextOffset: pos,
		NextRow:    row,
		NextCol:    col,
	}, true
}

// PeekToken returns the next token without consuming it.
func (l *Lexer) PeekToken(mode Mode) (Token, bool) {
	return l.getTokenInternal(mode, false)
}

// GetToken returns the next token and advances the cursor past it.
func (l *Lexer) GetToken(mode Mode) (Token, bool) {
	return l.getTokenInternal(mode, true)
}

// PeekChar returns the next single codepoint without consuming it.
func (l *Lexer) PeekChar() (Token, bool) {
	return l.getCharInternal(false)
}

// GetChar returns the next single codepoint and advances past it.
func (l *Lexer) GetChar() (Token, bool) {
	return l.getCharInternal(true)
}

// ResetTo rewinds the cursor to the start of tok, as if it had never
// been consumed.
func (l *Lexer) ResetTo(tok Token) {
	l.pos = tok.Offset
	l.row = tok.Row
	l.col = tok.Col
}

// Pass advances the cursor to just past tok, without re-decoding it.
func (l *Lexer) Pass(tok Token) {
	l.pos = tok.NextOffset
	l.row = tok.NextRow
	l.col = tok.NextCol
}

// PeekRaw returns up to n raw bytes starting at the cursor, without
// regard to token boundaries. The TOML parser uses this to recognize
// multi-character delimiters (base prefixes, triple-quote strings)
// that base-token classification alone can't see, since a token never
// spans more than one run of uniformly-classified codepoints.
func (l *Lexer) PeekRaw(n int) string {
	end := l.pos + n
	if end > len(l.buf) {
		end = len(l.buf)
	}
	if end <= l.pos {
		return ""
	}
	return l.buf[l.pos:end]
}

// Row reports the lexer's current 1-based row.
func (l *Lexer) Row() uint32 { return l.row }

// Col reports the lexer's current 1-based column.
func (l *Lexer) Col() uint32 { return l.col }

// AtEOF reports whether the cursor has reached the end of input.
func (l *Lexer) AtEOF() bool { return l.pos >= len(l.buf) }
